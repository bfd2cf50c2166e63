package model

import (
	"time"

	"gorm.io/gorm"
)

// Migration 迁移表
type Migration struct {
	ID                   string         `gorm:"primaryKey;type:text;column:id" json:"id"` // mig-{id}
	VMName               string         `gorm:"type:text;not null;index:idx_migrations_vm_name;column:vm_name" json:"vmName"`
	SourceSubscriptionID string         `gorm:"type:text;not null;column:source_subscription_id" json:"sourceSubscriptionID"`
	SourceResourceGroup  string         `gorm:"type:text;not null;column:source_resource_group" json:"sourceResourceGroup"`
	TargetSubscriptionID string         `gorm:"type:text;not null;column:target_subscription_id" json:"targetSubscriptionID"`
	TargetResourceGroup  string         `gorm:"type:text;not null;column:target_resource_group" json:"targetResourceGroup"`
	State                string         `gorm:"type:text;not null;index:idx_migrations_state;column:state" json:"state"` // pending, running, succeeded, failed
	Error                string         `gorm:"type:text;column:error" json:"error"`
	CreatedAt            time.Time      `gorm:"type:datetime;not null;index:idx_migrations_created_at;column:created_at" json:"createdAt"`
	FinishedAt           *time.Time     `gorm:"type:datetime;column:finished_at" json:"finishedAt,omitempty"`
	UpdatedAt            time.Time      `gorm:"type:datetime;not null;column:updated_at" json:"updatedAt"`
	DeletedAt            gorm.DeletedAt `gorm:"type:datetime;index:idx_migrations_deleted_at;column:deleted_at" json:"deletedAt,omitempty"` // 软删除
}

// TableName 指定表名
func (Migration) TableName() string {
	return "migrations"
}
