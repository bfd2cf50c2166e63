package model

import (
	"time"

	"gorm.io/gorm"
)

// DiskCopy 磁盘拷贝表
type DiskCopy struct {
	ID             string         `gorm:"primaryKey;type:text;column:id" json:"id"`                                                     // cpy-{id}
	MigrationID    string         `gorm:"type:text;not null;index:idx_disk_copies_migration_id;column:migration_id" json:"migrationID"` // 关联 migrations.id
	Role           string         `gorm:"type:text;not null;column:role" json:"role"`                                                   // os, data
	DiskIndex      int            `gorm:"type:integer;column:disk_index" json:"diskIndex"`
	SourceDiskID   string         `gorm:"type:text;column:source_disk_id" json:"sourceDiskID"`
	SourceDiskName string         `gorm:"type:text;not null;column:source_disk_name" json:"sourceDiskName"`
	NewDiskID      string         `gorm:"type:text;column:new_disk_id" json:"newDiskID"`
	NewDiskName    string         `gorm:"type:text;column:new_disk_name" json:"newDiskName"`
	SourceSizeGB   int32          `gorm:"type:integer;column:source_size_gb" json:"sourceSizeGB"`
	TargetSizeGB   int32          `gorm:"type:integer;column:target_size_gb" json:"targetSizeGB"`
	Location       string         `gorm:"type:text;column:location" json:"location"`
	SKUName        string         `gorm:"type:text;column:sku_name" json:"skuName"`
	OSType         string         `gorm:"type:text;column:os_type" json:"osType"`
	State          string         `gorm:"type:text;not null;index:idx_disk_copies_state;column:state" json:"state"` // pending, copying, succeeded, failed, skipped
	Error          string         `gorm:"type:text;column:error" json:"error"`
	CreatedAt      time.Time      `gorm:"type:datetime;not null;column:created_at" json:"createdAt"`
	FinishedAt     *time.Time     `gorm:"type:datetime;column:finished_at" json:"finishedAt,omitempty"`
	UpdatedAt      time.Time      `gorm:"type:datetime;not null;column:updated_at" json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"type:datetime;index:idx_disk_copies_deleted_at;column:deleted_at" json:"deletedAt,omitempty"` // 软删除
}

// TableName 指定表名
func (DiskCopy) TableName() string {
	return "disk_copies"
}
