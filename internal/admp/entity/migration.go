package entity

// 迁移状态
const (
	MigrationStatePending   = "pending"
	MigrationStateRunning   = "running"
	MigrationStateSucceeded = "succeeded"
	MigrationStateFailed    = "failed"
)

// 磁盘拷贝状态
const (
	DiskCopyStatePending   = "pending"
	DiskCopyStateCopying   = "copying"
	DiskCopyStateSucceeded = "succeeded"
	DiskCopyStateFailed    = "failed"
	DiskCopyStateSkipped   = "skipped"
)

// Migration 一次磁盘迁移
type Migration struct {
	ID                   string     `json:"id"` // mig-{id}
	VMName               string     `json:"vmName"`
	SourceSubscriptionID string     `json:"sourceSubscriptionID"`
	SourceResourceGroup  string     `json:"sourceResourceGroup"`
	TargetSubscriptionID string     `json:"targetSubscriptionID"`
	TargetResourceGroup  string     `json:"targetResourceGroup"`
	State                string     `json:"state"` // pending, running, succeeded, failed
	Error                string     `json:"error,omitempty"`
	DiskCopies           []DiskCopy `json:"diskCopies,omitempty"`
	CreatedAt            string     `json:"createdAt,omitempty"`
	FinishedAt           string     `json:"finishedAt,omitempty"`
}

// DiskCopy 迁移中单个磁盘的拷贝记录
type DiskCopy struct {
	ID             string `json:"id"` // cpy-{id}
	MigrationID    string `json:"migrationID"`
	Role           string `json:"role"` // os, data
	DiskIndex      int    `json:"diskIndex,omitempty"`
	SourceDiskID   string `json:"sourceDiskID,omitempty"`
	SourceDiskName string `json:"sourceDiskName"`
	NewDiskID      string `json:"newDiskID,omitempty"`
	NewDiskName    string `json:"newDiskName,omitempty"`
	SourceSizeGB   int32  `json:"sourceSizeGB,omitempty"`
	TargetSizeGB   int32  `json:"targetSizeGB,omitempty"`
	Location       string `json:"location,omitempty"`
	SKUName        string `json:"skuName,omitempty"`
	OSType         string `json:"osType,omitempty"`
	State          string `json:"state"` // pending, copying, succeeded, failed, skipped
	Error          string `json:"error,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	FinishedAt     string `json:"finishedAt,omitempty"`
}

// MigrationPlan 迁移计划（干跑结果）
// 只做校验和推导，不发起任何拷贝
type MigrationPlan struct {
	VMName               string        `json:"vmName"`
	SourceSubscriptionID string        `json:"sourceSubscriptionID"`
	SourceResourceGroup  string        `json:"sourceResourceGroup"`
	TargetSubscriptionID string        `json:"targetSubscriptionID"`
	TargetResourceGroup  string        `json:"targetResourceGroup"`
	Disks                []PlannedDisk `json:"disks"`
	Skipped              []SkippedDisk `json:"skipped,omitempty"`
	Warnings             []string      `json:"warnings,omitempty"`
}

// MigrationEvent 迁移过程中的进度事件
type MigrationEvent struct {
	MigrationID string `json:"migrationID"`
	// Type: disk-started, disk-succeeded, disk-failed, disk-skipped,
	// warning, migration-finished
	Type      string `json:"type"`
	DiskName  string `json:"diskName,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

// PlanMigrationRequest 生成迁移计划请求
type PlanMigrationRequest struct {
	SubscriptionID          string `json:"subscriptionID" binding:"required"`
	ResourceGroupName       string `json:"resourceGroupName" binding:"required"`
	VMName                  string `json:"vmName" binding:"required"`
	TargetSubscriptionID    string `json:"targetSubscriptionID,omitempty"`
	TargetResourceGroupName string `json:"targetResourceGroupName,omitempty"`
}

// PlanMigrationResponse 生成迁移计划响应
type PlanMigrationResponse struct {
	Plan *MigrationPlan `json:"plan"`
}

// StartMigrationRequest 发起迁移请求
type StartMigrationRequest struct {
	SubscriptionID          string `json:"subscriptionID" binding:"required"`
	ResourceGroupName       string `json:"resourceGroupName" binding:"required"`
	VMName                  string `json:"vmName" binding:"required"`
	TargetSubscriptionID    string `json:"targetSubscriptionID,omitempty"`
	TargetResourceGroupName string `json:"targetResourceGroupName,omitempty"`
}

// StartMigrationResponse 发起迁移响应
type StartMigrationResponse struct {
	Migration *Migration `json:"migration"`
}

// ListMigrationsRequest 列举迁移请求
type ListMigrationsRequest struct {
	State  string `json:"state,omitempty"`
	VMName string `json:"vmName,omitempty"`
}

// ListMigrationsResponse 列举迁移响应
type ListMigrationsResponse struct {
	Migrations []Migration `json:"migrations"`
}

// DescribeMigrationRequest 查询迁移详情请求
type DescribeMigrationRequest struct {
	MigrationID string `json:"migrationID" binding:"required"`
}

// DescribeMigrationResponse 查询迁移详情响应
type DescribeMigrationResponse struct {
	Migration *Migration `json:"migration"`
}
