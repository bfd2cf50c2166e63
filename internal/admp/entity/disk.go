package entity

// DiskRole 磁盘角色
type DiskRole string

const (
	// DiskRoleOS 系统盘
	DiskRoleOS DiskRole = "os"
	// DiskRoleData 数据盘
	DiskRoleData DiskRole = "data"
)

// DiskDescriptor 源磁盘快照信息
// 读取时一次性构建，之后不再变化
type DiskDescriptor struct {
	SourceID   string   `json:"sourceID"`
	SourceName string   `json:"sourceName"`
	Role       DiskRole `json:"role"`
	// Index 数据盘的挂载序号（从 1 开始），系统盘为 0
	Index    int    `json:"index,omitempty"`
	SizeGB   int32  `json:"sizeGB"`
	Location string `json:"location"`
	SKUName  string `json:"skuName"`
	// OSType 系统盘的操作系统类型，数据盘为空
	OSType string `json:"osType,omitempty"`
}

// NewDiskSpec 新磁盘的创建参数
// 由 DiskDescriptor + 迁移目标 + 虚拟机名称确定性推导，
// 创建模式固定为 Copy（服务端拷贝）
type NewDiskSpec struct {
	SourceResourceID string `json:"sourceResourceID"`
	DiskName         string `json:"diskName"`
	Location         string `json:"location"`
	SKUName          string `json:"skuName"`
	OSType           string `json:"osType,omitempty"`
	SizeGB           int32  `json:"sizeGB"`
}

// PlannedDisk 迁移计划中的单个磁盘
type PlannedDisk struct {
	Descriptor DiskDescriptor `json:"descriptor"`
	Spec       NewDiskSpec    `json:"spec"`
}

// SkippedDisk 被跳过的磁盘（非托管盘或查找失败）
type SkippedDisk struct {
	Name string `json:"name"`
	// Index 数据盘的挂载序号（从 1 开始）
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}
