package azure

// DiskRef 虚拟机上的托管磁盘引用
type DiskRef struct {
	// Name 磁盘名称
	Name string `json:"name"`
	// ID 磁盘资源 ID，非托管磁盘为空
	ID string `json:"id,omitempty"`
	// Lun 数据盘的挂载序号，系统盘为 0
	Lun int32 `json:"lun"`
}

// Managed 判断引用是否指向托管磁盘
func (r DiskRef) Managed() bool {
	return r.ID != ""
}

// VirtualMachine 虚拟机的磁盘视图
type VirtualMachine struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	// OSDisk 系统盘引用
	OSDisk DiskRef `json:"osDisk"`
	// DataDisks 数据盘引用，按 LUN 升序（即挂载顺序）
	DataDisks []DiskRef `json:"dataDisks"`
}

// ManagedDisk 托管磁盘快照信息
type ManagedDisk struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SizeGB   int32  `json:"sizeGB"`
	Location string `json:"location"`
	// SKUName 存储 SKU，比如 Standard_LRS、Premium_LRS
	SKUName string `json:"skuName"`
	// OSType 系统盘的操作系统类型（Linux/Windows），数据盘为空
	OSType string `json:"osType,omitempty"`
}

// DiskCopySpec 磁盘拷贝请求
// 新磁盘以 Copy 模式基于 SourceDiskID 创建
type DiskCopySpec struct {
	Name         string `json:"name"`
	SourceDiskID string `json:"sourceDiskID"`
	Location     string `json:"location"`
	SKUName      string `json:"skuName"`
	SizeGB       int32  `json:"sizeGB"`
	OSType       string `json:"osType,omitempty"`
}
