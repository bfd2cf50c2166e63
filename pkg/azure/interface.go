package azure

import "context"

// Client 定义 Azure 控制面客户端接口
// 用于抽象 Azure 资源管理操作，便于测试和 mock
//
// 所有方法都把订阅 ID 作为显式参数，不依赖任何全局订阅上下文，
// 跨订阅操作不需要切换/恢复上下文
type Client interface {
	// 订阅 / 资源组
	SubscriptionExists(ctx context.Context, subscriptionID string) (bool, error)
	ResourceGroupExists(ctx context.Context, subscriptionID, name string) (bool, error)
	CreateResourceGroup(ctx context.Context, subscriptionID, name, location string) error

	// 虚拟机
	GetVirtualMachine(ctx context.Context, subscriptionID, resourceGroup, name string) (*VirtualMachine, error)

	// 托管磁盘
	GetManagedDisk(ctx context.Context, subscriptionID, resourceGroup, diskName string) (*ManagedDisk, error)
	// CreateManagedDiskCopy 以 Copy 模式创建新磁盘并等待完成（服务端拷贝）
	CreateManagedDiskCopy(ctx context.Context, subscriptionID, resourceGroup string, spec *DiskCopySpec) (*ManagedDisk, error)
}
