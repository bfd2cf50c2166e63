package azure

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// ARMClient 基于 Azure SDK (track 2) 的 Client 实现
// ARM 的 compute/resources 客户端都绑定单个订阅，
// 这里按订阅缓存客户端，调用方只需要传订阅 ID
type ARMClient struct {
	credential azcore.TokenCredential
	options    *arm.ClientOptions

	subscriptions *armsubscriptions.Client

	mu            sync.Mutex
	disksClients  map[string]*armcompute.DisksClient
	vmClients     map[string]*armcompute.VirtualMachinesClient
	groupsClients map[string]*armresources.ResourceGroupsClient
}

var _ Client = (*ARMClient)(nil)

// New 创建 Azure 客户端，使用 DefaultAzureCredential
// （环境变量 / managed identity / Azure CLI 登录态）
func New() (*ARMClient, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("create azure credential: %w", err)
	}
	return NewWithCredential(cred, nil)
}

// NewWithCredential 使用指定凭证创建 Azure 客户端
func NewWithCredential(credential azcore.TokenCredential, options *arm.ClientOptions) (*ARMClient, error) {
	subscriptions, err := armsubscriptions.NewClient(credential, options)
	if err != nil {
		return nil, fmt.Errorf("create subscriptions client: %w", err)
	}
	return &ARMClient{
		credential:    credential,
		options:       options,
		subscriptions: subscriptions,
		disksClients:  make(map[string]*armcompute.DisksClient),
		vmClients:     make(map[string]*armcompute.VirtualMachinesClient),
		groupsClients: make(map[string]*armresources.ResourceGroupsClient),
	}, nil
}

// disksClient 返回指定订阅的 DisksClient（带缓存）
func (c *ARMClient) disksClient(subscriptionID string) (*armcompute.DisksClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if client, ok := c.disksClients[subscriptionID]; ok {
		return client, nil
	}
	client, err := armcompute.NewDisksClient(subscriptionID, c.credential, c.options)
	if err != nil {
		return nil, fmt.Errorf("create disks client for %s: %w", subscriptionID, err)
	}
	c.disksClients[subscriptionID] = client
	return client, nil
}

// vmClient 返回指定订阅的 VirtualMachinesClient（带缓存）
func (c *ARMClient) vmClient(subscriptionID string) (*armcompute.VirtualMachinesClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if client, ok := c.vmClients[subscriptionID]; ok {
		return client, nil
	}
	client, err := armcompute.NewVirtualMachinesClient(subscriptionID, c.credential, c.options)
	if err != nil {
		return nil, fmt.Errorf("create virtual machines client for %s: %w", subscriptionID, err)
	}
	c.vmClients[subscriptionID] = client
	return client, nil
}

// groupsClient 返回指定订阅的 ResourceGroupsClient（带缓存）
func (c *ARMClient) groupsClient(subscriptionID string) (*armresources.ResourceGroupsClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if client, ok := c.groupsClients[subscriptionID]; ok {
		return client, nil
	}
	client, err := armresources.NewResourceGroupsClient(subscriptionID, c.credential, c.options)
	if err != nil {
		return nil, fmt.Errorf("create resource groups client for %s: %w", subscriptionID, err)
	}
	c.groupsClients[subscriptionID] = client
	return client, nil
}

// SubscriptionExists 检查订阅是否存在且当前凭证可见
func (c *ARMClient) SubscriptionExists(ctx context.Context, subscriptionID string) (bool, error) {
	_, err := c.subscriptions.Get(ctx, subscriptionID, nil)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("get subscription %s: %w", subscriptionID, err)
	}
	return true, nil
}

// ResourceGroupExists 检查资源组是否存在
func (c *ARMClient) ResourceGroupExists(ctx context.Context, subscriptionID, name string) (bool, error) {
	groups, err := c.groupsClient(subscriptionID)
	if err != nil {
		return false, err
	}
	resp, err := groups.CheckExistence(ctx, name, nil)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check resource group %s: %w", name, err)
	}
	return resp.Success, nil
}

// CreateResourceGroup 创建资源组
func (c *ARMClient) CreateResourceGroup(ctx context.Context, subscriptionID, name, location string) error {
	groups, err := c.groupsClient(subscriptionID)
	if err != nil {
		return err
	}
	_, err = groups.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
	}, nil)
	if err != nil {
		return fmt.Errorf("create resource group %s: %w", name, err)
	}
	return nil
}

// GetVirtualMachine 获取虚拟机的磁盘视图
// 数据盘按 LUN 升序排列，保持挂载顺序
func (c *ARMClient) GetVirtualMachine(ctx context.Context, subscriptionID, resourceGroup, name string) (*VirtualMachine, error) {
	vms, err := c.vmClient(subscriptionID)
	if err != nil {
		return nil, err
	}
	resp, err := vms.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, fmt.Errorf("get virtual machine %s: %w", name, err)
	}

	vm := &VirtualMachine{Name: name}
	if resp.Location != nil {
		vm.Location = *resp.Location
	}
	if resp.Properties == nil || resp.Properties.StorageProfile == nil {
		return vm, nil
	}
	profile := resp.Properties.StorageProfile
	if profile.OSDisk != nil {
		ref := DiskRef{}
		if profile.OSDisk.Name != nil {
			ref.Name = *profile.OSDisk.Name
		}
		if profile.OSDisk.ManagedDisk != nil && profile.OSDisk.ManagedDisk.ID != nil {
			ref.ID = *profile.OSDisk.ManagedDisk.ID
		}
		vm.OSDisk = ref
	}
	for _, disk := range profile.DataDisks {
		if disk == nil {
			continue
		}
		ref := DiskRef{}
		if disk.Name != nil {
			ref.Name = *disk.Name
		}
		if disk.Lun != nil {
			ref.Lun = *disk.Lun
		}
		if disk.ManagedDisk != nil && disk.ManagedDisk.ID != nil {
			ref.ID = *disk.ManagedDisk.ID
		}
		vm.DataDisks = append(vm.DataDisks, ref)
	}
	sort.Slice(vm.DataDisks, func(i, j int) bool {
		return vm.DataDisks[i].Lun < vm.DataDisks[j].Lun
	})
	return vm, nil
}

// GetManagedDisk 获取托管磁盘信息
func (c *ARMClient) GetManagedDisk(ctx context.Context, subscriptionID, resourceGroup, diskName string) (*ManagedDisk, error) {
	disks, err := c.disksClient(subscriptionID)
	if err != nil {
		return nil, err
	}
	resp, err := disks.Get(ctx, resourceGroup, diskName, nil)
	if err != nil {
		return nil, fmt.Errorf("get managed disk %s: %w", diskName, err)
	}
	return diskFromResponse(resp.Disk), nil
}

// CreateManagedDiskCopy 以 Copy 模式创建磁盘并等待完成
func (c *ARMClient) CreateManagedDiskCopy(ctx context.Context, subscriptionID, resourceGroup string, spec *DiskCopySpec) (*ManagedDisk, error) {
	disks, err := c.disksClient(subscriptionID)
	if err != nil {
		return nil, err
	}

	disk := armcompute.Disk{
		Location: to.Ptr(spec.Location),
		SKU: &armcompute.DiskSKU{
			Name: to.Ptr(armcompute.DiskStorageAccountTypes(spec.SKUName)),
		},
		Properties: &armcompute.DiskProperties{
			CreationData: &armcompute.CreationData{
				CreateOption:     to.Ptr(armcompute.DiskCreateOptionCopy),
				SourceResourceID: to.Ptr(spec.SourceDiskID),
			},
			DiskSizeGB: to.Ptr(spec.SizeGB),
		},
	}
	if spec.OSType != "" {
		disk.Properties.OSType = to.Ptr(armcompute.OperatingSystemTypes(spec.OSType))
	}

	poller, err := disks.BeginCreateOrUpdate(ctx, resourceGroup, spec.Name, disk, nil)
	if err != nil {
		return nil, fmt.Errorf("begin disk copy %s: %w", spec.Name, err)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("wait disk copy %s: %w", spec.Name, err)
	}
	return diskFromResponse(resp.Disk), nil
}

// diskFromResponse 把 SDK 的 Disk 转换为 ManagedDisk
func diskFromResponse(disk armcompute.Disk) *ManagedDisk {
	out := &ManagedDisk{}
	if disk.ID != nil {
		out.ID = *disk.ID
	}
	if disk.Name != nil {
		out.Name = *disk.Name
	}
	if disk.Location != nil {
		out.Location = *disk.Location
	}
	if disk.SKU != nil && disk.SKU.Name != nil {
		out.SKUName = string(*disk.SKU.Name)
	}
	if disk.Properties != nil {
		if disk.Properties.DiskSizeGB != nil {
			out.SizeGB = *disk.Properties.DiskSizeGB
		}
		if disk.Properties.OSType != nil {
			out.OSType = string(*disk.Properties.OSType)
		}
	}
	return out
}

// IsNotFound 判断错误是否为 ARM 404
func IsNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}
