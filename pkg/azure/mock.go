package azure

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient 是 Client 的 mock 实现
// 用于测试，不需要真实的 Azure 凭证
type MockClient struct {
	mock.Mock
}

var _ Client = (*MockClient)(nil)

// NewMockClient 创建新的 MockClient
// 这是一个便捷函数，用于在测试中创建 mock client
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) SubscriptionExists(ctx context.Context, subscriptionID string) (bool, error) {
	args := m.Called(ctx, subscriptionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClient) ResourceGroupExists(ctx context.Context, subscriptionID, name string) (bool, error) {
	args := m.Called(ctx, subscriptionID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockClient) CreateResourceGroup(ctx context.Context, subscriptionID, name, location string) error {
	args := m.Called(ctx, subscriptionID, name, location)
	return args.Error(0)
}

func (m *MockClient) GetVirtualMachine(ctx context.Context, subscriptionID, resourceGroup, name string) (*VirtualMachine, error) {
	args := m.Called(ctx, subscriptionID, resourceGroup, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*VirtualMachine), args.Error(1)
}

func (m *MockClient) GetManagedDisk(ctx context.Context, subscriptionID, resourceGroup, diskName string) (*ManagedDisk, error) {
	args := m.Called(ctx, subscriptionID, resourceGroup, diskName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ManagedDisk), args.Error(1)
}

func (m *MockClient) CreateManagedDiskCopy(ctx context.Context, subscriptionID, resourceGroup string, spec *DiskCopySpec) (*ManagedDisk, error) {
	args := m.Called(ctx, subscriptionID, resourceGroup, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ManagedDisk), args.Error(1)
}
