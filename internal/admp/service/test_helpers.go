package service

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/jimyag/admp/internal/admp/repository"
	"github.com/jimyag/admp/pkg/azure"
	"github.com/stretchr/testify/require"
)

// TestServices 包含测试所需的所有服务和依赖
type TestServices struct {
	Repo             *repository.Repository
	MockAzure        *azure.MockClient
	Events           *EventBroker
	MigrationService *MigrationService
}

// setupTestServices 为每个测试用例创建独立的测试环境
// 每个测试用例都会获得自己的数据库、mock client 和 service 实例
func setupTestServices(t *testing.T) *TestServices {
	t.Helper()

	// 创建临时目录和数据库（每个测试用例都有独立的数据库文件）
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := repository.New(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = repo.Close()
		_ = os.RemoveAll(tmpDir)
	})

	mockAzure := azure.NewMockClient()
	events := NewEventBroker()
	migrationService := NewMigrationService(mockAzure, repo, events)

	return &TestServices{
		Repo:             repo,
		MockAzure:        mockAzure,
		Events:           events,
		MigrationService: migrationService,
	}
}

// notFoundErr 模拟 ARM 404 错误
func notFoundErr() error {
	return &azcore.ResponseError{StatusCode: http.StatusNotFound, ErrorCode: "ResourceNotFound"}
}
