package azure

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	notFound := &azcore.ResponseError{StatusCode: http.StatusNotFound, ErrorCode: "ResourceNotFound"}
	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(fmt.Errorf("get subscription: %w", notFound)))

	forbidden := &azcore.ResponseError{StatusCode: http.StatusForbidden}
	assert.False(t, IsNotFound(forbidden))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.False(t, IsNotFound(nil))
}

func TestDiskRef_Managed(t *testing.T) {
	t.Parallel()

	managed := DiskRef{Name: "vm1-data", ID: "/subscriptions/sub-a/providers/Microsoft.Compute/disks/vm1-data"}
	assert.True(t, managed.Managed())

	// 非托管盘没有资源 ID
	unmanaged := DiskRef{Name: "vm1-blob-disk"}
	assert.False(t, unmanaged.Managed())
}
