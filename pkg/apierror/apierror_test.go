package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	t.Parallel()

	err := ErrSubscriptionNotFound.WithMessage("subscription %q could not be found", "sub-a")
	assert.True(t, errors.Is(err, ErrSubscriptionNotFound))
	assert.False(t, errors.Is(err, ErrResourceGroupNotFound))
	assert.False(t, errors.Is(err, nil))

	// 包装后依然可以判断
	wrapped := fmt.Errorf("validate source: %w", err)
	assert.True(t, errors.Is(wrapped, ErrSubscriptionNotFound))
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	raw := errors.New("connection refused")
	err := ErrInternal.WithRawError(raw)
	assert.Equal(t, raw, errors.Unwrap(err))
	assert.True(t, errors.Is(err, ErrInternal))
}

func TestError_WithMessage(t *testing.T) {
	t.Parallel()

	err := ErrVirtualMachineNotFound.WithMessage("virtual machine %q could not be found", "testvm1")
	assert.Equal(t, "VirtualMachineNotFound", err.Code)
	assert.Equal(t, `virtual machine "testvm1" could not be found`, err.Message)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	// 原始错误不受影响
	assert.Equal(t, "The virtual machine could not be found.", ErrVirtualMachineNotFound.Message)
}

func TestErrorResponse_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ErrDiskNotFound.Response())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"DiskNotFound","message":"The managed disk could not be found."}}`, string(data))
}
