package apierror

import "net/http"

// 迁移服务的错误代码
// 代码风格对齐 Azure Resource Manager 的错误代码
var (
	// ErrSubscriptionNotFound 订阅不存在或当前凭证不可见
	ErrSubscriptionNotFound = &Error{
		Code:       "SubscriptionNotFound",
		Message:    "The subscription could not be found.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrResourceGroupNotFound 资源组不存在
	ErrResourceGroupNotFound = &Error{
		Code:       "ResourceGroupNotFound",
		Message:    "The resource group could not be found.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrVirtualMachineNotFound 虚拟机不存在
	ErrVirtualMachineNotFound = &Error{
		Code:       "VirtualMachineNotFound",
		Message:    "The virtual machine could not be found.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrDiskNotFound 托管磁盘不存在
	ErrDiskNotFound = &Error{
		Code:       "DiskNotFound",
		Message:    "The managed disk could not be found.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrMigrationNotFound 迁移记录不存在
	ErrMigrationNotFound = &Error{
		Code:       "MigrationNotFound",
		Message:    "The migration could not be found.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrDiskSizeOutOfRange 磁盘大小超出容量档位范围
	ErrDiskSizeOutOfRange = &Error{
		Code:       "DiskSizeOutOfRange",
		Message:    "The disk size is outside the supported tier range of 1 to 2048 GB.",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrInvalidParameter 请求参数非法
	ErrInvalidParameter = &Error{
		Code:       "InvalidParameter",
		Message:    "One or more request parameters are invalid.",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrInternal 内部错误
	ErrInternal = &Error{
		Code:       "InternalError",
		Message:    "An internal error has occurred. Retry your request, and if the problem persists, contact support.",
		HTTPStatus: http.StatusInternalServerError,
	}
)
