// Package apierror 提供 Azure 风格的错误类型，用于所有服务的统一错误处理
package apierror

import (
	"fmt"
	"net/http"
)

// ErrorResponse Azure 风格的错误响应结构
// 序列化后形如 {"error":{"code":"...","message":"..."}}
type ErrorResponse struct {
	Err *Error `json:"error"`
}

func (er *ErrorResponse) Error() string {
	if er.Err == nil {
		return "unknown error"
	}
	return er.Err.Error()
}

// Error 单个错误信息
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"` // HTTP 状态码，不会序列化到响应中
	RawError   error  `json:"-"` // 内部错误，用于服务端调试，不会序列化到响应中
}

// Error 实现 error 接口
func (e *Error) Error() string {
	str := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.RawError != nil {
		str += fmt.Sprintf(" (RawError: %v)", e.RawError)
	}
	return str
}

// Is 实现 errors.Is 接口，用于错误类型判断
// 如果 target 是 *Error 类型且 Code 相同，则返回 true
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*Error)
	if !ok {
		return false
	}

	if e == nil || t == nil {
		return false
	}

	// 比较错误代码
	return e.Code == t.Code
}

// Unwrap 实现 errors.Unwrap 接口，返回底层错误
// 如果设置了 RawError，则返回 RawError；否则返回 nil
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.RawError
}

// 编译时检查 Error 是否实现了所有必需的接口
var _ interface {
	Error() string
	// 实现了该接口后，可以使用 errors.Is() 函数来判断错误类型
	Is(target error) bool
	// 实现了该接口后，可以使用 errors.As() 和 errors.Unwrap() 函数来获取到原始的错误类型
	Unwrap() error
} = (*Error)(nil)

// NewError 创建新的错误
// 默认 HTTP 状态码为 500
func NewError(code, message string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewErrorWithStatus 创建新的错误，指定 HTTP 状态码
func NewErrorWithStatus(code, message string, httpStatus int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// WithMessage 返回带自定义消息的错误副本，保留 Code 和 HTTP 状态码
func (e *Error) WithMessage(format string, args ...any) *Error {
	return &Error{
		Code:       e.Code,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: e.HTTPStatus,
		RawError:   e.RawError,
	}
}

// WithRawError 返回附带底层错误的错误副本
func (e *Error) WithRawError(err error) *Error {
	return &Error{
		Code:       e.Code,
		Message:    e.Message,
		HTTPStatus: e.HTTPStatus,
		RawError:   err,
	}
}

// Response 把错误包装为 Azure 风格的响应体
func (e *Error) Response() *ErrorResponse {
	return &ErrorResponse{Err: e}
}
