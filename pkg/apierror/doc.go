// Package apierror 提供 Azure 风格的 API 错误类型
//
// 错误响应体形如：
//
//	{
//	  "error": {
//	    "code": "SubscriptionNotFound",
//	    "message": "The subscription could not be found."
//	  }
//	}
//
// 每个 *Error 携带错误代码、对外消息、HTTP 状态码和可选的底层错误。
// 支持 errors.Is（按 Code 比较）和 errors.Unwrap（返回 RawError）。
//
// 使用方式：
//
//	err := apierror.ErrSubscriptionNotFound.WithMessage("subscription %q could not be found", id)
//	if errors.Is(err, apierror.ErrSubscriptionNotFound) {
//		// ...
//	}
package apierror
