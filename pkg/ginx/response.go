package ginx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/admp/pkg/apierror"
)

// renderResponse 渲染成功响应，统一使用 JSON
func renderResponse(ctx *gin.Context, response any) {
	if response == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// renderError 渲染错误响应
// *apierror.Error 按其错误代码和 HTTP 状态码序列化，
// 其他错误包装为 InternalError 风格的响应体
func renderError(ctx *gin.Context, fallbackStatus int, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		status := apiErr.HTTPStatus
		if status == 0 {
			status = fallbackStatus
		}
		ctx.JSON(status, apiErr.Response())
		return
	}

	ctx.JSON(fallbackStatus, (&apierror.Error{
		Code:    "InternalError",
		Message: err.Error(),
	}).Response())
}
