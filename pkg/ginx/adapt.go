package ginx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Adapt 适配有参数、有返回值和 error 的 handler
// 自动完成参数绑定、校验和响应渲染，handler 只关心业务逻辑
func Adapt[TArgs any, TResp any](fn func(*gin.Context, *TArgs) (TResp, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		args := new(TArgs)
		if err := bindArgs(ctx, args); err != nil {
			renderError(ctx, http.StatusBadRequest, err)
			return
		}

		// 校验参数（如果实现了 IsValid 方法）
		if validator, ok := any(args).(interface{ IsValid() error }); ok {
			if err := validator.IsValid(); err != nil {
				renderError(ctx, http.StatusBadRequest, err)
				return
			}
		}

		result, err := fn(ctx, args)
		if err != nil {
			renderError(ctx, http.StatusInternalServerError, err)
			return
		}
		renderResponse(ctx, result)
	}
}

// bindArgs 绑定请求参数到 args 结构体
// 优先级：JSON Body > URI 参数 > Query 参数
func bindArgs(ctx *gin.Context, args any) error {
	if err := ctx.ShouldBindJSON(args); err == nil {
		_ = ctx.ShouldBindUri(args)
		_ = ctx.ShouldBindQuery(args)
		return nil
	}

	if err := ctx.ShouldBindUri(args); err == nil {
		_ = ctx.ShouldBindQuery(args)
		return nil
	}

	return ctx.ShouldBindQuery(args)
}
