// Package ginx 提供 gin handler 的泛型适配器
//
// 把 func(*gin.Context, *Req) (*Resp, error) 形式的业务 handler
// 适配为 gin.HandlerFunc，统一完成：
//   - 请求绑定（JSON Body > URI > Query）
//   - 可选校验（请求类型实现 IsValid() error 时自动调用）
//   - 响应渲染（JSON）
//   - 错误渲染（apierror 风格的 {"error":{"code","message"}} 响应体）
//
// 使用方式：
//
//	router.POST("/migrations/start", ginx.Adapt(h.StartMigration))
package ginx
