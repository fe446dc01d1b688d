// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"alisa_ai_server/internal/handler"
	"alisa_ai_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// Router 持有 Handler 聚合
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	// 公开接口：打开新标签页
	r.POST("/workspace", rt.handlers.Workspace.Create)

	// 其余接口都需要工作区
	ws := r.Group("/")
	ws.Use(middleware.Workspace(rt.handlers.WorkspaceChecker))
	{
		rt.RegisterWebSocketRoutes(ws)
		rt.RegisterNoticeRoutes(ws)
		rt.RegisterUserRoutes(ws)
		rt.RegisterFriendRoutes(ws)
		rt.RegisterChatRoutes(ws)
		rt.RegisterSettingsRoutes(ws)
		rt.RegisterSupportRoutes(ws)
		rt.RegisterAdminRoutes(ws)
	}
}
