// Package router 提供 HTTP 路由注册
// 本文件定义 WebSocket 和提示条路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes 事件推送
// 请求示例: ws://host:port/ws?workspace_id=xxx
func (rt *Router) RegisterWebSocketRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws", rt.handlers.Workspace.Connect)
	// 页面卸载时由 sendBeacon 调用
	rg.POST("/workspace/close", rt.handlers.Workspace.Close)
}

// RegisterNoticeRoutes 提示条
func (rt *Router) RegisterNoticeRoutes(rg *gin.RouterGroup) {
	rg.GET("/notice/list", rt.handlers.Notice.List)
}
