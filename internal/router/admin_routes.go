// Package router 提供 HTTP 路由注册
// 本文件定义管理后台的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes 注册管理后台路由
// 登录状态记录在工作区上，未登录时工单接口由 Service 层拒绝
func (rt *Router) RegisterAdminRoutes(rg *gin.RouterGroup) {
	adminGroup := rg.Group("/admin")
	{
		adminGroup.POST("/login", rt.handlers.Admin.Login)
		adminGroup.POST("/logout", rt.handlers.Admin.Logout)

		// ===== 工单 =====
		ticketGroup := adminGroup.Group("/ticket")
		{
			ticketGroup.GET("/list", rt.handlers.Admin.ListTickets)     // 工单列表
			ticketGroup.GET("/stats", rt.handlers.Admin.Stats)          // 统计
			ticketGroup.POST("/select", rt.handlers.Admin.SelectTicket) // 选中
			ticketGroup.POST("/reply", rt.handlers.Admin.Reply)         // 回复（只提示）
			ticketGroup.POST("/close", rt.handlers.Admin.CloseTicket)   // 关闭（只提示）
		}
	}
}
