// Package router 提供 HTTP 路由注册
// 本文件定义好友相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterFriendRoutes 注册好友相关路由
func (rt *Router) RegisterFriendRoutes(rg *gin.RouterGroup) {
	friendGroup := rg.Group("/friend")
	{
		friendGroup.GET("/list", rt.handlers.Friend.List)     // 好友列表
		friendGroup.GET("/search", rt.handlers.Friend.Search) // 搜索
		friendGroup.POST("/add", rt.handlers.Friend.Add)      // 添加（无需对方确认）
	}
}
