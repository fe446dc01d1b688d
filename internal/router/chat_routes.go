package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes 注册聊天面板路由
func (rt *Router) RegisterChatRoutes(rg *gin.RouterGroup) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.POST("/open", rt.handlers.Chat.Open)     // 选中并清空
		chatGroup.POST("/select", rt.handlers.Chat.Select) // 只选中
		chatGroup.POST("/send", rt.handlers.Chat.Send)
		chatGroup.GET("/messages", rt.handlers.Chat.Messages)
		chatGroup.POST("/call", rt.handlers.Chat.Call)
	}
}
