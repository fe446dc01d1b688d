package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterSettingsRoutes 设置页
func (rt *Router) RegisterSettingsRoutes(rg *gin.RouterGroup) {
	settingsGroup := rg.Group("/settings")
	{
		settingsGroup.GET("/palette", rt.handlers.Settings.Palette)
		settingsGroup.GET("/background", rt.handlers.Settings.Background)
		settingsGroup.POST("/background", rt.handlers.Settings.SetBackground)
	}
}

// RegisterSupportRoutes 客服对话
func (rt *Router) RegisterSupportRoutes(rg *gin.RouterGroup) {
	supportGroup := rg.Group("/support")
	{
		supportGroup.POST("/send", rt.handlers.Support.Send)
		supportGroup.GET("/messages", rt.handlers.Support.Messages)
	}
}
