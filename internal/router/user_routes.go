package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes 注册与个人资料
func (rt *Router) RegisterUserRoutes(rg *gin.RouterGroup) {
	userGroup := rg.Group("/user")
	{
		userGroup.POST("/register", rt.handlers.User.Register)
		userGroup.GET("/profile", rt.handlers.User.GetProfile)
		userGroup.POST("/edit", rt.handlers.User.EditProfile) // 不保存
		userGroup.GET("/screen", rt.handlers.User.Screen)
	}
}
