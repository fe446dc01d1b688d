// Package handler 提供 HTTP 请求处理器
// 本文件处理注册与个人资料
package handler

import (
	"alisa_ai_server/internal/dto/request"
	"alisa_ai_server/internal/dto/respond"
	"alisa_ai_server/internal/infrastructure/middleware"
	"alisa_ai_server/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户请求处理器
type UserHandler struct {
	profileSvc service.ProfileService
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(profileSvc service.ProfileService) *UserHandler {
	return &UserHandler{profileSvc: profileSvc}
}

// Register 用户注册
// POST /user/register
// 请求体: request.RegisterRequest
// 响应: respond.UserInfoRespond
func (h *UserHandler) Register(c *gin.Context) {
	// 1. 绑定并验证请求参数
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	// 2. 调用 Service 层
	data, err := h.profileSvc.Register(middleware.WorkspaceID(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	// 3. 返回成功响应
	HandleSuccess(c, data)
}

// GetProfile 个人资料
// GET /user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	data, err := h.profileSvc.GetProfile(middleware.WorkspaceID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// EditProfile 编辑资料弹窗
// POST /user/edit
func (h *UserHandler) EditProfile(c *gin.Context) {
	var req request.EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.profileSvc.EditProfile(middleware.WorkspaceID(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Screen 当前界面
// GET /user/screen
func (h *UserHandler) Screen(c *gin.Context) {
	screen, err := h.profileSvc.Screen(middleware.WorkspaceID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.ScreenRespond{Screen: string(screen)})
}
