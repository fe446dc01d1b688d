package handler

import (
	"alisa_ai_server/internal/dto/request"
	"alisa_ai_server/internal/infrastructure/middleware"
	"alisa_ai_server/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler 设置页
type SettingsHandler struct {
	themeSvc service.ThemeService
}

// NewSettingsHandler 创建设置处理器
func NewSettingsHandler(themeSvc service.ThemeService) *SettingsHandler {
	return &SettingsHandler{themeSvc: themeSvc}
}

// Palette GET /settings/palette
func (h *SettingsHandler) Palette(c *gin.Context) {
	HandleSuccess(c, h.themeSvc.Palette())
}

// Background GET /settings/background
func (h *SettingsHandler) Background(c *gin.Context) {
	data, err := h.themeSvc.Current(middleware.WorkspaceID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SetBackground POST /settings/background
func (h *SettingsHandler) SetBackground(c *gin.Context) {
	var req request.SetBackgroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.themeSvc.SetBackground(middleware.WorkspaceID(c), req.Name)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
