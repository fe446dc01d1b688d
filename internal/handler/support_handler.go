package handler

import (
	"alisa_ai_server/internal/dto/request"
	"alisa_ai_server/internal/infrastructure/middleware"
	"alisa_ai_server/internal/service"

	"github.com/gin-gonic/gin"
)

// SupportHandler 用户侧客服对话
type SupportHandler struct {
	supportSvc service.SupportService
}

// NewSupportHandler 创建客服对话处理器
func NewSupportHandler(supportSvc service.SupportService) *SupportHandler {
	return &SupportHandler{supportSvc: supportSvc}
}

// Send POST /support/send
func (h *SupportHandler) Send(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.supportSvc.Send(middleware.WorkspaceID(c), req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Messages GET /support/messages
func (h *SupportHandler) Messages(c *gin.Context) {
	data, err := h.supportSvc.Messages(middleware.WorkspaceID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
