package handler

import (
	"alisa_ai_server/internal/dto/respond"
	"alisa_ai_server/internal/infrastructure/middleware"
	"alisa_ai_server/internal/service"

	"github.com/gin-gonic/gin"
)

// NoticeHandler 提示条
type NoticeHandler struct {
	noticeSvc service.NoticeService
}

// NewNoticeHandler 创建提示条处理器
func NewNoticeHandler(noticeSvc service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeSvc: noticeSvc}
}

// List 尚未消失的提示条，供没有 WebSocket 的页面轮询
// GET /notice/list
func (h *NoticeHandler) List(c *gin.Context) {
	notices, err := h.noticeSvc.Active(middleware.WorkspaceID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	out := make([]respond.NoticeRespond, 0, len(notices))
	for _, n := range notices {
		out = append(out, respond.FromNotice(n))
	}
	HandleSuccess(c, out)
}
