package handler

import (
	"alisa_ai_server/internal/dto/request"
	"alisa_ai_server/internal/infrastructure/middleware"
	"alisa_ai_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler 聊天面板请求处理器
type ChatHandler struct {
	chatSvc service.ChatService
}

// NewChatHandler 创建聊天处理器
func NewChatHandler(chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// Open 选中好友并清空面板
// POST /chat/open
func (h *ChatHandler) Open(c *gin.Context) {
	var req request.OpenChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.chatSvc.Open(middleware.WorkspaceID(c), req.FriendId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Select 只切换聊天对象
// POST /chat/select
func (h *ChatHandler) Select(c *gin.Context) {
	var req request.OpenChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.chatSvc.Select(middleware.WorkspaceID(c), req.FriendId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Send 发送消息
// POST /chat/send
// 自动回复通过 WebSocket 的 chat_message 事件到达
func (h *ChatHandler) Send(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.chatSvc.Send(middleware.WorkspaceID(c), req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Messages 当前面板
// GET /chat/messages
func (h *ChatHandler) Messages(c *gin.Context) {
	data, err := h.chatSvc.Messages(middleware.WorkspaceID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Call 拨号
// POST /chat/call
func (h *ChatHandler) Call(c *gin.Context) {
	data, err := h.chatSvc.Call(middleware.WorkspaceID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
