package handler

import (
	"alisa_ai_server/internal/gateway/websocket"
	"alisa_ai_server/internal/infrastructure/middleware"
	"alisa_ai_server/internal/service"
	"alisa_ai_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

var errWsDisabled = errorx.New(errorx.CodeServerBusy, "Обновления в реальном времени недоступны")

// WorkspaceHandler 工作区与事件推送
type WorkspaceHandler struct {
	workspaceSvc service.WorkspaceService
	hub          *websocket.Hub
}

// NewWorkspaceHandler 创建工作区处理器
// hub 为空时 /ws 不可用
func NewWorkspaceHandler(workspaceSvc service.WorkspaceService, hub *websocket.Hub) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceSvc: workspaceSvc, hub: hub}
}

// Create 新标签页
// POST /workspace
// 响应: respond.WorkspaceRespond
func (h *WorkspaceHandler) Create(c *gin.Context) {
	HandleSuccess(c, h.workspaceSvc.Create())
}

// Connect 升级为 WebSocket，之后服务端推送该工作区的事件
// GET /ws?workspace_id=xxx
func (h *WorkspaceHandler) Connect(c *gin.Context) {
	if h.hub == nil {
		HandleError(c, errWsDisabled)
		return
	}
	h.hub.Serve(c, middleware.WorkspaceID(c))
}

// Close 页面卸载时删除工作区
// POST /workspace/close?workspace_id=xxx
// 响应: data 为 null
func (h *WorkspaceHandler) Close(c *gin.Context) {
	h.workspaceSvc.Close(middleware.WorkspaceID(c))
	HandleSuccess(c, nil)
}
