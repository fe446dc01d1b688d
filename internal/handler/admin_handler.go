package handler

import (
	"alisa_ai_server/internal/dto/request"
	"alisa_ai_server/internal/infrastructure/middleware"
	"alisa_ai_server/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler 管理后台请求处理器
type AdminHandler struct {
	adminSvc service.AdminService
}

// NewAdminHandler 创建管理后台处理器
func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Login 口令登录
// POST /admin/login
// 请求体: request.AdminLoginRequest
func (h *AdminHandler) Login(c *gin.Context) {
	var req request.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.adminSvc.Login(middleware.WorkspaceID(c), req.Password); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// Logout POST /admin/logout
func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.adminSvc.Logout(middleware.WorkspaceID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ListTickets GET /admin/ticket/list
func (h *AdminHandler) ListTickets(c *gin.Context) {
	data, err := h.adminSvc.ListTickets(middleware.WorkspaceID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Stats GET /admin/ticket/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	data, err := h.adminSvc.Stats(middleware.WorkspaceID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SelectTicket POST /admin/ticket/select
func (h *AdminHandler) SelectTicket(c *gin.Context) {
	var req request.SelectTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.adminSvc.SelectTicket(middleware.WorkspaceID(c), req.TicketId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Reply 回复选中的工单，只弹出提示条
// POST /admin/ticket/reply
func (h *AdminHandler) Reply(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.adminSvc.Reply(middleware.WorkspaceID(c), req.Text); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// CloseTicket 关闭选中的工单，只弹出提示条
// POST /admin/ticket/close
func (h *AdminHandler) CloseTicket(c *gin.Context) {
	if err := h.adminSvc.CloseTicket(middleware.WorkspaceID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
