// Package handler 提供 HTTP 请求处理器
// 本文件定义 Handler 聚合结构和构造函数
package handler

import (
	"alisa_ai_server/internal/gateway/websocket"
	"alisa_ai_server/internal/service"
)

// Handlers 聚合所有 Handler 实例
// Router 层通过此结构访问各个 Handler
type Handlers struct {
	Workspace *WorkspaceHandler
	User      *UserHandler
	Friend    *FriendHandler
	Chat      *ChatHandler
	Settings  *SettingsHandler
	Support   *SupportHandler
	Admin     *AdminHandler
	Notice    *NoticeHandler

	// WorkspaceChecker 供工作区中间件使用
	WorkspaceChecker service.WorkspaceService
}

// NewHandlers 创建并注入所有 Handler 实例
// svc: Service 层聚合实例
// hub: WebSocket 连接管理，可为空
func NewHandlers(svc *service.Services, hub *websocket.Hub) *Handlers {
	return &Handlers{
		Workspace:        NewWorkspaceHandler(svc.Workspace, hub),
		User:             NewUserHandler(svc.Profile),
		Friend:           NewFriendHandler(svc.Friend),
		Chat:             NewChatHandler(svc.Chat),
		Settings:         NewSettingsHandler(svc.Theme),
		Support:          NewSupportHandler(svc.Support),
		Admin:            NewAdminHandler(svc.Admin),
		Notice:           NewNoticeHandler(svc.Notice),
		WorkspaceChecker: svc.Workspace,
	}
}
