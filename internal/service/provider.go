// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"alisa_ai_server/internal/config"
	"alisa_ai_server/internal/dao/memory"
	"alisa_ai_server/internal/gateway/websocket"
	"alisa_ai_server/internal/infrastructure/task"
	"alisa_ai_server/internal/service/admin"
	"alisa_ai_server/internal/service/chat"
	"alisa_ai_server/internal/service/friend"
	"alisa_ai_server/internal/service/notice"
	"alisa_ai_server/internal/service/profile"
	"alisa_ai_server/internal/service/support"
	"alisa_ai_server/internal/service/theme"
	"alisa_ai_server/internal/service/workspace"
	"alisa_ai_server/pkg/util/clock"
)

// Services 聚合所有 Service 实例
type Services struct {
	Workspace WorkspaceService
	Profile   ProfileService
	Friend    FriendService
	Chat      ChatService
	Support   SupportService
	Theme     ThemeService
	Admin     AdminService
	Notice    NoticeService
}

// Deps Service 层的外部依赖
type Deps struct {
	Workspaces memory.WorkspaceRepository
	Directory  memory.DirectoryRepository
	Scheduler  task.Scheduler
	Publisher  websocket.Publisher
	Clock      clock.Clock
	Config     *config.Config
}

// NewServices 创建并注入所有 Service 实例
// Publisher 为空时事件直接丢弃
func NewServices(d Deps) *Services {
	pub := d.Publisher
	if pub == nil {
		pub = websocket.Discard{}
	}
	cfg := d.Config

	noticeSvc := notice.NewNoticeService(d.Workspaces, d.Scheduler, pub, cfg.NoticeConfig.TTL.Duration)

	return &Services{
		Workspace: workspace.NewWorkspaceService(d.Workspaces, d.Directory, d.Scheduler),
		Profile:   profile.NewProfileService(d.Workspaces, d.Directory, noticeSvc, pub, cfg.UIConfig.DefaultAvatar),
		Friend:    friend.NewFriendService(d.Workspaces, d.Directory, noticeSvc),
		Chat:      chat.NewChatService(d.Workspaces, noticeSvc, pub, d.Scheduler, d.Clock, cfg.ChatConfig),
		Support:   support.NewSupportService(d.Workspaces, pub, d.Clock),
		Theme:     theme.NewThemeService(d.Workspaces, noticeSvc),
		Admin:     admin.NewAdminService(d.Workspaces, noticeSvc, cfg.AdminConfig.Password),
		Notice:    noticeSvc,
	}
}
