// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 每个方法的第一个参数是工作区 ID，由中间件从请求中解析
package service

import (
	"time"

	"alisa_ai_server/internal/dto/request"
	"alisa_ai_server/internal/dto/respond"
	"alisa_ai_server/internal/model"
)

// WorkspaceService 标签页工作区
type WorkspaceService interface {
	// Create 创建新工作区
	Create() *respond.WorkspaceRespond
	// Exists 工作区是否存在
	Exists(workspaceID string) bool
	// Close 删除工作区并把用户移出通讯录
	Close(workspaceID string) bool
	// CloseLater 延迟删除，到期时仍在线则保留
	CloseLater(workspaceID string, grace time.Duration, online func(workspaceID string) bool)
	// StartEviction 定期回收空闲工作区
	StartEviction(ttl, interval time.Duration)
}

// ProfileService 注册与个人资料
type ProfileService interface {
	// Register 注册当前用户
	Register(workspaceID string, req request.RegisterRequest) (*respond.UserInfoRespond, error)
	// GetProfile 获取当前用户资料
	GetProfile(workspaceID string) (*respond.UserInfoRespond, error)
	// EditProfile 编辑资料（不保存）
	EditProfile(workspaceID string, req request.EditProfileRequest) (*respond.UserInfoRespond, error)
	// Screen 当前界面
	Screen(workspaceID string) (model.Screen, error)
}

// FriendService 好友
type FriendService interface {
	// ListFriends 好友列表
	ListFriends(workspaceID string) ([]respond.FriendRespond, error)
	// Search 搜索可添加的用户
	Search(workspaceID, query string) (*respond.SearchFriendRespond, error)
	// AddFriend 添加好友
	AddFriend(workspaceID, userID string) (*respond.FriendRespond, error)
}

// ChatService 聊天面板
type ChatService interface {
	// Open 选中好友并清空面板
	Open(workspaceID, friendID string) (*respond.ChatPanelRespond, error)
	// Select 只切换聊天对象
	Select(workspaceID, friendID string) (*respond.ChatPanelRespond, error)
	// Send 发送消息
	Send(workspaceID, text string) (*respond.MessageRespond, error)
	// Messages 当前面板
	Messages(workspaceID string) (*respond.ChatPanelRespond, error)
	// Call 拨号
	Call(workspaceID string) (*respond.CallRespond, error)
}

// SupportService 客服对话
type SupportService interface {
	Send(workspaceID, text string) (*respond.MessageRespond, error)
	Messages(workspaceID string) ([]respond.MessageRespond, error)
}

// ThemeService 背景设置
type ThemeService interface {
	Palette() []respond.ThemeRespond
	Current(workspaceID string) (*respond.ThemeRespond, error)
	SetBackground(workspaceID, name string) (*respond.ThemeRespond, error)
}

// AdminService 管理后台
type AdminService interface {
	// Login 口令登录
	Login(workspaceID, password string) error
	// Logout 退出
	Logout(workspaceID string) error
	// ListTickets 工单列表
	ListTickets(workspaceID string) ([]respond.TicketSummaryRespond, error)
	// SelectTicket 选中工单
	SelectTicket(workspaceID, ticketID string) (*respond.TicketDetailRespond, error)
	// Reply 回复（只提示）
	Reply(workspaceID, text string) error
	// CloseTicket 关闭（只提示）
	CloseTicket(workspaceID string) error
	// Stats 统计
	Stats(workspaceID string) (*respond.TicketStatsRespond, error)
}

// NoticeService 提示条
type NoticeService interface {
	Push(workspaceID string, level model.NoticeLevel, text string) model.Notice
	Dismiss(workspaceID, noticeID string) bool
	Active(workspaceID string) ([]model.Notice, error)
}
