// Package chat 实现好友聊天面板
package chat

import (
	"strings"

	"alisa_ai_server/internal/config"
	"alisa_ai_server/internal/dao/memory"
	"alisa_ai_server/internal/dto/respond"
	"alisa_ai_server/internal/gateway/websocket"
	"alisa_ai_server/internal/infrastructure/task"
	"alisa_ai_server/internal/model"
	"alisa_ai_server/internal/service/notice"
	"alisa_ai_server/pkg/errorx"
	"alisa_ai_server/pkg/util/clock"
	"alisa_ai_server/pkg/util/snowflake"

	"go.uber.org/zap"
)

const callText = "Переход в приложение Телефон..."

// ErrFriendNotFound 好友列表中没有该用户
var ErrFriendNotFound = errorx.New(errorx.CodeNotFound, "Друг не найден")

// chatService 聊天业务实现
type chatService struct {
	repo     memory.WorkspaceRepository
	notifier notice.Notifier
	pub      websocket.Publisher
	sched    task.Scheduler
	clock    clock.Clock
	cfg      config.ChatConfig
}

// NewChatService 构造函数
func NewChatService(
	repo memory.WorkspaceRepository,
	notifier notice.Notifier,
	pub websocket.Publisher,
	sched task.Scheduler,
	clk clock.Clock,
	cfg config.ChatConfig,
) *chatService {
	return &chatService{
		repo:     repo,
		notifier: notifier,
		pub:      pub,
		sched:    sched,
		clock:    clk,
		cfg:      cfg,
	}
}

// Open 点击"写消息"：选中好友并清空面板
func (s *chatService) Open(workspaceID, friendID string) (*respond.ChatPanelRespond, error) {
	return s.selectCounterpart(workspaceID, friendID, true)
}

// Select 点击好友卡片：只切换聊天对象，保留已有消息
func (s *chatService) Select(workspaceID, friendID string) (*respond.ChatPanelRespond, error) {
	return s.selectCounterpart(workspaceID, friendID, false)
}

func (s *chatService) selectCounterpart(workspaceID, friendID string, clear bool) (*respond.ChatPanelRespond, error) {
	var rsp *respond.ChatPanelRespond
	err := s.repo.Update(workspaceID, func(ws *model.Workspace) error {
		if ws.User == nil {
			return errorx.ErrNotRegistered
		}
		f, ok := ws.FindFriend(friendID)
		if !ok {
			return ErrFriendNotFound
		}
		ws.Counterpart = &f
		if clear {
			ws.Messages = nil
		}
		rsp = panelOf(ws)
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Debug("chat counterpart selected",
		zap.String("workspace", workspaceID),
		zap.String("friend", friendID),
		zap.Bool("cleared", clear))
	return rsp, nil
}

// Send 发送一条消息
// 空白消息不追加；开启自动回复时延时追加一条对方的固定回复
func (s *chatService) Send(workspaceID, text string) (*respond.MessageRespond, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errorx.ErrEmptyMessage
	}

	msg := model.Message{
		ID:     snowflake.GenerateIDString(),
		Text:   text,
		Sender: model.SenderMe,
		Time:   s.clock.Stamp(),
	}
	err := s.repo.Update(workspaceID, func(ws *model.Workspace) error {
		if ws.User == nil {
			return errorx.ErrNotRegistered
		}
		if ws.Counterpart == nil {
			return errorx.ErrNoCounterpart
		}
		ws.Messages = append(ws.Messages, msg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.pub.Publish(model.Event{Type: model.EventChatMessage, WorkspaceID: workspaceID, Data: msg})
	if s.cfg.AutoReply {
		s.sched.After(s.cfg.AutoReplyDelay.Duration, func() {
			s.autoReply(workspaceID)
		})
	}

	rsp := respond.FromMessages([]model.Message{msg})[0]
	return &rsp, nil
}

// autoReply 到点后追加固定回复，追加到此刻的面板上
func (s *chatService) autoReply(workspaceID string) {
	reply := model.Message{
		ID:     snowflake.GenerateIDString(),
		Text:   s.cfg.AutoReplyText,
		Sender: model.SenderFriend,
		Time:   s.clock.Stamp(),
	}
	err := s.repo.Update(workspaceID, func(ws *model.Workspace) error {
		ws.Messages = append(ws.Messages, reply)
		return nil
	})
	if err != nil {
		zap.L().Warn("auto reply dropped", zap.String("workspace", workspaceID), zap.Error(err))
		return
	}
	s.pub.Publish(model.Event{Type: model.EventChatMessage, WorkspaceID: workspaceID, Data: reply})
}

// Messages 当前聊天面板
func (s *chatService) Messages(workspaceID string) (*respond.ChatPanelRespond, error) {
	var rsp *respond.ChatPanelRespond
	err := s.repo.View(workspaceID, func(ws *model.Workspace) error {
		if ws.User == nil {
			return errorx.ErrNotRegistered
		}
		rsp = panelOf(ws)
		return nil
	})
	return rsp, err
}

// Call 拨打客服电话，返回 tel: 链接
func (s *chatService) Call(workspaceID string) (*respond.CallRespond, error) {
	if !s.repo.Exists(workspaceID) {
		return nil, memory.ErrWorkspaceNotFound
	}
	s.notifier.Push(workspaceID, model.NoticeInfo, callText)
	return &respond.CallRespond{Uri: "tel:" + s.cfg.CallNumber, Notice: callText}, nil
}

func panelOf(ws *model.Workspace) *respond.ChatPanelRespond {
	rsp := &respond.ChatPanelRespond{Messages: respond.FromMessages(ws.Messages)}
	if ws.Counterpart != nil {
		f := respond.FromFriend(*ws.Counterpart)
		rsp.Counterpart = &f
	}
	return rsp
}
