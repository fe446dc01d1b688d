// Package support 实现用户侧的客服对话
// 对话只保存在当前工作区，不会进入管理后台的工单
package support

import (
	"strings"

	"alisa_ai_server/internal/dao/memory"
	"alisa_ai_server/internal/dto/respond"
	"alisa_ai_server/internal/gateway/websocket"
	"alisa_ai_server/internal/model"
	"alisa_ai_server/pkg/errorx"
	"alisa_ai_server/pkg/util/clock"
	"alisa_ai_server/pkg/util/snowflake"

	"go.uber.org/zap"
)

type supportService struct {
	repo  memory.WorkspaceRepository
	pub   websocket.Publisher
	clock clock.Clock
}

// NewSupportService 构造函数
func NewSupportService(repo memory.WorkspaceRepository, pub websocket.Publisher, clk clock.Clock) *supportService {
	return &supportService{repo: repo, pub: pub, clock: clk}
}

// Send 追加一条用户消息，空白消息不追加
func (s *supportService) Send(workspaceID, text string) (*respond.MessageRespond, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errorx.ErrEmptyMessage
	}
	msg := model.SupportMessage{
		ID:     snowflake.GenerateIDString(),
		Text:   text,
		Sender: model.SenderUser,
		Time:   s.clock.Stamp(),
	}
	err := s.repo.Update(workspaceID, func(ws *model.Workspace) error {
		if ws.User == nil {
			return errorx.ErrNotRegistered
		}
		ws.Support = append(ws.Support, msg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.pub.Publish(model.Event{Type: model.EventSupportMessage, WorkspaceID: workspaceID, Data: msg})
	zap.L().Info("support message sent", zap.String("workspace", workspaceID))
	rsp := respond.FromMessages([]model.Message{msg})[0]
	return &rsp, nil
}

// Messages 客服对话记录
func (s *supportService) Messages(workspaceID string) ([]respond.MessageRespond, error) {
	var out []respond.MessageRespond
	err := s.repo.View(workspaceID, func(ws *model.Workspace) error {
		if ws.User == nil {
			return errorx.ErrNotRegistered
		}
		out = respond.FromMessages(ws.Support)
		return nil
	})
	return out, err
}
