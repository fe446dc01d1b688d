// Package admin 实现管理后台：口令登录、工单列表与处理
// 回复和关闭只弹出提示条，不修改工单
package admin

import (
	"strings"

	"alisa_ai_server/internal/dao/memory"
	"alisa_ai_server/internal/dto/respond"
	"alisa_ai_server/internal/model"
	"alisa_ai_server/internal/service/notice"
	"alisa_ai_server/pkg/errorx"

	"go.uber.org/zap"
)

const (
	welcomeText = "Добро пожаловать в админ-панель!"
	repliedText = "Ответ отправлен!"
	closedText  = "Обращение закрыто"
)

// ErrTicketNotFound 工单不存在
var ErrTicketNotFound = errorx.New(errorx.CodeNotFound, "Обращение не найдено")

type adminService struct {
	repo     memory.WorkspaceRepository
	notifier notice.Notifier
	password string
}

// NewAdminService 构造函数
// password: 管理后台静态口令，按字面值精确比较
func NewAdminService(repo memory.WorkspaceRepository, notifier notice.Notifier, password string) *adminService {
	return &adminService{repo: repo, notifier: notifier, password: password}
}

// Login 口令登录
func (s *adminService) Login(workspaceID, password string) error {
	ok := password == s.password
	err := s.repo.Update(workspaceID, func(ws *model.Workspace) error {
		if ok {
			ws.Admin.Authenticated = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	if !ok {
		s.notifier.Push(workspaceID, model.NoticeError, errorx.ErrInvalidPassword.Msg)
		zap.L().Warn("admin login rejected", zap.String("workspace", workspaceID))
		return errorx.ErrInvalidPassword
	}
	s.notifier.Push(workspaceID, model.NoticeSuccess, welcomeText)
	zap.L().Info("admin logged in", zap.String("workspace", workspaceID))
	return nil
}

// Logout 退出登录，同时清除选中的工单
func (s *adminService) Logout(workspaceID string) error {
	return s.repo.Update(workspaceID, func(ws *model.Workspace) error {
		ws.Admin.Authenticated = false
		ws.Admin.SelectedTicketID = ""
		return nil
	})
}

// ListTickets 工单摘要列表
func (s *adminService) ListTickets(workspaceID string) ([]respond.TicketSummaryRespond, error) {
	var out []respond.TicketSummaryRespond
	err := s.withAdmin(workspaceID, func(a *model.AdminState) error {
		out = make([]respond.TicketSummaryRespond, 0, len(a.Tickets))
		for _, t := range a.Tickets {
			out = append(out, respond.TicketSummaryRespond{
				Id:           t.ID,
				UserName:     t.UserName,
				UserAvatar:   t.UserAvatar,
				Status:       string(t.Status),
				LastMessage:  t.LastMessage(),
				MessageCount: len(t.Messages),
			})
		}
		return nil
	})
	return out, err
}

// SelectTicket 选中工单并返回详情
func (s *adminService) SelectTicket(workspaceID, ticketID string) (*respond.TicketDetailRespond, error) {
	var rsp *respond.TicketDetailRespond
	err := s.withAdmin(workspaceID, func(a *model.AdminState) error {
		t, ok := a.FindTicket(ticketID)
		if !ok {
			return ErrTicketNotFound
		}
		a.SelectedTicketID = t.ID
		rsp = detailOf(*t)
		return nil
	})
	return rsp, err
}

// Reply 回复选中的工单
func (s *adminService) Reply(workspaceID, text string) error {
	if strings.TrimSpace(text) == "" {
		return errorx.ErrEmptyMessage
	}
	if err := s.withSelected(workspaceID); err != nil {
		return err
	}
	s.notifier.Push(workspaceID, model.NoticeSuccess, repliedText)
	return nil
}

// CloseTicket 关闭选中的工单
func (s *adminService) CloseTicket(workspaceID string) error {
	if err := s.withSelected(workspaceID); err != nil {
		return err
	}
	s.notifier.Push(workspaceID, model.NoticeSuccess, closedText)
	return nil
}

// Stats 工单统计
func (s *adminService) Stats(workspaceID string) (*respond.TicketStatsRespond, error) {
	rsp := &respond.TicketStatsRespond{}
	err := s.withAdmin(workspaceID, func(a *model.AdminState) error {
		for _, t := range a.Tickets {
			switch t.Status {
			case model.TicketOpen:
				rsp.Open++
			case model.TicketClosed:
				rsp.Closed++
			}
		}
		rsp.Total = len(a.Tickets)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rsp, nil
}

// withAdmin 在已登录的前提下访问管理后台状态
func (s *adminService) withAdmin(workspaceID string, fn func(a *model.AdminState) error) error {
	return s.repo.Update(workspaceID, func(ws *model.Workspace) error {
		if !ws.Admin.Authenticated {
			return errorx.ErrUnauthorized
		}
		return fn(&ws.Admin)
	})
}

// withSelected 检查存在选中且未关闭的工单
func (s *adminService) withSelected(workspaceID string) error {
	return s.withAdmin(workspaceID, func(a *model.AdminState) error {
		t, ok := a.SelectedTicket()
		if !ok {
			return errorx.ErrNoTicketSelected
		}
		if t.Status == model.TicketClosed {
			return errorx.ErrTicketClosed
		}
		return nil
	})
}

func detailOf(t model.Ticket) *respond.TicketDetailRespond {
	return &respond.TicketDetailRespond{
		Id:         t.ID,
		UserId:     t.UserID,
		UserName:   t.UserName,
		UserAvatar: t.UserAvatar,
		Status:     string(t.Status),
		CreatedAt:  t.CreatedAt,
		Messages:   respond.FromMessages(t.Messages),
	}
}
