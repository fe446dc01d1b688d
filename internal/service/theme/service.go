// Package theme 实现设置页的背景切换
package theme

import (
	"alisa_ai_server/internal/dao/memory"
	"alisa_ai_server/internal/dto/respond"
	"alisa_ai_server/internal/model"
	"alisa_ai_server/internal/service/notice"
	"alisa_ai_server/pkg/errorx"
)

const changedText = "Фон изменён!"

type themeService struct {
	repo     memory.WorkspaceRepository
	notifier notice.Notifier
}

// NewThemeService 构造函数
func NewThemeService(repo memory.WorkspaceRepository, notifier notice.Notifier) *themeService {
	return &themeService{repo: repo, notifier: notifier}
}

// Palette 可选背景
func (s *themeService) Palette() []respond.ThemeRespond {
	out := make([]respond.ThemeRespond, 0, len(model.BackgroundPalette))
	for _, t := range model.BackgroundPalette {
		out = append(out, respond.FromTheme(t))
	}
	return out
}

// Current 当前工作区的背景
func (s *themeService) Current(workspaceID string) (*respond.ThemeRespond, error) {
	var rsp respond.ThemeRespond
	err := s.repo.View(workspaceID, func(ws *model.Workspace) error {
		rsp = respond.FromTheme(ws.Background)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rsp, nil
}

// SetBackground 按名称切换背景
func (s *themeService) SetBackground(workspaceID, name string) (*respond.ThemeRespond, error) {
	t, ok := model.FindTheme(name)
	if !ok {
		return nil, errorx.ErrUnknownTheme
	}
	err := s.repo.Update(workspaceID, func(ws *model.Workspace) error {
		ws.Background = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifier.Push(workspaceID, model.NoticeSuccess, changedText)
	rsp := respond.FromTheme(t)
	return &rsp, nil
}
