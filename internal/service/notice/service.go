// Package notice 实现提示条（toast）
// 提示条记录在工作区上，到期后由延时任务自动移除
package notice

import (
	"time"

	"alisa_ai_server/internal/dao/memory"
	"alisa_ai_server/internal/gateway/websocket"
	"alisa_ai_server/internal/infrastructure/task"
	"alisa_ai_server/internal/model"
	"alisa_ai_server/pkg/util/snowflake"

	"go.uber.org/zap"
)

// Notifier 其他 Service 用来弹出提示条的接口
type Notifier interface {
	Push(workspaceID string, level model.NoticeLevel, text string) model.Notice
}

// noticeService 提示条业务实现
type noticeService struct {
	repo  memory.WorkspaceRepository
	sched task.Scheduler
	pub   websocket.Publisher
	ttl   time.Duration
}

// NewNoticeService 构造函数
func NewNoticeService(repo memory.WorkspaceRepository, sched task.Scheduler, pub websocket.Publisher, ttl time.Duration) *noticeService {
	return &noticeService{repo: repo, sched: sched, pub: pub, ttl: ttl}
}

// Push 记录一条提示条并安排自动消失
// 不能在持有工作区锁的回调里调用
func (s *noticeService) Push(workspaceID string, level model.NoticeLevel, text string) model.Notice {
	n := model.Notice{
		ID:    snowflake.GenerateIDString(),
		Level: level,
		Text:  text,
	}
	err := s.repo.Update(workspaceID, func(ws *model.Workspace) error {
		ws.Notices = append(ws.Notices, n)
		return nil
	})
	if err != nil {
		zap.L().Warn("push notice to missing workspace", zap.String("workspace", workspaceID), zap.Error(err))
		return n
	}

	s.pub.Publish(model.Event{Type: model.EventNotice, WorkspaceID: workspaceID, Data: n})
	s.sched.After(s.ttl, func() {
		s.Dismiss(workspaceID, n.ID)
	})
	return n
}

// Dismiss 移除提示条，返回是否确实移除
func (s *noticeService) Dismiss(workspaceID, noticeID string) bool {
	removed := false
	_ = s.repo.Update(workspaceID, func(ws *model.Workspace) error {
		for i, n := range ws.Notices {
			if n.ID == noticeID {
				ws.Notices = append(ws.Notices[:i], ws.Notices[i+1:]...)
				removed = true
				break
			}
		}
		return nil
	})
	if removed {
		s.pub.Publish(model.Event{
			Type:        model.EventNoticeDismissed,
			WorkspaceID: workspaceID,
			Data:        map[string]string{"id": noticeID},
		})
	}
	return removed
}

// Active 返回尚未消失的提示条
func (s *noticeService) Active(workspaceID string) ([]model.Notice, error) {
	var out []model.Notice
	err := s.repo.View(workspaceID, func(ws *model.Workspace) error {
		out = make([]model.Notice, len(ws.Notices))
		copy(out, ws.Notices)
		return nil
	})
	return out, err
}
