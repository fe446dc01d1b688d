// Package workspace 管理标签页工作区的创建与回收
// 页面关闭、刷新或长时间不活跃后，工作区连同其注册用户一起删除
package workspace

import (
	"time"

	"alisa_ai_server/internal/dao/memory"
	"alisa_ai_server/internal/dto/respond"
	"alisa_ai_server/internal/infrastructure/task"
	"alisa_ai_server/internal/model"

	"go.uber.org/zap"
)

type workspaceService struct {
	repo  memory.WorkspaceRepository
	dir   memory.DirectoryRepository
	sched task.Scheduler
	now   func() time.Time
}

// NewWorkspaceService 构造函数
func NewWorkspaceService(repo memory.WorkspaceRepository, dir memory.DirectoryRepository, sched task.Scheduler) *workspaceService {
	return &workspaceService{repo: repo, dir: dir, sched: sched, now: time.Now}
}

// Create 打开新标签页时创建工作区，初始停留在注册页
func (s *workspaceService) Create() *respond.WorkspaceRespond {
	id := s.repo.Create()
	return &respond.WorkspaceRespond{WorkspaceId: id, Screen: string(model.ScreenRegistration)}
}

// Exists 工作区是否存在
func (s *workspaceService) Exists(workspaceID string) bool {
	return s.repo.Exists(workspaceID)
}

// Close 删除工作区，注册过的用户同时从通讯录移除
// 页面卸载、WebSocket 断开和空闲回收都走这里
func (s *workspaceService) Close(workspaceID string) bool {
	user, ok := s.repo.Delete(workspaceID)
	if !ok {
		return false
	}
	if user != nil {
		s.dir.Remove(user.ID)
		zap.L().Info("user left directory", zap.String("workspace", workspaceID), zap.String("user", user.ID))
	}
	return true
}

// CloseLater grace 之后工作区仍无在线连接则删除
// 刷新页面时旧连接断开，新标签页不会再连回旧工作区
func (s *workspaceService) CloseLater(workspaceID string, grace time.Duration, online func(workspaceID string) bool) {
	s.sched.After(grace, func() {
		if online != nil && online(workspaceID) {
			return
		}
		s.Close(workspaceID)
	})
}

// StartEviction 每隔 interval 删除一次超过 ttl 未访问的工作区
// ttl 或 interval 不大于 0 时不回收
func (s *workspaceService) StartEviction(ttl, interval time.Duration) {
	if ttl <= 0 || interval <= 0 {
		return
	}
	s.sched.After(interval, func() {
		s.Sweep(ttl)
		s.StartEviction(ttl, interval)
	})
}

// Sweep 删除空闲工作区，返回删除数量
func (s *workspaceService) Sweep(ttl time.Duration) int {
	n := 0
	for _, id := range s.repo.IdleSince(s.now().Add(-ttl)) {
		if s.Close(id) {
			n++
		}
	}
	if n > 0 {
		zap.L().Info("idle workspaces evicted", zap.Int("count", n), zap.Duration("ttl", ttl))
	}
	return n
}
