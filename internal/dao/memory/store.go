// Package memory 提供进程内的状态存储
// 工作区只存在于内存中，不做持久化；关闭或长时间不活跃的工作区由 workspace 服务删除
package memory

import (
	"sync"
	"sync/atomic"
	"time"

	"alisa_ai_server/internal/model"
	"alisa_ai_server/pkg/errorx"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrWorkspaceNotFound 工作区不存在（通常是页面刷新前的旧 ID）
var ErrWorkspaceNotFound = errorx.New(errorx.CodeNotFound, "Сессия не найдена, обновите страницу")

// WorkspaceRepository 工作区存取接口
type WorkspaceRepository interface {
	// Create 创建新的工作区并返回其 ID
	Create() string
	// Exists 判断工作区是否存在
	Exists(id string) bool
	// View 在加锁状态下读取工作区
	View(id string, fn func(ws *model.Workspace) error) error
	// Update 在加锁状态下修改工作区
	Update(id string, fn func(ws *model.Workspace) error) error
	// Delete 删除工作区，返回其中已注册的用户（未注册时为 nil）
	Delete(id string) (*model.User, bool)
	// IdleSince 返回最后一次访问早于 cutoff 的工作区
	IdleSince(cutoff time.Time) []string
}

type entry struct {
	mu      sync.Mutex
	ws      *model.Workspace
	touched atomic.Int64 // 最后访问时间，UnixNano
}

// Store 基于 map 的工作区存储
// 每个工作区单独加锁，延时任务与请求之间互不阻塞其他工作区
type Store struct {
	mu         sync.RWMutex
	workspaces map[string]*entry
	tickets    []model.Ticket
	now        func() time.Time
}

// NewStore 创建工作区存储
// tickets: 每个新工作区的管理后台初始工单（会被深拷贝）
func NewStore(tickets []model.Ticket) *Store {
	return &Store{
		workspaces: make(map[string]*entry),
		tickets:    tickets,
		now:        time.Now,
	}
}

// SetClock 替换时间来源，测试中用来模拟空闲
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Create 创建新的工作区
func (s *Store) Create() string {
	id := uuid.NewString()
	e := &entry{ws: model.NewWorkspace(id, s.tickets)}

	s.mu.Lock()
	e.touched.Store(s.now().UnixNano())
	s.workspaces[id] = e
	total := len(s.workspaces)
	s.mu.Unlock()

	zap.L().Info("workspace created", zap.String("workspace", id), zap.Int("total", total))
	return id
}

// Exists 判断工作区是否存在
func (s *Store) Exists(id string) bool {
	_, ok := s.lookup(id)
	return ok
}

// View 只读访问
func (s *Store) View(id string, fn func(ws *model.Workspace) error) error {
	return s.Update(id, fn)
}

// Update 加锁执行 fn，fn 返回的错误原样返回
func (s *Store) Update(id string, fn func(ws *model.Workspace) error) error {
	e, ok := s.lookup(id)
	if !ok {
		return ErrWorkspaceNotFound
	}
	e.touched.Store(s.clock()().UnixNano())
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.ws)
}

// Delete 删除工作区
// 正在执行的 Update 不受影响，之后的访问返回 ErrWorkspaceNotFound
func (s *Store) Delete(id string) (*model.User, bool) {
	s.mu.Lock()
	e, ok := s.workspaces[id]
	delete(s.workspaces, id)
	total := len(s.workspaces)
	s.mu.Unlock()
	if !ok {
		return nil, false
	}

	e.mu.Lock()
	var user *model.User
	if e.ws.User != nil {
		u := *e.ws.User
		user = &u
	}
	e.mu.Unlock()

	zap.L().Info("workspace deleted", zap.String("workspace", id), zap.Int("total", total))
	return user, true
}

// IdleSince 返回最后一次访问早于 cutoff 的工作区
func (s *Store) IdleSince(cutoff time.Time) []string {
	limit := cutoff.UnixNano()
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []string
	for id, e := range s.workspaces {
		if e.touched.Load() < limit {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *Store) lookup(id string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.workspaces[id]
	return e, ok
}

func (s *Store) clock() func() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}
