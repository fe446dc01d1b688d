package memory

import (
	"sync"

	"alisa_ai_server/internal/model"
)

// DirectoryRepository 通讯录接口：所有已注册、可被搜索的用户
type DirectoryRepository interface {
	// Add 追加一个用户
	Add(entry model.DirectoryEntry)
	// List 按加入顺序返回全部用户（副本）
	List() []model.DirectoryEntry
	// Find 按用户 ID 查找
	Find(id string) (model.DirectoryEntry, bool)
	// Remove 移除用户，种子用户也可以被移除
	Remove(id string) bool
}

// Directory 进程级共享的通讯录
type Directory struct {
	mu      sync.RWMutex
	entries []model.DirectoryEntry
}

// NewDirectory 以种子用户初始化通讯录
func NewDirectory(seed []model.DirectoryEntry) *Directory {
	entries := make([]model.DirectoryEntry, len(seed))
	copy(entries, seed)
	return &Directory{entries: entries}
}

// Add 追加到末尾，保持加入顺序
func (d *Directory) Add(entry model.DirectoryEntry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = append(d.entries, entry)
}

// List 返回副本，调用方可以随意过滤
func (d *Directory) List() []model.DirectoryEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.DirectoryEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Find 按 ID 查找
func (d *Directory) Find(id string) (model.DirectoryEntry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, e := range d.entries {
		if e.User.ID == id {
			return e, true
		}
	}
	return model.DirectoryEntry{}, false
}

// Remove 按 ID 移除，保持其余用户的顺序
func (d *Directory) Remove(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, e := range d.entries {
		if e.User.ID == id {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			return true
		}
	}
	return false
}
