// Package friend 实现好友列表、搜索与添加
package friend

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
	nothingFoundText = "Ничего не найдено"
	friendAddedText  = "Друг добавлен!"
)

// friendService 好友业务实现
type friendService struct {
	repo     memory.WorkspaceRepository
	dir      memory.DirectoryRepository
	notifier notice.Notifier
}

// NewFriendService 构造函数
func NewFriendService(repo memory.WorkspaceRepository, dir memory.DirectoryRepository, notifier notice.Notifier) *friendService {
	return &friendService{repo: repo, dir: dir, notifier: notifier}
}

// ListFriends 按添加顺序返回好友列表
func (f *friendService) ListFriends(workspaceID string) ([]respond.FriendRespond, error) {
	var out []respond.FriendRespond
	err := f.repo.View(workspaceID, func(ws *model.Workspace) error {
		if ws.User == nil {
			return errorx.ErrNotRegistered
		}
		out = make([]respond.FriendRespond, 0, len(ws.Friends))
		for _, fr := range ws.Friends {
			out = append(out, respond.FromFriend(fr))
		}
		return nil
	})
	return out, err
}

// Search 在通讯录中搜索可添加的用户
// 名称包含 query（忽略大小写）即命中；排除自己和已添加的好友；保持通讯录原有顺序
func (f *friendService) Search(workspaceID, query string) (*respond.SearchFriendRespond, error) {
	var (
		selfID string
		added  = make(map[string]struct{})
	)
	err := f.repo.View(workspaceID, func(ws *model.Workspace) error {
		if ws.User == nil {
			return errorx.ErrNotRegistered
		}
		selfID = ws.User.ID
		for _, fr := range ws.Friends {
			added[fr.ID] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	rsp := &respond.SearchFriendRespond{Candidates: []respond.CandidateRespond{}}
	for _, e := range f.dir.List() {
		if e.User.ID == selfID {
			continue
		}
		if _, ok := added[e.User.ID]; ok {
			continue
		}
		if !matches(e.User, needle) {
			continue
		}
		rsp.Candidates = append(rsp.Candidates, respond.CandidateRespond{
			UserId: e.User.ID,
			Name:   e.User.Name,
			Avatar: e.User.Avatar,
			Status: string(e.Presence),
		})
	}
	if len(rsp.Candidates) == 0 {
		rsp.Notice = nothingFoundText
	}
	return rsp, nil
}

// matches 空查询匹配全部
func matches(u model.User, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), needle)
}

// AddFriend 把通讯录中的用户加入好友列表
// 先校验注册状态，再查找用户；已添加的用户再次添加会被拒绝
func (f *friendService) AddFriend(workspaceID, userID string) (*respond.FriendRespond, error) {
	var friend model.Friend
	err := f.repo.Update(workspaceID, func(ws *model.Workspace) error {
		if ws.User == nil {
			return errorx.ErrNotRegistered
		}
		entry, ok := f.dir.Find(userID)
		if !ok {
			return errorx.New(errorx.CodeUserNotExist, "Пользователь не найден")
		}
		if ws.User.ID == userID {
			return errorx.New(errorx.CodeInvalidParam, "Нельзя добавить себя в друзья")
		}
		if ws.HasFriend(userID) {
			return errorx.ErrFriendExist
		}
		friend = model.NewFriend(entry)
		ws.Friends = append(ws.Friends, friend)
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.notifier.Push(workspaceID, model.NoticeSuccess, friendAddedText)
	zap.L().Info("friend added", zap.String("workspace", workspaceID), zap.String("friend", userID))
	rsp := respond.FromFriend(friend)
	return &rsp, nil
}
