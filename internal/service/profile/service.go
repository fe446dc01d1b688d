// Package profile 实现注册与个人资料
package profile

import (
	"unicode/utf8"

	"alisa_ai_server/internal/dao/memory"
	"alisa_ai_server/internal/dto/request"
	"alisa_ai_server/internal/dto/respond"
	"alisa_ai_server/internal/gateway/websocket"
	"alisa_ai_server/internal/model"
	"alisa_ai_server/internal/service/notice"
	"alisa_ai_server/pkg/constants"
	"alisa_ai_server/pkg/errorx"
	"alisa_ai_server/pkg/util/random"

	"go.uber.org/zap"
)

const (
	welcomeText     = "Добро пожаловать в Алиса AI!"
	editIgnoredText = "Изменения профиля пока не сохраняются"
)

// profileService 注册与资料业务实现
type profileService struct {
	repo          memory.WorkspaceRepository
	dir           memory.DirectoryRepository
	notifier      notice.Notifier
	pub           websocket.Publisher
	defaultAvatar string
}

// NewProfileService 构造函数
func NewProfileService(
	repo memory.WorkspaceRepository,
	dir memory.DirectoryRepository,
	notifier notice.Notifier,
	pub websocket.Publisher,
	defaultAvatar string,
) *profileService {
	return &profileService{
		repo:          repo,
		dir:           dir,
		notifier:      notifier,
		pub:           pub,
		defaultAvatar: defaultAvatar,
	}
}

// Register 注册当前用户
// 成功后工作区从注册页切换到资料页，用户同时进入通讯录供其他人搜索
func (p *profileService) Register(workspaceID string, req request.RegisterRequest) (*respond.UserInfoRespond, error) {
	// 1. 必填校验（与表单 required 一致：只拒绝空串）
	if req.Name == "" || req.Phone == "" || req.Email == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "Заполните имя, телефон и почту")
	}
	avatar := req.Avatar
	if avatar == "" {
		avatar = p.defaultAvatar
	}
	if utf8.RuneCountInString(avatar) > constants.AVATAR_MAX_LEN {
		return nil, errorx.New(errorx.CodeInvalidParam, "Аватарка: не больше двух символов")
	}

	user := model.User{
		ID:     constants.USER_ID_PREFIX + random.GetNowAndLenRandomString(constants.USER_ID_RAND_LEN),
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Avatar: avatar,
	}

	// 2. 写入工作区
	err := p.repo.Update(workspaceID, func(ws *model.Workspace) error {
		if ws.User != nil {
			return errorx.ErrAlreadyRegistered
		}
		u := user
		ws.User = &u
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. 进入通讯录，通知页面
	p.dir.Add(model.DirectoryEntry{User: user, Presence: model.PresenceOnline})
	p.pub.Publish(model.Event{Type: model.EventScreen, WorkspaceID: workspaceID, Data: model.ScreenProfile})
	p.notifier.Push(workspaceID, model.NoticeSuccess, welcomeText)

	zap.L().Info("user registered", zap.String("workspace", workspaceID), zap.String("user", user.ID))
	rsp := respond.FromUser(user)
	return &rsp, nil
}

// GetProfile 获取当前用户资料
func (p *profileService) GetProfile(workspaceID string) (*respond.UserInfoRespond, error) {
	var rsp respond.UserInfoRespond
	err := p.repo.View(workspaceID, func(ws *model.Workspace) error {
		if ws.User == nil {
			return errorx.ErrNotRegistered
		}
		rsp = respond.FromUser(*ws.User)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rsp, nil
}

// EditProfile 编辑资料弹窗
// 弹窗存在但不修改状态：返回原资料并提示未保存
func (p *profileService) EditProfile(workspaceID string, req request.EditProfileRequest) (*respond.UserInfoRespond, error) {
	if utf8.RuneCountInString(req.Avatar) > constants.AVATAR_MAX_LEN {
		return nil, errorx.New(errorx.CodeInvalidParam, "Аватарка: не больше двух символов")
	}
	rsp, err := p.GetProfile(workspaceID)
	if err != nil {
		return nil, err
	}
	p.notifier.Push(workspaceID, model.NoticeInfo, editIgnoredText)
	return rsp, nil
}

// Screen 当前界面
func (p *profileService) Screen(workspaceID string) (model.Screen, error) {
	var screen model.Screen
	err := p.repo.View(workspaceID, func(ws *model.Workspace) error {
		screen = ws.Screen()
		return nil
	})
	return screen, err
}
