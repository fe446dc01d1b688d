package handler

import (
	"alisa_ai_server/internal/dto/request"
	"alisa_ai_server/internal/infrastructure/middleware"
	"alisa_ai_server/internal/service"

	"github.com/gin-gonic/gin"
)

// FriendHandler 好友请求处理器
type FriendHandler struct {
	friendSvc service.FriendService
}

// NewFriendHandler 创建好友处理器
func NewFriendHandler(friendSvc service.FriendService) *FriendHandler {
	return &FriendHandler{friendSvc: friendSvc}
}

// List 好友列表
// GET /friend/list
func (h *FriendHandler) List(c *gin.Context) {
	data, err := h.friendSvc.ListFriends(middleware.WorkspaceID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Search 搜索可添加的用户
// GET /friend/search?query=xxx
// 响应: respond.SearchFriendRespond
func (h *FriendHandler) Search(c *gin.Context) {
	var req request.SearchFriendRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.friendSvc.Search(middleware.WorkspaceID(c), req.Query)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Add 添加好友
// POST /friend/add
// 请求体: request.AddFriendRequest
func (h *FriendHandler) Add(c *gin.Context) {
	var req request.AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.friendSvc.AddFriend(middleware.WorkspaceID(c), req.UserId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
