package request

// AddFriendRequest 添加好友（单向，无需对方确认）
type AddFriendRequest struct {
	UserId string `json:"user_id" binding:"required"`
}
