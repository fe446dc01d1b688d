package request

// OpenChatRequest 选择聊天对象
// 使用位置:
//   - handler/chat_handler.go: Open, Select
type OpenChatRequest struct {
	FriendId string `json:"friend_id" binding:"required"`
}
