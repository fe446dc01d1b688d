package request

// SearchFriendRequest 搜索好友
// 使用位置:
//   - handler/friend_handler.go: Search
type SearchFriendRequest struct {
	Query string `form:"query"`
}
