package respond

// FriendRespond 好友列表项
type FriendRespond struct {
	FriendId string `json:"friend_id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status"`
}

// CandidateRespond 搜索结果项
type CandidateRespond struct {
	UserId string `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Status string `json:"status"`
}

// SearchFriendRespond 搜索结果
// 没有匹配项时 Candidates 为空数组，Notice 为 "Ничего не найдено"
type SearchFriendRespond struct {
	Candidates []CandidateRespond `json:"candidates"`
	Notice     string             `json:"notice,omitempty"`
}
