package model

// Friend 好友
// 由 User 的公开字段复制而来，Status 在添加时确定，之后不再变化
type Friend struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Avatar string   `json:"avatar"`
	Status Presence `json:"status"`
}

// NewFriend 根据通讯录条目生成好友记录
func NewFriend(e DirectoryEntry) Friend {
	return Friend{
		ID:     e.User.ID,
		Name:   e.User.Name,
		Avatar: e.User.Avatar,
		Status: e.Presence,
	}
}
