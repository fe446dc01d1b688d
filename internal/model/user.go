// Package model 定义领域模型
// 本文件定义用户与通讯录条目
package model

// User 注册用户
// 注册时创建一次，之后不再修改
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"` // emoji 头像
}

// Presence 在线状态
type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceOffline Presence = "offline"
)

// DirectoryEntry 通讯录中的一个可被搜索的用户
type DirectoryEntry struct {
	User     User     `json:"user"`
	Presence Presence `json:"presence"`
}
