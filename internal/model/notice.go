package model

// NoticeLevel 提示条级别
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeError   NoticeLevel = "error"
)

// Notice 短暂显示的提示条（toast），到期后自动消失
type Notice struct {
	ID    string      `json:"id"`
	Level NoticeLevel `json:"level"`
	Text  string      `json:"text"`
}
