package respond

// MessageRespond 消息
type MessageRespond struct {
	Id     string `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
	Time   string `json:"time"`
}

// ChatPanelRespond 聊天面板
type ChatPanelRespond struct {
	Counterpart *FriendRespond   `json:"counterpart"`
	Messages    []MessageRespond `json:"messages"`
}

// CallRespond 拨号
type CallRespond struct {
	Uri    string `json:"uri"`
	Notice string `json:"notice"`
}
