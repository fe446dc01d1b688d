package model

// Sender 消息发送方
type Sender string

const (
	SenderMe     Sender = "me"     // 聊天面板：自己
	SenderFriend Sender = "friend" // 聊天面板：对方
	SenderUser   Sender = "user"   // 客服对话：用户
	SenderAdmin  Sender = "admin"  // 客服对话：管理员
)

// Message 聊天面板中的一条消息
// 只按追加顺序排列，Time 仅用于展示（HH:MM）
type Message struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
	Time   string `json:"time"`
}

// SupportMessage 客服对话消息，与聊天消息结构相同但存放在独立列表中
type SupportMessage = Message
