package model

// TicketStatus 工单状态，只能 open -> closed
type TicketStatus string

const (
	TicketOpen   TicketStatus = "open"
	TicketClosed TicketStatus = "closed"
)

// Ticket 管理后台可见的客服工单
type Ticket struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	UserName   string           `json:"user_name"`
	UserAvatar string           `json:"user_avatar"`
	Messages   []SupportMessage `json:"messages"`
	Status     TicketStatus     `json:"status"`
	CreatedAt  string           `json:"created_at"`
}

// Clone 深拷贝，保证每个工作区拿到独立的消息切片
func (t Ticket) Clone() Ticket {
	msgs := make([]SupportMessage, len(t.Messages))
	copy(msgs, t.Messages)
	t.Messages = msgs
	return t
}

// LastMessage 返回最后一条消息内容，没有消息时返回空串
func (t Ticket) LastMessage() string {
	if len(t.Messages) == 0 {
		return ""
	}
	return t.Messages[len(t.Messages)-1].Text
}
