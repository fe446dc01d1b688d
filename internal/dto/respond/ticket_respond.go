package respond

// TicketSummaryRespond 工单列表项
type TicketSummaryRespond struct {
	Id           string `json:"id"`
	UserName     string `json:"user_name"`
	UserAvatar   string `json:"user_avatar"`
	Status       string `json:"status"`
	LastMessage  string `json:"last_message"`
	MessageCount int    `json:"message_count"`
}

// TicketDetailRespond 工单详情
type TicketDetailRespond struct {
	Id         string           `json:"id"`
	UserId     string           `json:"user_id"`
	UserName   string           `json:"user_name"`
	UserAvatar string           `json:"user_avatar"`
	Status     string           `json:"status"`
	CreatedAt  string           `json:"created_at"`
	Messages   []MessageRespond `json:"messages"`
}

// TicketStatsRespond 工单统计
type TicketStatsRespond struct {
	Open   int `json:"open"`
	Closed int `json:"closed"`
	Total  int `json:"total"`
}
