package request

// SendMessageRequest 发送聊天 / 客服 / 工单回复消息
// Text 的空值由 Service 层判断，空白消息不追加
type SendMessageRequest struct {
	Text string `json:"text"`
}
