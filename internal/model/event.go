package model

// EventType 推送给页面的事件类型
type EventType string

const (
	EventNotice          EventType = "notice"
	EventNoticeDismissed EventType = "notice_dismissed"
	EventChatMessage     EventType = "chat_message"
	EventSupportMessage  EventType = "support_message"
	EventScreen          EventType = "screen"
)

// Event 工作区状态变化事件，通过 WebSocket 推送
type Event struct {
	Type        EventType `json:"type"`
	WorkspaceID string    `json:"workspace_id"`
	Data        any       `json:"data,omitempty"`
}
