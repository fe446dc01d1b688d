package websocket

import "alisa_ai_server/internal/model"

// Publisher 向工作区推送状态变化事件
// 用于解耦 service 包对 WebSocket 连接管理的依赖
type Publisher interface {
	Publish(evt model.Event)
}

// Discard 丢弃所有事件的 Publisher
type Discard struct{}

// Publish 什么也不做
func (Discard) Publish(model.Event) {}
