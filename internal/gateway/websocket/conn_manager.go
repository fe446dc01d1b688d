// Package websocket 管理页面的 WebSocket 连接
// 每个工作区最多一个连接，服务端只推送事件，不接收业务消息
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"alisa_ai_server/internal/model"
	"alisa_ai_server/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client 一个工作区的 WebSocket 连接
// 先登记再升级，Conn 在升级成功后才设置
type Client struct {
	Conn        *websocket.Conn
	WorkspaceID string
	SendBack    chan []byte // 给前端
	done        chan struct{}
	closeOnce   sync.Once
	mu          sync.Mutex
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.mu.Lock()
		conn := c.Conn
		c.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}
	})
}

// attach 设置升级后的连接，客户端已被关闭时返回 false
func (c *Client) attach(conn *websocket.Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case <-c.done:
		return false
	default:
	}
	c.Conn = conn
	return true
}

// Hub 在线连接管理
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	Logout  chan *Client
	quit    chan struct{}
	once    sync.Once
	onLeave func(workspaceID string)
}

// NewHub 创建连接管理器，需要调用 Start 启动主循环
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		Logout:  make(chan *Client, constants.CHANNEL_SIZE),
		quit:    make(chan struct{}),
	}
}

// SetLeaveHook 工作区的当前连接断开后调用 fn
// 被新连接顶替的旧连接断开时不调用
func (h *Hub) SetLeaveHook(fn func(workspaceID string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onLeave = fn
}

// Start 处理登出事件的主循环
func (h *Hub) Start() {
	for {
		select {
		case client := <-h.Logout:
			h.mu.Lock()
			var leave func(string)
			if cur, ok := h.clients[client.WorkspaceID]; ok && cur == client {
				delete(h.clients, client.WorkspaceID)
				leave = h.onLeave
			}
			h.mu.Unlock()
			client.close()
			zap.L().Info("ws client offline", zap.String("workspace", client.WorkspaceID))
			if leave != nil {
				leave(client.WorkspaceID)
			}

		case <-h.quit:
			h.mu.Lock()
			for id, client := range h.clients {
				client.close()
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return
		}
	}
}

// register 同步登记连接，同一工作区的新连接顶替旧连接
// Hub 已关闭时返回 false
func (h *Hub) register(client *Client) bool {
	h.mu.Lock()
	select {
	case <-h.quit:
		h.mu.Unlock()
		return false
	default:
	}
	old := h.clients[client.WorkspaceID]
	h.clients[client.WorkspaceID] = client
	h.mu.Unlock()

	if old != nil && old != client {
		old.close()
	}
	zap.L().Info("ws client online", zap.String("workspace", client.WorkspaceID))
	return true
}

// unregister 撤销握手失败的登记，不触发离开回调
func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	if cur, ok := h.clients[client.WorkspaceID]; ok && cur == client {
		delete(h.clients, client.WorkspaceID)
	}
	h.mu.Unlock()
	client.close()
}

// Close 停止主循环并断开所有连接
func (h *Hub) Close() {
	h.once.Do(func() { close(h.quit) })
}

// Online 判断工作区是否有在线连接
func (h *Hub) Online(workspaceID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[workspaceID]
	return ok
}

// Publish 推送事件，工作区没有连接或缓冲区已满时丢弃
func (h *Hub) Publish(evt model.Event) {
	h.mu.RLock()
	client, ok := h.clients[evt.WorkspaceID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		zap.L().Error("marshal event failed", zap.Error(err), zap.String("type", string(evt.Type)))
		return
	}

	select {
	case client.SendBack <- payload:
	case <-client.done:
	default:
		zap.L().Warn("ws send buffer full, event dropped",
			zap.String("workspace", evt.WorkspaceID),
			zap.String("type", string(evt.Type)))
	}
}

// Serve 登记客户端并升级 HTTP 连接
// 登记先于升级，页面收到握手响应后发布的事件都会进入 SendBack
func (h *Hub) Serve(c *gin.Context, workspaceID string) {
	client := &Client{
		WorkspaceID: workspaceID,
		SendBack:    make(chan []byte, constants.CHANNEL_SIZE),
		done:        make(chan struct{}),
	}
	if !h.register(client) {
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("ws upgrade failed", zap.Error(err))
		h.unregister(client)
		return
	}
	if !client.attach(conn) {
		// 握手期间被新连接顶替
		_ = conn.Close()
		return
	}
	go h.read(client)
	go h.write(client)
}

// read 只用来感知断开和处理 pong，页面不会通过 WebSocket 发业务消息
func (h *Hub) read(c *Client) {
	defer func() {
		select {
		case h.Logout <- c:
		case <-h.quit:
			c.close()
		}
	}()

	c.Conn.SetReadLimit(512)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Warn("ws read error", zap.Error(err))
			}
			return
		}
	}
}

// write 把 SendBack 中的事件写给前端，并定时 ping
func (h *Hub) write(c *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case msg := <-c.SendBack:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				zap.L().Error("ws write failed", zap.Error(err))
				c.close()
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		case <-c.done:
			return
		}
	}
}
