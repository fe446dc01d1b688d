package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"alisa_ai_server/internal/model"

	"github.com/gin-gonic/gin"
	gws "github.com/gorilla/websocket"
)

func newHubServer(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewHub()
	go h.Start()

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		h.Serve(c, c.Query("workspace_id"))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		h.Close()
		srv.Close()
	})
	return h, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?workspace_id="
}

func dial(t *testing.T, url string) *gws.Conn {
	t.Helper()
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func newClient(workspaceID string, buffer int) *Client {
	return &Client{
		WorkspaceID: workspaceID,
		SendBack:    make(chan []byte, buffer),
		done:        make(chan struct{}),
	}
}

func TestNewConnectionReplacesOld(t *testing.T) {
	h, base := newHubServer(t)
	first := dial(t, base+"tab")
	second := dial(t, base+"tab")

	// 旧连接被服务端关闭
	_ = first.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := first.ReadMessage(); err == nil {
		t.Fatalf("replaced connection still open")
	}

	if !h.Online("tab") {
		t.Fatalf("new connection not registered")
	}
	h.Publish(model.Event{Type: model.EventScreen, WorkspaceID: "tab", Data: "profile"})

	var evt model.Event
	_ = second.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := second.ReadJSON(&evt); err != nil {
		t.Fatalf("read on new connection: %v", err)
	}
	if evt.Type != model.EventScreen || evt.WorkspaceID != "tab" {
		t.Fatalf("event = %+v", evt)
	}
}

func TestLogoutOfReplacedClientKeepsNew(t *testing.T) {
	h := NewHub()
	go h.Start()
	defer h.Close()

	left := make(chan string, 4)
	h.SetLeaveHook(func(id string) { left <- id })

	old := newClient("tab", 1)
	cur := newClient("tab", 1)
	other := newClient("other", 1)
	for _, c := range []*Client{old, cur, other} {
		if !h.register(c) {
			t.Fatalf("register refused")
		}
	}
	select {
	case <-old.done:
	default:
		t.Fatalf("replaced client not closed")
	}

	h.Logout <- old
	h.Logout <- other

	// Logout 按顺序处理，收到 other 时 old 已处理完
	select {
	case id := <-left:
		if id != "other" {
			t.Fatalf("leave hook fired for %q", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("leave hook not called")
	}

	if !h.Online("tab") {
		t.Fatalf("stale logout removed the current client")
	}
	h.Publish(model.Event{Type: model.EventNotice, WorkspaceID: "tab"})
	select {
	case <-cur.SendBack:
	default:
		t.Fatalf("current client did not receive event")
	}
}

func TestPublishWithoutConnectionIsDropped(t *testing.T) {
	h := NewHub()
	go h.Start()
	defer h.Close()

	// 没有连接：直接丢弃，不阻塞
	done := make(chan struct{})
	go func() {
		h.Publish(model.Event{Type: model.EventNotice, WorkspaceID: "nobody"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish blocked")
	}

	// 缓冲区已满：丢弃后续事件
	c := newClient("tab", 1)
	h.register(c)
	h.Publish(model.Event{Type: model.EventNotice, WorkspaceID: "tab"})
	h.Publish(model.Event{Type: model.EventScreen, WorkspaceID: "tab"})
	if len(c.SendBack) != 1 {
		t.Fatalf("buffered = %d, want 1", len(c.SendBack))
	}
}

func TestRegisterAfterCloseRefused(t *testing.T) {
	h := NewHub()
	go h.Start()
	h.Close()
	if h.register(newClient("tab", 1)) {
		t.Fatalf("closed hub accepted a client")
	}
	if h.Online("tab") {
		t.Fatalf("closed hub reports client online")
	}
}
