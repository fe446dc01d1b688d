package chat

import (
	"errors"
	"sync"
	"testing"
	"time"

	"alisa_ai_server/internal/config"
	"alisa_ai_server/internal/dao/memory"
	"alisa_ai_server/internal/infrastructure/task"
	"alisa_ai_server/internal/model"
	"alisa_ai_server/internal/service/notice"
	"alisa_ai_server/pkg/errorx"
	"alisa_ai_server/pkg/util/clock"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.Event
}

func (r *recordingPublisher) Publish(evt model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *recordingPublisher) count(t model.EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	svc   *chatService
	store *memory.Store
	sched *task.ManualScheduler
	pub   *recordingPublisher
	ws    string
}

func newFixture(t *testing.T, autoReply bool) *fixture {
	t.Helper()
	store := memory.NewStore(nil)
	sched := &task.ManualScheduler{}
	pub := &recordingPublisher{}
	notifier := notice.NewNoticeService(store, sched, pub, 3*time.Second)

	fixed := time.Date(2024, 12, 27, 14, 5, 0, 0, time.UTC)
	clk := clock.Clock{Now: func() time.Time { return fixed }, Loc: time.UTC}

	cfg := config.Default().ChatConfig
	cfg.AutoReply = autoReply

	ws := store.Create()
	_ = store.Update(ws, func(w *model.Workspace) error {
		w.User = &model.User{ID: "U_ME", Name: "Я"}
		w.Friends = []model.Friend{
			{ID: "1", Name: "Мария Иванова", Avatar: "👩", Status: model.PresenceOnline},
			{ID: "2", Name: "Алексей Петров", Avatar: "👨", Status: model.PresenceOffline},
		}
		return nil
	})
	return &fixture{
		svc:   NewChatService(store, notifier, pub, sched, clk, cfg),
		store: store,
		sched: sched,
		pub:   pub,
		ws:    ws,
	}
}

func TestSendWithoutCounterpart(t *testing.T) {
	f := newFixture(t, true)
	if _, err := f.svc.Send(f.ws, "привет"); !errors.Is(err, errorx.ErrNoCounterpart) {
		t.Fatalf("err = %v", err)
	}
	if f.sched.Pending() != 0 {
		t.Fatalf("no reply may be scheduled")
	}
}

func TestSendBlankIsRejected(t *testing.T) {
	f := newFixture(t, true)
	_, _ = f.svc.Open(f.ws, "1")
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := f.svc.Send(f.ws, text); !errors.Is(err, errorx.ErrEmptyMessage) {
			t.Fatalf("Send(%q) err = %v", text, err)
		}
	}
	panel, _ := f.svc.Messages(f.ws)
	if len(panel.Messages) != 0 || f.sched.Pending() != 0 {
		t.Fatalf("blank messages must not change state")
	}
}

func TestSendAppendsVerbatimAndAutoReplies(t *testing.T) {
	f := newFixture(t, true)
	if _, err := f.svc.Open(f.ws, "1"); err != nil {
		t.Fatalf("Open: %v", err)
	}

	msg, err := f.svc.Send(f.ws, "  Привет!  ")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if msg.Text != "  Привет!  " || msg.Sender != string(model.SenderMe) || msg.Time != "14:05" {
		t.Fatalf("message = %+v", msg)
	}
	if d := f.sched.Delays(); len(d) != 1 || d[0] != time.Second {
		t.Fatalf("auto reply delays = %v", d)
	}

	panel, _ := f.svc.Messages(f.ws)
	if len(panel.Messages) != 1 {
		t.Fatalf("reply must not appear before the timer fires")
	}

	f.sched.RunPending()
	panel, _ = f.svc.Messages(f.ws)
	if len(panel.Messages) != 2 {
		t.Fatalf("messages = %+v", panel.Messages)
	}
	reply := panel.Messages[1]
	if reply.Sender != string(model.SenderFriend) || reply.Text != "Спасибо за сообщение! 💜" {
		t.Fatalf("reply = %+v", reply)
	}
	if panel.Messages[0].Id == reply.Id {
		t.Fatalf("ids must differ")
	}
	if n := f.pub.count(model.EventChatMessage); n != 2 {
		t.Fatalf("chat events = %d", n)
	}
}

func TestAutoReplyDisabled(t *testing.T) {
	f := newFixture(t, false)
	_, _ = f.svc.Open(f.ws, "1")
	if _, err := f.svc.Send(f.ws, "a"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if f.sched.Pending() != 0 {
		t.Fatalf("auto reply scheduled while disabled")
	}
}

func TestOpenClearsSelectKeeps(t *testing.T) {
	f := newFixture(t, false)
	_, _ = f.svc.Open(f.ws, "1")
	_, _ = f.svc.Send(f.ws, "раз")

	panel, err := f.svc.Select(f.ws, "2")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if panel.Counterpart.FriendId != "2" || len(panel.Messages) != 1 {
		t.Fatalf("select panel = %+v", panel)
	}

	panel, _ = f.svc.Open(f.ws, "1")
	if panel.Counterpart.FriendId != "1" || len(panel.Messages) != 0 {
		t.Fatalf("open panel = %+v", panel)
	}

	if _, err := f.svc.Open(f.ws, "3"); !errors.Is(err, ErrFriendNotFound) {
		t.Fatalf("open unknown friend: %v", err)
	}
}

func TestCall(t *testing.T) {
	f := newFixture(t, false)
	rsp, err := f.svc.Call(f.ws)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if rsp.Uri != "tel:+79999999999" || rsp.Notice != callText {
		t.Fatalf("call = %+v", rsp)
	}
	if f.pub.count(model.EventNotice) != 1 {
		t.Fatalf("call should raise a notice")
	}
	if _, err := f.svc.Call("missing"); !errors.Is(err, memory.ErrWorkspaceNotFound) {
		t.Fatalf("missing workspace: %v", err)
	}
}
