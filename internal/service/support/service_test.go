package support

import (
	"errors"
	"testing"
	"time"

	"alisa_ai_server/internal/dao/memory"
	"alisa_ai_server/internal/gateway/websocket"
	"alisa_ai_server/internal/model"
	"alisa_ai_server/pkg/errorx"
	"alisa_ai_server/pkg/util/clock"
)

func TestSupportDialog(t *testing.T) {
	store := memory.NewStore(memory.SeedTickets())
	svc := NewSupportService(store, websocket.Discard{}, clock.New(time.UTC))
	ws := store.Create()

	if _, err := svc.Send(ws, "помогите"); !errors.Is(err, errorx.ErrNotRegistered) {
		t.Fatalf("unregistered send: %v", err)
	}
	_ = store.Update(ws, func(w *model.Workspace) error {
		w.User = &model.User{ID: "U1", Name: "Я"}
		return nil
	})

	if _, err := svc.Send(ws, "   "); !errors.Is(err, errorx.ErrEmptyMessage) {
		t.Fatalf("blank send: %v", err)
	}
	msg, err := svc.Send(ws, "Не могу добавить друга")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if msg.Sender != string(model.SenderUser) || msg.Text != "Не могу добавить друга" {
		t.Fatalf("msg = %+v", msg)
	}

	list, _ := svc.Messages(ws)
	if len(list) != 1 {
		t.Fatalf("support list = %+v", list)
	}

	// 工单不受影响
	_ = store.View(ws, func(w *model.Workspace) error {
		for _, tk := range w.Admin.Tickets {
			for _, m := range tk.Messages {
				if m.Text == "Не могу добавить друга" {
					t.Fatalf("support message leaked into ticket %s", tk.ID)
				}
			}
		}
		if len(w.Admin.Tickets[0].Messages) != 1 {
			t.Fatalf("ticket 1 changed")
		}
		return nil
	})
}
