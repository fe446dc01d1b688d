package theme

import (
	"errors"
	"testing"
	"time"

	"alisa_ai_server/internal/dao/memory"
	"alisa_ai_server/internal/gateway/websocket"
	"alisa_ai_server/internal/infrastructure/task"
	"alisa_ai_server/internal/service/notice"
	"alisa_ai_server/pkg/errorx"
)

func TestBackground(t *testing.T) {
	store := memory.NewStore(nil)
	notices := notice.NewNoticeService(store, &task.ManualScheduler{}, websocket.Discard{}, time.Second)
	svc := NewThemeService(store, notices)
	ws := store.Create()

	if p := svc.Palette(); len(p) != 5 || p[0].Name != "Лаванда" || p[4].Color != "hsl(340, 70%, 95%)" {
		t.Fatalf("palette = %+v", p)
	}
	cur, _ := svc.Current(ws)
	if cur.Name != "Лаванда" {
		t.Fatalf("default background = %+v", cur)
	}

	if _, err := svc.SetBackground(ws, "Мята"); err != nil {
		t.Fatalf("SetBackground: %v", err)
	}
	cur, _ = svc.Current(ws)
	if cur.Color != "hsl(150, 60%, 95%)" {
		t.Fatalf("background = %+v", cur)
	}
	active, _ := notices.Active(ws)
	if len(active) != 1 || active[0].Text != changedText {
		t.Fatalf("notices = %+v", active)
	}

	if _, err := svc.SetBackground(ws, "Космос"); !errors.Is(err, errorx.ErrUnknownTheme) {
		t.Fatalf("unknown theme: %v", err)
	}
}
