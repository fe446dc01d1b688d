package admin

import (
	"errors"
	"testing"
	"time"

	"alisa_ai_server/internal/dao/memory"
	"alisa_ai_server/internal/gateway/websocket"
	"alisa_ai_server/internal/infrastructure/task"
	"alisa_ai_server/internal/model"
	"alisa_ai_server/internal/service/notice"
	"alisa_ai_server/pkg/errorx"
)

type fixture struct {
	svc     *adminService
	store   *memory.Store
	notices interface {
		Active(string) ([]model.Notice, error)
	}
	ws string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore(memory.SeedTickets())
	notices := notice.NewNoticeService(store, &task.ManualScheduler{}, websocket.Discard{}, time.Second)
	return &fixture{
		svc:     NewAdminService(store, notices, "admin2024"),
		store:   store,
		notices: notices,
		ws:      store.Create(),
	}
}

func (f *fixture) lastNotice(t *testing.T) model.Notice {
	t.Helper()
	active, err := f.notices.Active(f.ws)
	if err != nil || len(active) == 0 {
		t.Fatalf("no notices: %v", err)
	}
	return active[len(active)-1]
}

func (f *fixture) snapshot() []model.Ticket {
	var out []model.Ticket
	_ = f.store.View(f.ws, func(ws *model.Workspace) error {
		for _, tk := range ws.Admin.Tickets {
			out = append(out, tk.Clone())
		}
		return nil
	})
	return out
}

func TestLoginGate(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.ListTickets(f.ws); !errors.Is(err, errorx.ErrUnauthorized) {
		t.Fatalf("list before login: %v", err)
	}

	for _, pw := range []string{"", "ADMIN2024", " admin2024", "admin2024 "} {
		if err := f.svc.Login(f.ws, pw); !errors.Is(err, errorx.ErrInvalidPassword) {
			t.Fatalf("Login(%q) = %v", pw, err)
		}
		if n := f.lastNotice(t); n.Level != model.NoticeError || n.Text != "Неверный пароль" {
			t.Fatalf("notice = %+v", n)
		}
	}
	if _, err := f.svc.Stats(f.ws); !errors.Is(err, errorx.ErrUnauthorized) {
		t.Fatalf("still gated: %v", err)
	}

	if err := f.svc.Login(f.ws, "admin2024"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if n := f.lastNotice(t); n.Level != model.NoticeSuccess || n.Text != welcomeText {
		t.Fatalf("notice = %+v", n)
	}

	if err := f.svc.Logout(f.ws); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := f.svc.ListTickets(f.ws); !errors.Is(err, errorx.ErrUnauthorized) {
		t.Fatalf("list after logout: %v", err)
	}
}

func TestListAndStats(t *testing.T) {
	f := newFixture(t)
	_ = f.svc.Login(f.ws, "admin2024")

	list, err := f.svc.ListTickets(f.ws)
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("tickets = %+v", list)
	}
	if list[0].UserName != "Анна Петрова" || list[0].MessageCount != 1 || list[0].Status != "open" {
		t.Fatalf("ticket 1 = %+v", list[0])
	}
	if list[1].LastMessage != "Спасибо, разобрался!" || list[1].MessageCount != 3 {
		t.Fatalf("ticket 2 = %+v", list[1])
	}

	stats, _ := f.svc.Stats(f.ws)
	if stats.Open != 1 || stats.Closed != 1 || stats.Total != 2 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestReplyAndCloseDoNotMutate(t *testing.T) {
	f := newFixture(t)
	_ = f.svc.Login(f.ws, "admin2024")

	if err := f.svc.Reply(f.ws, "ответ"); !errors.Is(err, errorx.ErrNoTicketSelected) {
		t.Fatalf("reply without selection: %v", err)
	}
	if _, err := f.svc.SelectTicket(f.ws, "9"); !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("select unknown: %v", err)
	}

	detail, err := f.svc.SelectTicket(f.ws, "1")
	if err != nil {
		t.Fatalf("SelectTicket: %v", err)
	}
	if detail.UserName != "Анна Петрова" || len(detail.Messages) != 1 {
		t.Fatalf("detail = %+v", detail)
	}

	before := f.snapshot()
	if err := f.svc.Reply(f.ws, "  "); !errors.Is(err, errorx.ErrEmptyMessage) {
		t.Fatalf("blank reply: %v", err)
	}
	if err := f.svc.Reply(f.ws, "Попробуйте обновить приложение"); err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if n := f.lastNotice(t); n.Text != repliedText {
		t.Fatalf("notice = %+v", n)
	}
	if err := f.svc.CloseTicket(f.ws); err != nil {
		t.Fatalf("CloseTicket: %v", err)
	}
	if n := f.lastNotice(t); n.Text != closedText {
		t.Fatalf("notice = %+v", n)
	}

	after := f.snapshot()
	for i := range before {
		if before[i].Status != after[i].Status || len(before[i].Messages) != len(after[i].Messages) {
			t.Fatalf("ticket %s mutated: %+v -> %+v", before[i].ID, before[i], after[i])
		}
	}
}

func TestClosedTicketRejectsActions(t *testing.T) {
	f := newFixture(t)
	_ = f.svc.Login(f.ws, "admin2024")
	if _, err := f.svc.SelectTicket(f.ws, "2"); err != nil {
		t.Fatalf("SelectTicket: %v", err)
	}
	if err := f.svc.Reply(f.ws, "ещё вопрос?"); !errors.Is(err, errorx.ErrTicketClosed) {
		t.Fatalf("reply closed: %v", err)
	}
	if err := f.svc.CloseTicket(f.ws); !errors.Is(err, errorx.ErrTicketClosed) {
		t.Fatalf("close closed: %v", err)
	}
}

func TestWorkspacesAreIndependent(t *testing.T) {
	f := newFixture(t)
	_ = f.svc.Login(f.ws, "admin2024")
	other := f.store.Create()
	if _, err := f.svc.ListTickets(other); !errors.Is(err, errorx.ErrUnauthorized) {
		t.Fatalf("login leaked into another workspace: %v", err)
	}
}
