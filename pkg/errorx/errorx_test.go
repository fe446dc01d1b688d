package errorx

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeErrorWrapAndCode(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(base, CodeNotFound, "Пользователь не найден")

	if !errors.Is(err, base) {
		t.Fatalf("wrapped error should unwrap to base")
	}
	if got := GetCode(fmt.Errorf("ctx: %w", err)); got != CodeNotFound {
		t.Fatalf("GetCode = %d, want %d", got, CodeNotFound)
	}
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound should be true")
	}
	if err.Error() != "Пользователь не найден: boom" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestPredefinedErrorsMatchByCode(t *testing.T) {
	err := Newf(CodeEmptyMessage, "пусто: %d", 0)
	if !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("errors.Is should match by code")
	}
	if errors.Is(err, ErrTicketClosed) {
		t.Fatalf("different codes must not match")
	}
	if GetCode(errors.New("plain")) != CodeServerBusy {
		t.Fatalf("plain errors map to server busy")
	}
	if GetCode(nil) != CodeSuccess {
		t.Fatalf("nil maps to success")
	}
}
