package random

import (
	"strings"
	"testing"
)

func TestGetNowAndLenRandomString(t *testing.T) {
	s := GetNowAndLenRandomString(11)
	if len(s) != 17 {
		t.Fatalf("len = %d, want 17 (%q)", len(s), s)
	}
	for _, r := range s[6:] {
		if !strings.ContainsRune(charset, r) {
			t.Fatalf("unexpected rune %q in %q", r, s)
		}
	}
	if s == GetNowAndLenRandomString(11) {
		t.Fatalf("two ids should differ")
	}
}
