package snowflake

import "testing"

func TestGenerateIDStringUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := GenerateIDString()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
	if GenerateID() <= 0 {
		t.Fatalf("ids must be positive")
	}
}
