package id

import (
	"strings"
	"testing"
)

func TestRequest_Format(t *testing.T) {
	id := Request()
	if !strings.HasPrefix(id, "req-") {
		t.Errorf("Request() = %q, want req- prefix", id)
	}
	if len(id) != len("req-")+requestIDLength {
		t.Errorf("Request() = %q, want %d characters after prefix", id, requestIDLength)
	}
}

func TestRequest_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := Request()
		if seen[id] {
			t.Fatalf("duplicate request id: %s", id)
		}
		seen[id] = true
	}
}
