package id

import (
	"strings"
	"testing"
)

func TestTimestampGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := NewTimestampGenerator()

	first, err := gen.NewID("team")
	if err != nil {
		t.Fatalf("NewID error: %v", err)
	}
	if !strings.HasPrefix(first, "team_") {
		t.Fatalf("id %q must carry the entity prefix", first)
	}

	second, err := gen.NewID("team")
	if err != nil {
		t.Fatalf("NewID error: %v", err)
	}
	if first == second {
		t.Fatalf("two generated ids collided: %q", first)
	}
}
