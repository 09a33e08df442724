package audit

import (
	"fmt"
	"testing"
)

func TestTrail_RecentNewestFirst(t *testing.T) {
	trail := NewTrail(10)
	for i := 1; i <= 3; i++ {
		trail.Record("admin@example.com", fmt.Sprintf("action-%d", i), "")
	}

	entries := trail.Recent(2)
	if len(entries) != 2 {
		t.Fatalf("Recent(2) returned %d entries", len(entries))
	}
	if entries[0].Action != "action-3" || entries[1].Action != "action-2" {
		t.Errorf("entries not newest first: %q, %q", entries[0].Action, entries[1].Action)
	}
}

func TestTrail_CapacityEviction(t *testing.T) {
	trail := NewTrail(3)
	for i := 1; i <= 5; i++ {
		trail.Record("admin@example.com", fmt.Sprintf("action-%d", i), "")
	}

	if trail.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", trail.Len())
	}

	entries := trail.Recent(0)
	if len(entries) != 3 {
		t.Fatalf("Recent(0) returned %d entries, want all 3", len(entries))
	}
	if entries[len(entries)-1].Action != "action-3" {
		t.Errorf("oldest retained = %q, want action-3", entries[len(entries)-1].Action)
	}
}

func TestNewTrail_ZeroCapacityUsesDefault(t *testing.T) {
	trail := NewTrail(0)
	for i := 0; i < DefaultCapacity+5; i++ {
		trail.Record("system", "sweep", "")
	}
	if trail.Len() != DefaultCapacity {
		t.Errorf("Len() = %d, want %d", trail.Len(), DefaultCapacity)
	}
}
