// Package audit keeps the admin console's activity trail. The trail is
// in-process only: it is lost on restart and is not shared between
// instances. It backs a read-only admin view, not a correctness guarantee;
// a durable append-only store should replace it before multi-instance
// deployment.
package audit

import (
	"sync"
	"time"
)

// Entry is one recorded action
type Entry struct {
	Time   time.Time `json:"time"`
	Actor  string    `json:"actor"`
	Action string    `json:"action"`
	Detail string    `json:"detail,omitempty"`
}

// Trail is a bounded, concurrency-safe in-memory log. Oldest entries are
// dropped once the capacity is reached.
type Trail struct {
	mu      sync.RWMutex
	entries []Entry
	cap     int
}

// DefaultCapacity bounds the trail so it cannot grow without limit
const DefaultCapacity = 1000

// NewTrail creates a trail holding at most capacity entries
func NewTrail(capacity int) *Trail {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Trail{cap: capacity}
}

// Record appends an entry, evicting the oldest if the trail is full
func (t *Trail) Record(actor, action, detail string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, Entry{
		Time:   time.Now(),
		Actor:  actor,
		Action: action,
		Detail: detail,
	})
	if len(t.entries) > t.cap {
		t.entries = t.entries[len(t.entries)-t.cap:]
	}
}

// Recent returns up to n entries, newest first
func (t *Trail) Recent(n int) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n <= 0 || n > len(t.entries) {
		n = len(t.entries)
	}
	out := make([]Entry, n)
	for i := 0; i < n; i++ {
		out[i] = t.entries[len(t.entries)-1-i]
	}
	return out
}

// Len returns the number of retained entries
func (t *Trail) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
