package sink

import (
	"context"
	"sync"
	"time"
	"werkstatt/contract"
	"werkstatt/domain"
)

var _ contract.EventSink = (*Timeline)(nil)

// TimelineEntry summarizes one delivered reply.
type TimelineEntry struct {
	UserID   string    `json:"user_id"`
	ThreadID string    `json:"thread_id"`
	Role     string    `json:"role"`
	Preview  string    `json:"preview"`
	At       time.Time `json:"at"`
}

// Timeline keeps the most recent replies for the debug inspector.
type Timeline struct {
	mu       sync.RWMutex
	capacity int
	entries  []TimelineEntry
}

const previewLength = 60

func NewTimeline(capacity int) *Timeline {
	if capacity <= 0 {
		capacity = 50
	}
	return &Timeline{capacity: capacity}
}

func (t *Timeline) Consume(_ context.Context, e domain.ThreadUpdated) error {
	entry := TimelineEntry{UserID: e.Key.UserID, ThreadID: e.Key.ThreadID, At: e.At}
	if n := len(e.Thread.Messages); n > 0 {
		last := e.Thread.Messages[n-1]
		entry.Role = string(last.Role)
		entry.Preview = preview(last.Content)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, entry)
	if len(t.entries) > t.capacity {
		t.entries = t.entries[len(t.entries)-t.capacity:]
	}
	return nil
}

// Recent returns the entries newest first.
func (t *Timeline) Recent() []TimelineEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	res := make([]TimelineEntry, len(t.entries))
	for i, e := range t.entries {
		res[len(t.entries)-1-i] = e
	}
	return res
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLength {
		return s
	}
	return string(r[:previewLength]) + "…"
}
