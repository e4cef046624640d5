package sink

import (
	"context"
	"sync"
	"werkstatt/contract"
	"werkstatt/domain"
	"werkstatt/errors"
)

var _ contract.EventSink = (*StreamSink)(nil)

// StreamSink buffers thread updates for one open SSE connection.
type StreamSink struct {
	mu     sync.Mutex
	events chan domain.ThreadUpdated
	closed bool
}

func NewStreamSink(buffer int) *StreamSink {
	return &StreamSink{events: make(chan domain.ThreadUpdated, buffer)}
}

// Consume blocks until the connection takes the update or ctx expires.
func (s *StreamSink) Consume(ctx context.Context, e domain.ThreadUpdated) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.ErrSinkClosed
	}
	select {
	case s.events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *StreamSink) Events() <-chan domain.ThreadUpdated {
	return s.events
}

// Close is idempotent. Pending updates stay readable.
func (s *StreamSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.events)
	}
}
