package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"
	"werkstatt/domain"
	"werkstatt/errors"
	"werkstatt/mocks"
	"werkstatt/observability"
	"werkstatt/runtime/workers"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

type recordingSink struct {
	events chan domain.ThreadUpdated
}

func (s *recordingSink) Consume(ctx context.Context, e domain.ThreadUpdated) error {
	select {
	case s.events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func newTestOrchestrator(bufferSize int) *Orchestrator {
	log := slog.New(slog.DiscardHandler)
	monitoring := observability.NewMonitoringManager(log, nil)
	return NewOrchestrator(log, workers.NewSupervisor(log, 10*time.Millisecond), NewRegistry(),
		monitoring, 2, bufferSize, time.Second, time.Hour)
}

func TestOrchestrator_Dispatch_QueueFull(t *testing.T) {
	req := require.New(t)
	orchestrator := newTestOrchestrator(1)

	// Given a queue with room for a single job
	req.NoError(orchestrator.Dispatch(domain.ReplyJob{}))

	// When another job arrives before any worker runs
	err := orchestrator.Dispatch(domain.ReplyJob{})

	// Then it is rejected
	req.ErrorIs(err, errors.ErrReplyQueueFull)
	req.Equal(1, orchestrator.QueueDepth())
	req.Equal(uint64(1), orchestrator.monitoring.Snapshot().RepliesDropped)
}

func TestOrchestrator_DeliversReplyToWatcherAndPermanentSink(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	ctrl := gomock.NewController(t)
	replier := mocks.NewMockThreadReplier(ctrl)
	orchestrator := newTestOrchestrator(4)

	key := domain.ThreadKey{UserID: "7", ThreadID: "expert-2"}
	reply := domain.ChatThread{ID: "expert-2", Messages: []domain.ExpertMessage{{Role: domain.RoleAssistant, Content: "Gern!"}}}
	replier.EXPECT().Reply(gomock.Any(), gomock.Any()).Return(reply, nil).Times(1)

	permanent := &recordingSink{events: make(chan domain.ThreadUpdated, 1)}
	watcher := &recordingSink{events: make(chan domain.ThreadUpdated, 1)}
	other := &recordingSink{events: make(chan domain.ThreadUpdated, 1)}
	orchestrator.RegisterSinks(permanent)
	orchestrator.RegisterParticipant("tab-1", key, watcher)
	orchestrator.RegisterParticipant("tab-2", domain.ThreadKey{UserID: "8", ThreadID: "expert-2"}, other)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- orchestrator.Start(ctx, replier) }()

	// When
	req.NoError(orchestrator.Dispatch(domain.ReplyJob{Key: key, Content: "Hilfe", ReadyAt: time.Now()}))

	// Then
	for _, sink := range []*recordingSink{permanent, watcher} {
		select {
		case evt := <-sink.events:
			req.Equal(key, evt.Key)
			req.Equal(reply, evt.Thread)
		case <-time.After(2 * time.Second):
			req.Fail("update not delivered")
		}
	}
	req.Empty(other.events)

	orchestrator.Stop()
	cancel()
	req.NoError(<-done)
}

func TestOrchestrator_StartWithoutReplier(t *testing.T) {
	req := require.New(t)
	orchestrator := newTestOrchestrator(1)
	req.Error(orchestrator.Start(context.Background(), nil))
}
