package workers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"
	"werkstatt/contract"
	"werkstatt/domain"
	"werkstatt/observability"
)

var _ contract.Worker = (*EventFanout)(nil)

// EventFanout broadcasts thread updates to permanent sinks and to the watchers of the thread.
//
// Delivery is best effort: no retries, no ordering across sinks, and a slow sink
// is abandoned after sinkTimeout.
type EventFanout struct {
	log            *slog.Logger
	permanentSinks []contract.EventSink
	registry       contract.IRegistry
	updates        <-chan domain.ThreadUpdated
	sinkTimeout    time.Duration
	monitoring     *observability.MonitoringManager
}

func NewEventFanout(
	log *slog.Logger,
	permanentSinks []contract.EventSink,
	registry contract.IRegistry,
	updates <-chan domain.ThreadUpdated,
	sinkTimeout time.Duration,
	monitoring *observability.MonitoringManager) *EventFanout {
	return &EventFanout{
		log:            log,
		permanentSinks: permanentSinks,
		registry:       registry,
		updates:        updates,
		sinkTimeout:    sinkTimeout,
		monitoring:     monitoring,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return nil
		case evt, ok := <-w.updates:
			if !ok {
				return nil
			}
			w.Fanout(ctx, evt)
		}
	}
}

// Fanout delivers one update to every sink, each with its own timeout.
func (w *EventFanout) Fanout(ctx context.Context, evt domain.ThreadUpdated) {
	sinks := append([]contract.EventSink{}, w.permanentSinks...)
	sinks = append(sinks, w.registry.GetSinksForThread(evt.Key)...)

	for _, sink := range sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		err := sink.Consume(sinkCtx, evt)
		cancel()
		switch {
		case err == nil:
			w.monitoring.ObserveSinkDelivery("ok")
		case stderrors.Is(err, context.DeadlineExceeded):
			w.log.Debug("Sink timed out", "thread", evt.Key.ThreadID)
			w.monitoring.ObserveSinkDelivery("timeout")
		default:
			w.log.Debug("Sink failed", "thread", evt.Key.ThreadID, "error", err)
			w.monitoring.ObserveSinkDelivery("error")
		}
	}
}
