package workers

import (
	"context"
	"log/slog"
	"time"
	"werkstatt/contract"
	"werkstatt/domain"
	"werkstatt/observability"
)

var _ contract.Worker = (*ReplyWorker)(nil)

// ReplyWorker waits until a job is due, asks the replier for the counterpart message
// and hands the updated thread to the fanout.
type ReplyWorker struct {
	jobs       <-chan domain.ReplyJob
	updates    chan<- domain.ThreadUpdated
	replier    contract.ThreadReplier
	monitoring *observability.MonitoringManager
	log        *slog.Logger
}

func NewReplyWorker(
	jobs <-chan domain.ReplyJob,
	updates chan<- domain.ThreadUpdated,
	replier contract.ThreadReplier,
	monitoring *observability.MonitoringManager,
	log *slog.Logger) *ReplyWorker {
	return &ReplyWorker{
		jobs:       jobs,
		updates:    updates,
		replier:    replier,
		monitoring: monitoring,
		log:        log,
	}
}

func (w *ReplyWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping reply worker")
			return ctx.Err()
		case job, ok := <-w.jobs:
			if !ok {
				w.log.Debug("Reply channel is closed")
				return nil
			}
			if err := waitUntil(ctx, job.ReadyAt); err != nil {
				return err
			}
			thread, err := w.replier.Reply(ctx, job)
			if err != nil {
				w.log.Warn("Unable to reply", "user", job.Key.UserID, "thread", job.Key.ThreadID, "error", err)
				w.monitoring.IncrReplyJob(observability.ReplyFailed)
				continue
			}
			w.monitoring.IncrReplyJob(observability.ReplyDone)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case w.updates <- domain.ThreadUpdated{Key: job.Key, Thread: thread, At: time.Now().UTC()}:
			}
		}
	}
}

func waitUntil(ctx context.Context, readyAt time.Time) error {
	delay := time.Until(readyAt)
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
