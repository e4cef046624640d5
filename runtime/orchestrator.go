// Package runtime wires the reply pipeline: a pool of reply workers, the fanout
// towards thread watchers and process sampling, all under one supervisor.
// It contains no business rules, replies are produced by a contract.ThreadReplier.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"werkstatt/contract"
	"werkstatt/domain"
	"werkstatt/errors"
	"werkstatt/observability"
	"werkstatt/runtime/workers"
)

type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	numWorkers     int
	permanentSinks []contract.EventSink
	supervisor     contract.ISupervisor
	registry       contract.IRegistry
	replyJobs      chan domain.ReplyJob
	threadUpdates  chan domain.ThreadUpdated
	monitoring     *observability.MonitoringManager
	sinkTimeout    time.Duration
	metricInterval time.Duration
}

var _ contract.IOrchestrator = (*Orchestrator)(nil)

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry, monitoring *observability.MonitoringManager,
	numWorkers, bufferSize int, sinkTimeout, metricInterval time.Duration) *Orchestrator {
	return &Orchestrator{
		log:            log,
		numWorkers:     numWorkers,
		supervisor:     supervisor,
		registry:       registry,
		replyJobs:      make(chan domain.ReplyJob, bufferSize),
		threadUpdates:  make(chan domain.ThreadUpdated, bufferSize),
		monitoring:     monitoring,
		sinkTimeout:    sinkTimeout,
		metricInterval: metricInterval,
	}
}

// RegisterSinks adds sinks receiving every thread update, whoever watches it.
// Must be called before Start.
func (o *Orchestrator) RegisterSinks(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Dispatch queues a reply job without blocking the caller.
func (o *Orchestrator) Dispatch(job domain.ReplyJob) error {
	select {
	case o.replyJobs <- job:
		o.monitoring.IncrReplyJob(observability.ReplyQueued)
		return nil
	default:
		o.monitoring.IncrReplyJob(observability.ReplyDropped)
		o.log.Warn(fmt.Sprintf("Reply queue full, dropping job for thread %s", job.Key.ThreadID))
		return errors.ErrReplyQueueFull
	}
}

// QueueDepth is the number of reply jobs not yet picked by a worker.
func (o *Orchestrator) QueueDepth() int {
	return len(o.replyJobs)
}

func (o *Orchestrator) RegisterParticipant(pID string, key domain.ThreadKey, sink contract.EventSink) {
	o.registry.Subscribe(pID, key, sink)
}

func (o *Orchestrator) UnregisterParticipant(pID string, key domain.ThreadKey) {
	o.registry.Unsubscribe(pID, key)
}

// Start prepares every worker then blocks in the supervisor until ctx is canceled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context, replier contract.ThreadReplier) error {
	if replier == nil {
		return fmt.Errorf("orchestrator: nil replier")
	}
	// Preparation phase (no lock)
	replyWorkers := o.prepareReplyWorkers(replier)
	statsWorker := workers.NewProcessStatsWorker(o.log, o.monitoring, o.metricInterval, o.QueueDepth)
	capacityWorker := workers.NewChannelCapacityWorker(o.log, []workers.NamedChannel{
		{Name: "reply_jobs", Channel: o.replyJobs},
		{Name: "thread_updates", Channel: o.threadUpdates},
	}, o.monitoring, o.metricInterval)

	// Critical section (short lock)
	o.mu.Lock()
	fanoutWorker := o.prepareFanout()
	o.supervisor.Add(fanoutWorker, statsWorker, capacityWorker)
	o.supervisor.Add(replyWorkers...)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "reply_workers", len(replyWorkers))
	o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) prepareReplyWorkers(replier contract.ThreadReplier) []contract.Worker {
	var res []contract.Worker
	for i := 0; i < o.numWorkers; i++ {
		res = append(res, workers.NewReplyWorker(o.replyJobs, o.threadUpdates, replier, o.monitoring, o.log))
	}
	return res
}

func (o *Orchestrator) prepareFanout() contract.Worker {
	return workers.NewEventFanout(
		o.log,
		append([]contract.EventSink{}, o.permanentSinks...),
		o.registry,
		o.threadUpdates,
		o.sinkTimeout,
		o.monitoring,
	)
}

// Stop cancels the supervised context, in-flight jobs are abandoned.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
