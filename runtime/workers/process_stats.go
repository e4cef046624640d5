package workers

import (
	"context"
	"log/slog"
	"os"
	goruntime "runtime"
	"time"
	"werkstatt/contract"
	"werkstatt/observability"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*ProcessStatsWorker)(nil)

// ProcessStatsWorker samples the server process every metricInterval.
// Reading len() of the reply queue is non-blocking so sampling never stalls the pipeline.
type ProcessStatsWorker struct {
	log            *slog.Logger
	monitoring     *observability.MonitoringManager
	metricInterval time.Duration
	queueDepth     func() int
	pid            int32
}

func NewProcessStatsWorker(log *slog.Logger, monitoring *observability.MonitoringManager,
	metricInterval time.Duration, queueDepth func() int) *ProcessStatsWorker {
	return &ProcessStatsWorker{
		log:            log,
		monitoring:     monitoring,
		metricInterval: metricInterval,
		queueDepth:     queueDepth,
		pid:            int32(os.Getpid()),
	}
}

func (w *ProcessStatsWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(w.pid)
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping process sampling")
			return nil
		case <-ticker.C:
			w.monitoring.UpdateProcess(w.sample(p))
		}
	}
}

func (w *ProcessStatsWorker) sample(p *process.Process) observability.ProcessStats {
	stats := observability.ProcessStats{
		PID:          w.pid,
		NumGoroutine: goruntime.NumGoroutine(),
		SampledAt:    time.Now().UTC(),
	}
	if cpu, err := p.CPUPercent(); err == nil {
		stats.CPUPercent = cpu
	} else {
		w.log.Debug("Error while finding process cpu usage", "err", err)
	}
	if mem, err := p.MemoryInfo(); err == nil {
		stats.RSSBytes = mem.RSS
	} else {
		w.log.Debug("Error while finding process ram usage", "err", err)
	}
	var ms goruntime.MemStats
	goruntime.ReadMemStats(&ms)
	stats.AllocMemMb = ms.Alloc / 1024 / 1024
	stats.NumGC = ms.NumGC
	if w.queueDepth != nil {
		stats.QueueDepth = w.queueDepth()
	}
	return stats
}
