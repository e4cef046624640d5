package observability

import (
	"log/slog"
	"maps"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// ProcessStats is one sample of the server process.
type ProcessStats struct {
	PID          int32     `json:"pid"`
	CPUPercent   float64   `json:"cpu_percent"`
	RSSBytes     uint64    `json:"rss_bytes"`
	AllocMemMb   uint64    `json:"alloc_mem_mb"`
	NumGC        uint32    `json:"num_gc"`
	NumGoroutine int       `json:"num_goroutine"`
	QueueDepth   int       `json:"queue_depth"`
	SampledAt    time.Time `json:"sampled_at"`
}

// ChannelStats is the last length and capacity sampled for one pipeline channel.
type ChannelStats struct {
	Length   int `json:"length"`
	Capacity int `json:"capacity"`
}

// MonitoringStats aggregates everything the inspector shows.
type MonitoringStats struct {
	Process        ProcessStats            `json:"process"`
	Channels       map[string]ChannelStats `json:"channels"`
	PostsCreated   uint64                  `json:"posts_created"`
	Comments       uint64                  `json:"comments"`
	LikesToggled   uint64                  `json:"likes_toggled"`
	CensoredWords  uint64                  `json:"censored_words"`
	RepliesQueued  uint64                  `json:"replies_queued"`
	RepliesDropped uint64                  `json:"replies_dropped"`
	RepliesDone    uint64                  `json:"replies_done"`
	RepliesFailed  uint64                  `json:"replies_failed"`
	SinkErrors     uint64                  `json:"sink_errors"`
	ActiveStreams  int64                   `json:"active_streams"`
	Uploads        uint64                  `json:"uploads"`
	StartedAt      time.Time               `json:"started_at"`
}

// MonitoringManager keeps live counters for the inspector and mirrors them into Prometheus.
// A nil manager is a valid no-op.
type MonitoringManager struct {
	log     *slog.Logger
	metrics *Metrics
	started time.Time

	mu       sync.RWMutex
	process  ProcessStats
	channels map[string]ChannelStats

	postsCreated   atomic.Uint64
	comments       atomic.Uint64
	likesToggled   atomic.Uint64
	censoredWords  atomic.Uint64
	repliesQueued  atomic.Uint64
	repliesDropped atomic.Uint64
	repliesDone    atomic.Uint64
	repliesFailed  atomic.Uint64
	sinkErrors     atomic.Uint64
	activeStreams  atomic.Int64
	uploads        atomic.Uint64
}

func NewMonitoringManager(log *slog.Logger, metrics *Metrics) *MonitoringManager {
	return &MonitoringManager{log: log, metrics: metrics, started: time.Now().UTC()}
}

func (mm *MonitoringManager) Metrics() *Metrics {
	if mm == nil {
		return nil
	}
	return mm.metrics
}

func (mm *MonitoringManager) IncrPostCreated() {
	if mm == nil {
		return
	}
	mm.postsCreated.Add(1)
	if mm.metrics != nil {
		mm.metrics.PostsCreated.Inc()
	}
}

// IncrCommentCreated counts a comment or a reply, kind is "comment" or "reply".
func (mm *MonitoringManager) IncrCommentCreated(kind string) {
	if mm == nil {
		return
	}
	mm.comments.Add(1)
	if mm.metrics != nil {
		mm.metrics.CommentsCreated.WithLabelValues(kind).Inc()
	}
}

func (mm *MonitoringManager) IncrLikeToggled(liked bool) {
	if mm == nil {
		return
	}
	mm.likesToggled.Add(1)
	if mm.metrics != nil {
		mm.metrics.LikesToggled.WithLabelValues(strconv.FormatBool(liked)).Inc()
	}
}

func (mm *MonitoringManager) AddCensoredWords(n int) {
	if mm == nil || n <= 0 {
		return
	}
	mm.censoredWords.Add(uint64(n))
	if mm.metrics != nil {
		mm.metrics.CensoredWords.Add(float64(n))
	}
}

const (
	ReplyQueued  = "queued"
	ReplyDropped = "dropped"
	ReplyDone    = "done"
	ReplyFailed  = "failed"
)

func (mm *MonitoringManager) IncrReplyJob(status string) {
	if mm == nil {
		return
	}
	switch status {
	case ReplyQueued:
		mm.repliesQueued.Add(1)
	case ReplyDropped:
		mm.repliesDropped.Add(1)
	case ReplyDone:
		mm.repliesDone.Add(1)
	case ReplyFailed:
		mm.repliesFailed.Add(1)
	}
	if mm.metrics != nil {
		mm.metrics.ReplyJobs.WithLabelValues(status).Inc()
	}
}

// ObserveSinkDelivery records one delivery result: "ok", "error" or "timeout".
func (mm *MonitoringManager) ObserveSinkDelivery(result string) {
	if mm == nil {
		return
	}
	if result != "ok" {
		mm.sinkErrors.Add(1)
	}
	if mm.metrics != nil {
		mm.metrics.SinkDeliveries.WithLabelValues(result).Inc()
	}
}

func (mm *MonitoringManager) StreamOpened() {
	if mm == nil {
		return
	}
	mm.activeStreams.Add(1)
	if mm.metrics != nil {
		mm.metrics.ActiveStreams.Inc()
	}
}

func (mm *MonitoringManager) StreamClosed(status string) {
	if mm == nil {
		return
	}
	mm.activeStreams.Add(-1)
	if mm.metrics != nil {
		mm.metrics.ActiveStreams.Dec()
		mm.metrics.AssistantStreams.WithLabelValues(status).Inc()
	}
}

func (mm *MonitoringManager) IncrUpload(status string) {
	if mm == nil {
		return
	}
	if status == "ok" {
		mm.uploads.Add(1)
	}
	if mm.metrics != nil {
		mm.metrics.Uploads.WithLabelValues(status).Inc()
	}
}

// UpdateProcess stores the latest process sample.
func (mm *MonitoringManager) UpdateProcess(stats ProcessStats) {
	if mm == nil {
		return
	}
	mm.mu.Lock()
	mm.process = stats
	mm.mu.Unlock()
	if mm.metrics != nil {
		mm.metrics.ProcessCPU.Set(stats.CPUPercent)
		mm.metrics.ProcessRSS.Set(float64(stats.RSSBytes))
		mm.metrics.ReplyQueueDepth.Set(float64(stats.QueueDepth))
	}
}

// ObserveChannel stores one capacity sample of a named channel.
func (mm *MonitoringManager) ObserveChannel(name string, length, capacity int) {
	if mm == nil {
		return
	}
	mm.mu.Lock()
	if mm.channels == nil {
		mm.channels = make(map[string]ChannelStats)
	}
	mm.channels[name] = ChannelStats{Length: length, Capacity: capacity}
	mm.mu.Unlock()
	if mm.metrics != nil && capacity > 0 {
		mm.metrics.ChannelFill.WithLabelValues(name).Set(float64(length) / float64(capacity))
	}
}

func (mm *MonitoringManager) Snapshot() MonitoringStats {
	if mm == nil {
		return MonitoringStats{}
	}
	mm.mu.RLock()
	process := mm.process
	channels := maps.Clone(mm.channels)
	mm.mu.RUnlock()
	return MonitoringStats{
		Process:        process,
		Channels:       channels,
		PostsCreated:   mm.postsCreated.Load(),
		Comments:       mm.comments.Load(),
		LikesToggled:   mm.likesToggled.Load(),
		CensoredWords:  mm.censoredWords.Load(),
		RepliesQueued:  mm.repliesQueued.Load(),
		RepliesDropped: mm.repliesDropped.Load(),
		RepliesDone:    mm.repliesDone.Load(),
		RepliesFailed:  mm.repliesFailed.Load(),
		SinkErrors:     mm.sinkErrors.Load(),
		ActiveStreams:  mm.activeStreams.Load(),
		Uploads:        mm.uploads.Load(),
		StartedAt:      mm.started,
	}
}
