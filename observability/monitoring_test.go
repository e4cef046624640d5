package observability

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Counters(t *testing.T) {
	req := require.New(t)
	metrics := NewMetrics()
	mm := NewMonitoringManager(slog.New(slog.DiscardHandler), metrics)

	// When
	mm.IncrPostCreated()
	mm.IncrCommentCreated("comment")
	mm.IncrCommentCreated("reply")
	mm.IncrLikeToggled(true)
	mm.AddCensoredWords(3)
	mm.AddCensoredWords(0)
	mm.IncrReplyJob(ReplyQueued)
	mm.IncrReplyJob(ReplyDone)
	mm.ObserveSinkDelivery("timeout")
	mm.StreamOpened()
	mm.UpdateProcess(ProcessStats{PID: 42, CPUPercent: 1.5, RSSBytes: 2048, QueueDepth: 2})

	// Then
	stats := mm.Snapshot()
	req.Equal(uint64(1), stats.PostsCreated)
	req.Equal(uint64(2), stats.Comments)
	req.Equal(uint64(1), stats.LikesToggled)
	req.Equal(uint64(3), stats.CensoredWords)
	req.Equal(uint64(1), stats.RepliesQueued)
	req.Equal(uint64(1), stats.RepliesDone)
	req.Equal(uint64(1), stats.SinkErrors)
	req.Equal(int64(1), stats.ActiveStreams)
	req.Equal(int32(42), stats.Process.PID)

	req.Equal(float64(1), testutil.ToFloat64(metrics.PostsCreated))
	req.Equal(float64(1), testutil.ToFloat64(metrics.CommentsCreated.WithLabelValues("reply")))
	req.Equal(float64(3), testutil.ToFloat64(metrics.CensoredWords))
	req.Equal(float64(2), testutil.ToFloat64(metrics.ReplyQueueDepth))
	req.Equal(float64(1), testutil.ToFloat64(metrics.ActiveStreams))
}

func TestMonitoringManager_NilIsNoop(t *testing.T) {
	var mm *MonitoringManager
	mm.IncrPostCreated()
	mm.StreamOpened()
	mm.UpdateProcess(ProcessStats{})
	require.Equal(t, MonitoringStats{}, mm.Snapshot())
}

func TestMetrics_Handler(t *testing.T) {
	req := require.New(t)
	metrics := NewMetrics()
	metrics.ObserveHTTP("GET", "/api/posts", 200, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	req.NoError(err)
	req.Equal(200, rec.Code)
	req.Contains(string(body), `werkstatt_http_requests_total{method="GET",route="/api/posts",status="200"} 1`)
}
