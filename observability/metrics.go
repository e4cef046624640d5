// Package observability exposes Prometheus metrics and an in-process snapshot for the inspector.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "werkstatt"

// Metrics holds all Prometheus collectors of the service, on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Feed
	PostsCreated    prometheus.Counter
	CommentsCreated *prometheus.CounterVec
	LikesToggled    *prometheus.CounterVec
	CensoredWords   prometheus.Counter

	// Threads
	ReplyJobs       *prometheus.CounterVec
	ReplyQueueDepth prometheus.Gauge
	SinkDeliveries  *prometheus.CounterVec
	ChannelFill     *prometheus.GaugeVec

	// Assistant and uploads
	AssistantStreams *prometheus.CounterVec
	ActiveStreams    prometheus.Gauge
	Uploads          *prometheus.CounterVec

	// Process
	ProcessCPU prometheus.Gauge
	ProcessRSS prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		PostsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "posts_created_total",
			Help: "Posts created.",
		}),
		CommentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "comments_created_total",
			Help: "Comments and replies created.",
		}, []string{"kind"}),
		LikesToggled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "likes_toggled_total",
			Help: "Like toggles by resulting state.",
		}, []string{"liked"}),
		CensoredWords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "censored_words_total",
			Help: "Forbidden words masked in user content.",
		}),
		ReplyJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "reply_jobs_total",
			Help: "Thread reply jobs by status.",
		}, []string{"status"}),
		ReplyQueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "reply_queue_depth",
			Help: "Reply jobs waiting for a worker.",
		}),
		SinkDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "sink_deliveries_total",
			Help: "Thread update deliveries by result.",
		}, []string{"result"}),
		ChannelFill: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "channel_fill_ratio",
			Help: "Length over capacity of the internal pipeline channels.",
		}, []string{"channel"}),
		AssistantStreams: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "assistant_streams_total",
			Help: "Assistant relay streams by outcome.",
		}, []string{"status"}),
		ActiveStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "active_streams",
			Help: "Open server-sent event streams.",
		}),
		Uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "uploads_total",
			Help: "Image uploads by outcome.",
		}, []string{"status"}),
		ProcessCPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "process_cpu_percent",
			Help: "CPU usage of the server process as sampled by gopsutil.",
		}),
		ProcessRSS: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "process_rss_bytes",
			Help: "Resident memory of the server process.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.HTTPRequests, m.HTTPDuration,
		m.PostsCreated, m.CommentsCreated, m.LikesToggled, m.CensoredWords,
		m.ReplyJobs, m.ReplyQueueDepth, m.SinkDeliveries, m.ChannelFill,
		m.AssistantStreams, m.ActiveStreams, m.Uploads,
		m.ProcessCPU, m.ProcessRSS,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the private registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
