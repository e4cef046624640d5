package workers

import (
	"context"
	"log/slog"
	"reflect"
	"time"
	"werkstatt/contract"
	"werkstatt/observability"
)

var _ contract.Worker = ChannelCapacityWorker{}

// lowCapacityRatio is the fill ratio from which a channel is reported as congested.
const lowCapacityRatio = 0.8

type NamedChannel struct {
	Name    string
	Channel any
}

// ChannelCapacityWorker periodically samples length and capacity of the pipeline channels.
// Reading len(channel) and cap(channel) is non-blocking, so this won't interfere
// with the reply workers or the fanout.
type ChannelCapacityWorker struct {
	log            *slog.Logger
	channels       []NamedChannel
	monitoring     *observability.MonitoringManager
	metricInterval time.Duration
}

func NewChannelCapacityWorker(log *slog.Logger,
	channels []NamedChannel, monitoring *observability.MonitoringManager,
	metricInterval time.Duration) ChannelCapacityWorker {
	return ChannelCapacityWorker{
		log: log, channels: channels,
		monitoring:     monitoring,
		metricInterval: metricInterval,
	}
}

func (w ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping channel sampling")
			return nil
		case <-ticker.C:
			w.sample()
		}
	}
}

func (w ChannelCapacityWorker) sample() {
	for _, nc := range w.channels {
		v := reflect.ValueOf(nc.Channel)
		if v.Kind() != reflect.Chan {
			w.log.Error("Provided object is not a channel", "name", nc.Name)
			continue
		}
		capacity, length := v.Cap(), v.Len()
		w.monitoring.ObserveChannel(nc.Name, length, capacity)
		if capacity > 0 && float64(length)/float64(capacity) >= lowCapacityRatio {
			w.log.Warn("Channel close to capacity", "name", nc.Name, "length", length, "capacity", capacity)
		}
	}
}
