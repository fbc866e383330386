// Package metrics collects dispatch activity into Prometheus metrics and
// serves them over HTTP.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/alejoacosta74/binance-stream/internal/common"
	"github.com/alejoacosta74/binance-stream/internal/events"
	"github.com/alejoacosta74/binance-stream/internal/logger"
)

// Recorder subscribes to the event bus and tracks per-category dispatch
// counts and decode failures. It owns its registry so multiple recorders can
// exist in tests without duplicate-registration panics.
type Recorder struct {
	eventsDispatched *prometheus.CounterVec
	decodeErrors     *prometheus.CounterVec

	registry *prometheus.Registry
	eventBus events.Bus
	logger   *logger.Logger
	done     chan struct{}
}

// NewRecorder creates a recorder wired to the given bus.
func NewRecorder(eventBus events.Bus) *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	r := &Recorder{
		registry: registry,
		eventBus: eventBus,
		logger:   logger.WithField("component", "metrics_recorder"),
		done:     make(chan struct{}),
	}

	r.eventsDispatched = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stream",
			Name:      "events_dispatched_total",
			Help:      "Number of events dispatched, by category",
		},
		[]string{"category"},
	)

	r.decodeErrors = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stream",
			Name:      "decode_errors_total",
			Help:      "Number of frames that matched a category but failed to decode",
		},
		[]string{"category"},
	)

	return r
}

// Registry returns the recorder's registry for serving.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Start subscribes to dispatch topics and records until the context is
// cancelled.
func (r *Recorder) Start(ctx context.Context) {
	dispatched := r.eventBus.Subscribe(events.TopicEventDispatched)
	decodeErrs := r.eventBus.Subscribe(events.TopicDecodeError)

	go func() {
		defer close(r.done)
		defer r.eventBus.Unsubscribe(events.TopicEventDispatched, dispatched)
		defer r.eventBus.Unsubscribe(events.TopicDecodeError, decodeErrs)

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-dispatched:
				if !ok {
					return
				}
				if category, ok := event.(common.EventCategory); ok {
					r.eventsDispatched.WithLabelValues(string(category)).Inc()
				}
			case event, ok := <-decodeErrs:
				if !ok {
					return
				}
				if category, ok := event.(common.EventCategory); ok {
					r.decodeErrors.WithLabelValues(string(category)).Inc()
				}
			}
		}
	}()
}

// Done is closed when the recorder has stopped.
func (r *Recorder) Done() <-chan struct{} {
	return r.done
}

// DispatchedCount reads back the current counter value for a category.
func (r *Recorder) DispatchedCount(category common.EventCategory) float64 {
	return counterValue(r.eventsDispatched.WithLabelValues(string(category)))
}

// DecodeErrorCount reads back the decode failure count for a category.
func (r *Recorder) DecodeErrorCount(category common.EventCategory) float64 {
	return counterValue(r.decodeErrors.WithLabelValues(string(category)))
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
