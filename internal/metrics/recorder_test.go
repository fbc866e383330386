package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alejoacosta74/binance-stream/internal/common"
	"github.com/alejoacosta74/binance-stream/internal/events"
)

func waitForCount(t *testing.T, get func() float64, want float64) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if get() == want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("counter = %v, want %v", get(), want)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestRecorderCountsDispatchedEvents(t *testing.T) {
	bus := events.NewEventBus()
	recorder := NewRecorder(bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	recorder.Start(ctx)

	bus.Publish(events.TopicEventDispatched, common.CategoryTrade)
	bus.Publish(events.TopicEventDispatched, common.CategoryTrade)
	bus.Publish(events.TopicEventDispatched, common.CategoryKline)
	bus.Publish(events.TopicDecodeError, common.CategoryDepthDiff)

	waitForCount(t, func() float64 { return recorder.DispatchedCount(common.CategoryTrade) }, 2)
	waitForCount(t, func() float64 { return recorder.DispatchedCount(common.CategoryKline) }, 1)
	waitForCount(t, func() float64 { return recorder.DecodeErrorCount(common.CategoryDepthDiff) }, 1)
	assert.Equal(t, float64(0), recorder.DispatchedCount(common.CategoryAggTrade))
}

func TestRecorderStopsOnCancel(t *testing.T) {
	bus := events.NewEventBus()
	recorder := NewRecorder(bus)

	ctx, cancel := context.WithCancel(context.Background())
	recorder.Start(ctx)
	cancel()

	select {
	case <-recorder.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for recorder to stop")
	}
}
