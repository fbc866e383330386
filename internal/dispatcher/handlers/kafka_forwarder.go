package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alejoacosta74/binance-stream/internal/circuitbreaker"
	"github.com/alejoacosta74/binance-stream/internal/kafka"
	"github.com/alejoacosta74/binance-stream/internal/logger"
	"github.com/alejoacosta74/binance-stream/pkg/binance"
)

// KafkaForwarder republishes decoded market and kline events to Kafka.
// Topics are <prefix>.<kind>, e.g. "binance.trade". A circuit breaker stops
// send attempts while the cluster is down; events dropped this way are
// logged, not retried, since the stream keeps producing fresher data.
type KafkaForwarder struct {
	pool    kafka.ProducerPool
	breaker *circuitbreaker.CircuitBreaker
	prefix  string
	ctx     context.Context
	logger  *logger.Logger
}

// NewKafkaForwarder creates a forwarder publishing through the given pool.
// The context bounds every send; cancel it to stop forwarding.
func NewKafkaForwarder(ctx context.Context, pool kafka.ProducerPool, topicPrefix string) *KafkaForwarder {
	return &KafkaForwarder{
		pool:    pool,
		breaker: circuitbreaker.NewCircuitBreaker(5, 30*time.Second),
		prefix:  topicPrefix,
		ctx:     ctx,
		logger:  logger.WithField("component", "kafka_forwarder"),
	}
}

func (f *KafkaForwarder) forward(kind string, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		f.logger.Errorf("Failed to encode %s event: %v", kind, err)
		return
	}

	topic := f.prefix + "." + kind
	err = f.breaker.Execute(func() error {
		return f.pool.Send(f.ctx, topic, payload)
	})
	if err != nil {
		f.logger.Warnf("Dropping %s event: %v", kind, err)
	}
}

func (f *KafkaForwarder) HandleAggTrade(event *binance.AggTradeEvent) {
	f.forward("aggtrade", event)
}

func (f *KafkaForwarder) HandleTrade(event *binance.TradeEvent) {
	f.forward("trade", event)
}

func (f *KafkaForwarder) HandlePartialOrderBook(book *binance.OrderBook) {
	f.forward("partialbook", book)
}

func (f *KafkaForwarder) HandleDepthDiff(event *binance.DepthDiffEvent) {
	f.forward("depthdiff", event)
}

func (f *KafkaForwarder) HandleKline(event *binance.KlineEvent) {
	f.forward("kline", event)
}
