package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejoacosta74/binance-stream/internal/dispatcher"
	"github.com/alejoacosta74/binance-stream/pkg/binance"
)

// Compile-time checks that the shipped handlers satisfy the handler groups.
var (
	_ dispatcher.UserStreamHandler = (*DebugHandler)(nil)
	_ dispatcher.MarketHandler     = (*DebugHandler)(nil)
	_ dispatcher.KlineHandler      = (*DebugHandler)(nil)
	_ dispatcher.MarketHandler     = (*KafkaForwarder)(nil)
	_ dispatcher.KlineHandler      = (*KafkaForwarder)(nil)
)

// fakePool records sends and can be told to fail.
type fakePool struct {
	mu       sync.Mutex
	topics   []string
	payloads [][]byte
	fail     bool
}

func (p *fakePool) Send(ctx context.Context, topic string, msg []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, msg)
	return nil
}

func (p *fakePool) Start() error { return nil }
func (p *fakePool) Stop() error  { return nil }

func (p *fakePool) sendCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.topics)
}

func TestKafkaForwarderTopicsAndPayload(t *testing.T) {
	pool := &fakePool{}
	f := NewKafkaForwarder(context.Background(), pool, "binance")

	f.HandleTrade(&binance.TradeEvent{EventType: "trade", Symbol: "BNBBTC", Price: "0.001"})
	f.HandleKline(&binance.KlineEvent{EventType: "kline", Symbol: "BNBBTC"})

	require.Equal(t, 2, pool.sendCount())
	assert.Equal(t, "binance.trade", pool.topics[0])
	assert.Equal(t, "binance.kline", pool.topics[1])

	var decoded binance.TradeEvent
	require.NoError(t, json.Unmarshal(pool.payloads[0], &decoded))
	assert.Equal(t, "BNBBTC", decoded.Symbol)
	assert.Equal(t, "0.001", decoded.Price)
}

func TestKafkaForwarderBreakerOpensOnFailures(t *testing.T) {
	pool := &fakePool{fail: true}
	f := NewKafkaForwarder(context.Background(), pool, "binance")

	// Trip the breaker (threshold is 5 consecutive failures).
	for i := 0; i < 5; i++ {
		f.HandleTrade(&binance.TradeEvent{Symbol: "BNBBTC"})
	}
	assert.False(t, f.breaker.AllowRequest())

	// With the breaker open the pool no longer sees send attempts.
	pool.mu.Lock()
	pool.fail = false
	pool.mu.Unlock()
	f.HandleTrade(&binance.TradeEvent{Symbol: "BNBBTC"})
	assert.Equal(t, 0, pool.sendCount())
}
