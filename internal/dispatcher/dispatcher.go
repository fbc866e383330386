// Package dispatcher routes raw websocket frames to typed event handlers.
// It holds at most one handler per group (user stream, market, kline) and
// drives the read-classify-decode-invoke cycle.
package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/alejoacosta74/binance-stream/internal/classifier"
	"github.com/alejoacosta74/binance-stream/internal/common"
	"github.com/alejoacosta74/binance-stream/internal/events"
	"github.com/alejoacosta74/binance-stream/internal/logger"
	"github.com/alejoacosta74/binance-stream/pkg/binance"
)

// UserStreamHandler receives events from a user data stream.
type UserStreamHandler interface {
	HandleAccountUpdate(event *binance.AccountUpdateEvent)
	HandleOrderTrade(event *binance.OrderTradeEvent)
}

// MarketHandler receives public market data events.
type MarketHandler interface {
	HandleAggTrade(event *binance.AggTradeEvent)
	HandleTrade(event *binance.TradeEvent)
	HandlePartialOrderBook(book *binance.OrderBook)
	HandleDepthDiff(event *binance.DepthDiffEvent)
}

// KlineHandler receives candlestick events.
type KlineHandler interface {
	HandleKline(event *binance.KlineEvent)
}

// Dispatcher owns the event loop. Frames arrive on MsgChan from the
// websocket reader; read errors arrive on ErrChan and are fatal, as are
// decode failures. Unknown frames and frames with no registered handler are
// dropped silently.
type Dispatcher struct {
	userStream UserStreamHandler
	market     MarketHandler
	kline      KlineHandler

	// Protects the handler slots. The loop itself is single-threaded, but
	// Set* may be called from other goroutines.
	handlerMu sync.RWMutex

	eventBus events.Bus
	logger   *logger.Logger
	msgChan  <-chan []byte
	errChan  <-chan error
}

// Config wires the dispatcher to its message source and observers.
type Config struct {
	MsgChan  <-chan []byte // frames from the websocket reader
	ErrChan  <-chan error  // fatal read errors from the reader
	EventBus events.Bus    // optional, for metrics and other observers
}

func NewDispatcher(cfg Config) *Dispatcher {
	return &Dispatcher{
		eventBus: cfg.EventBus,
		logger:   logger.WithField("component", "dispatcher"),
		msgChan:  cfg.MsgChan,
		errChan:  cfg.ErrChan,
	}
}

// SetUserStreamHandler binds the user stream handler, replacing any prior one.
func (d *Dispatcher) SetUserStreamHandler(h UserStreamHandler) {
	d.handlerMu.Lock()
	defer d.handlerMu.Unlock()
	d.userStream = h
}

// SetMarketHandler binds the market handler, replacing any prior one.
func (d *Dispatcher) SetMarketHandler(h MarketHandler) {
	d.handlerMu.Lock()
	defer d.handlerMu.Unlock()
	d.market = h
}

// SetKlineHandler binds the kline handler, replacing any prior one.
func (d *Dispatcher) SetKlineHandler(h KlineHandler) {
	d.handlerMu.Lock()
	defer d.handlerMu.Unlock()
	d.kline = h
}

// Run drives the event loop until the context is cancelled or a fatal error
// occurs. Read and decode errors terminate the loop and are returned to the
// caller; there is no internal retry or reconnect.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Debug("Starting dispatcher")

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("Shutting down dispatcher")
			return nil

		case err := <-d.errChan:
			return fmt.Errorf("websocket read: %w", err)

		case msg := <-d.msgChan:
			if err := d.dispatch(msg); err != nil {
				return err
			}
		}
	}
}

// dispatch processes a single frame: classify, decode, invoke. A decode
// failure is returned as a fatal error. An unknown category is not an error.
func (d *Dispatcher) dispatch(msg []byte) error {
	category := classifier.Classify(msg)
	if category == common.CategoryUnknown {
		d.logger.Tracef("Dropping unrecognized message: %s", string(msg))
		return nil
	}

	if err := d.decodeAndInvoke(category, msg); err != nil {
		d.publish(events.TopicDecodeError, category)
		return fmt.Errorf("decode %s event: %w", category, err)
	}

	d.publish(events.TopicEventDispatched, category)
	return nil
}

// decodeAndInvoke decodes the frame into the category's typed event and
// invokes the matching handler method synchronously. Decoding happens even
// when no handler is bound, so malformed frames surface regardless.
func (d *Dispatcher) decodeAndInvoke(category common.EventCategory, msg []byte) error {
	d.handlerMu.RLock()
	userStream, market, kline := d.userStream, d.market, d.kline
	d.handlerMu.RUnlock()

	switch category {
	case common.CategoryAccountUpdate:
		var event binance.AccountUpdateEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			return err
		}
		if userStream != nil {
			userStream.HandleAccountUpdate(&event)
		}

	case common.CategoryOrderTrade:
		var event binance.OrderTradeEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			return err
		}
		if userStream != nil {
			userStream.HandleOrderTrade(&event)
		}

	case common.CategoryAggTrade:
		var event binance.AggTradeEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			return err
		}
		if market != nil {
			market.HandleAggTrade(&event)
		}

	case common.CategoryTrade:
		var event binance.TradeEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			return err
		}
		if market != nil {
			market.HandleTrade(&event)
		}

	case common.CategoryKline:
		var event binance.KlineEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			return err
		}
		if kline != nil {
			kline.HandleKline(&event)
		}

	case common.CategoryPartialOrderBook:
		var book binance.OrderBook
		if err := json.Unmarshal(msg, &book); err != nil {
			return err
		}
		if market != nil {
			market.HandlePartialOrderBook(&book)
		}

	case common.CategoryDepthDiff:
		var event binance.DepthDiffEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			return err
		}
		if market != nil {
			market.HandleDepthDiff(&event)
		}
	}

	return nil
}

func (d *Dispatcher) publish(topic string, category common.EventCategory) {
	if d.eventBus != nil {
		d.eventBus.Publish(topic, category)
	}
}
