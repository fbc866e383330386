// Package handlers provides ready-made handler implementations for the
// dispatcher's handler groups.
package handlers

import (
	"github.com/alejoacosta74/binance-stream/internal/logger"
	"github.com/alejoacosta74/binance-stream/pkg/binance"
)

// DebugHandler logs every event it receives. It implements all three handler
// groups, so one instance can be registered everywhere during development.
type DebugHandler struct {
	logger *logger.Logger
}

// NewDebugHandler creates a new debug handler.
func NewDebugHandler() *DebugHandler {
	return &DebugHandler{
		logger: logger.WithField("component", "debug_handler"),
	}
}

func (h *DebugHandler) HandleAccountUpdate(event *binance.AccountUpdateEvent) {
	h.logger.WithField("balances", len(event.Balances)).Info("Account update")
}

func (h *DebugHandler) HandleOrderTrade(event *binance.OrderTradeEvent) {
	h.logger.WithField("symbol", event.Symbol).
		WithField("status", event.OrderStatus).
		Infof("Execution report: %s %s %s @ %s", event.Side, event.Qty, event.Symbol, event.Price)
}

func (h *DebugHandler) HandleAggTrade(event *binance.AggTradeEvent) {
	h.logger.Debugf("Agg trade %s: %s @ %s", event.Symbol, event.Qty, event.Price)
}

func (h *DebugHandler) HandleTrade(event *binance.TradeEvent) {
	h.logger.Debugf("Trade %s: %s @ %s", event.Symbol, event.Qty, event.Price)
}

func (h *DebugHandler) HandlePartialOrderBook(book *binance.OrderBook) {
	h.logger.Debugf("Partial book update %d: %d bids / %d asks",
		book.LastUpdateID, len(book.Bids), len(book.Asks))
}

func (h *DebugHandler) HandleDepthDiff(event *binance.DepthDiffEvent) {
	h.logger.Debugf("Depth diff %s [%d..%d]: %d bids / %d asks",
		event.Symbol, event.FirstUpdateID, event.FinalUpdateID, len(event.Bids), len(event.Asks))
}

func (h *DebugHandler) HandleKline(event *binance.KlineEvent) {
	h.logger.Debugf("Kline %s %s: o=%s c=%s final=%v",
		event.Symbol, event.Kline.Interval, event.Kline.Open, event.Kline.Close, event.Kline.IsFinal)
}
