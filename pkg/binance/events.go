// Package binance defines the typed events carried by the Binance WebSocket
// streams. Field tags follow the wire schema, which uses single-letter keys.
// See: https://github.com/binance-exchange/binance-official-api-docs/blob/master/web-socket-streams.md
package binance

import (
	"encoding/json"
	"fmt"
)

// AccountUpdateEvent reports account balance changes on a user data stream.
type AccountUpdateEvent struct {
	EventType string    `json:"e"` // Always "outboundAccountInfo"
	EventTime int64     `json:"E"`
	Balances  []Balance `json:"B"`
}

// Balance is a single asset balance within an account update.
type Balance struct {
	Asset  string `json:"a"`
	Free   string `json:"f"`
	Locked string `json:"l"`
}

// OrderTradeEvent is an execution report for one of the user's orders.
type OrderTradeEvent struct {
	EventType         string `json:"e"` // Always "executionReport"
	EventTime         int64  `json:"E"`
	Symbol            string `json:"s"`
	NewClientOrderID  string `json:"c"`
	Side              string `json:"S"` // BUY or SELL
	OrderType         string `json:"o"` // LIMIT, MARKET, ...
	TimeInForce       string `json:"f"`
	Qty               string `json:"q"`
	Price             string `json:"p"`
	ExecutionType     string `json:"x"` // NEW, TRADE, CANCELED, ...
	OrderStatus       string `json:"X"`
	OrderRejectReason string `json:"r"`
	OrderID           int64  `json:"i"`
	QtyLastFilled     string `json:"l"`
	AccumulatedQty    string `json:"z"`
	PriceLastFilled   string `json:"L"`
	Commission        string `json:"n"`
	TradeID           int64  `json:"t"`
	IsBuyerMaker      bool   `json:"m"`
	OrderCreationTime int64  `json:"O"`
}

// AggTradeEvent is a trade aggregated over orders filled at the same price.
type AggTradeEvent struct {
	EventType    string `json:"e"` // Always "aggTrade"
	EventTime    int64  `json:"E"`
	Symbol       string `json:"s"`
	AggTradeID   int64  `json:"a"`
	Price        string `json:"p"`
	Qty          string `json:"q"`
	FirstTradeID int64  `json:"f"`
	LastTradeID  int64  `json:"l"`
	TradeTime    int64  `json:"T"`
	IsBuyerMaker bool   `json:"m"`
}

// TradeEvent is a single raw trade.
type TradeEvent struct {
	EventType     string `json:"e"` // Always "trade"
	EventTime     int64  `json:"E"`
	Symbol        string `json:"s"`
	TradeID       int64  `json:"t"`
	Price         string `json:"p"`
	Qty           string `json:"q"`
	BuyerOrderID  int64  `json:"b"`
	SellerOrderID int64  `json:"a"`
	TradeTime     int64  `json:"T"`
	IsBuyerMaker  bool   `json:"m"`
}

// KlineEvent wraps a candlestick update.
type KlineEvent struct {
	EventType string `json:"e"` // Always "kline"
	EventTime int64  `json:"E"`
	Symbol    string `json:"s"`
	Kline     Kline  `json:"k"`
}

// Kline is the candlestick payload inside a KlineEvent.
type Kline struct {
	StartTime            int64  `json:"t"`
	EndTime              int64  `json:"T"`
	Symbol               string `json:"s"`
	Interval             string `json:"i"`
	FirstTradeID         int64  `json:"f"`
	LastTradeID          int64  `json:"L"`
	Open                 string `json:"o"`
	Close                string `json:"c"`
	High                 string `json:"h"`
	Low                  string `json:"l"`
	Volume               string `json:"v"`
	NumberOfTrades       int64  `json:"n"`
	IsFinal              bool   `json:"x"`
	QuoteVolume          string `json:"q"`
	ActiveBuyVolume      string `json:"V"`
	ActiveBuyQuoteVolume string `json:"Q"`
}

// OrderBook is a partial book depth snapshot, recognizable by its
// lastUpdateId field.
type OrderBook struct {
	LastUpdateID int64        `json:"lastUpdateId"`
	Bids         []PriceLevel `json:"bids"`
	Asks         []PriceLevel `json:"asks"`
}

// DepthDiffEvent is an incremental order book update.
type DepthDiffEvent struct {
	EventType     string       `json:"e"` // Always "depthUpdate"
	EventTime     int64        `json:"E"`
	Symbol        string       `json:"s"`
	FirstUpdateID int64        `json:"U"`
	FinalUpdateID int64        `json:"u"`
	Bids          []PriceLevel `json:"b"`
	Asks          []PriceLevel `json:"a"`
}

// PriceLevel is one side level of the order book. On the wire it is an array
// of the form ["price", "qty"]; older payloads carry a trailing third element
// which is ignored.
type PriceLevel struct {
	Price string
	Qty   string
}

func (l *PriceLevel) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("price level is not an array: %w", err)
	}
	if len(raw) < 2 {
		return fmt.Errorf("price level has %d elements, want at least 2", len(raw))
	}
	if err := json.Unmarshal(raw[0], &l.Price); err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}
	if err := json.Unmarshal(raw[1], &l.Qty); err != nil {
		return fmt.Errorf("invalid qty: %w", err)
	}
	return nil
}

func (l PriceLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{l.Price, l.Qty})
}
