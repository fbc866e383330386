package common

// EventCategory represents the different kinds of events that can be received
// from the Binance WebSocket streams.
type EventCategory string

// Predefined event categories. Every inbound frame maps to exactly one of
// these; frames matching none of the known markers are CategoryUnknown and
// are dropped by the dispatcher.
const (
	CategoryAccountUpdate    EventCategory = "account_update"     // User account balance update
	CategoryOrderTrade       EventCategory = "order_trade"        // Order execution report
	CategoryAggTrade         EventCategory = "agg_trade"          // Aggregated trade
	CategoryTrade            EventCategory = "trade"              // Raw trade
	CategoryKline            EventCategory = "kline"              // Candlestick update
	CategoryPartialOrderBook EventCategory = "partial_order_book" // Partial book depth snapshot
	CategoryDepthDiff        EventCategory = "depth_diff"         // Incremental depth update
	CategoryUnknown          EventCategory = "unknown"
)
