// Package classifier maps raw websocket frames to event categories.
package classifier

import (
	"bytes"

	"github.com/alejoacosta74/binance-stream/internal/common"
)

// Marker tokens that identify each event kind within a raw payload.
const (
	markerAccountUpdate = "outboundAccountInfo"
	markerOrderTrade    = "executionReport"
	markerAggTrade      = "aggTrade"
	markerTrade         = "trade"
	markerKline         = "kline"
	markerPartialBook   = "lastUpdateId"
	markerDepthDiff     = "depthUpdate"
)

// rules is evaluated in order. The order is load-bearing: "aggTrade"
// contains "trade" as a substring, so the aggTrade rule must run first or
// aggregated trades would be misclassified as raw trades.
var rules = []struct {
	marker   []byte
	category common.EventCategory
}{
	{[]byte(markerAccountUpdate), common.CategoryAccountUpdate},
	{[]byte(markerOrderTrade), common.CategoryOrderTrade},
	{[]byte(markerAggTrade), common.CategoryAggTrade},
	{[]byte(markerTrade), common.CategoryTrade},
	{[]byte(markerKline), common.CategoryKline},
	{[]byte(markerPartialBook), common.CategoryPartialOrderBook},
	{[]byte(markerDepthDiff), common.CategoryDepthDiff},
}

// Classify returns the event category of a raw frame, or CategoryUnknown if
// no marker matches. It never fails and has no side effects.
func Classify(msg []byte) common.EventCategory {
	for _, r := range rules {
		if bytes.Contains(msg, r.marker) {
			return r.category
		}
	}
	return common.CategoryUnknown
}
