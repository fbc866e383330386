package classifier

import (
	"testing"

	"github.com/alejoacosta74/binance-stream/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    common.EventCategory
	}{
		{
			name:    "account update",
			payload: `{"e":"outboundAccountInfo","E":1499405658849,"B":[]}`,
			want:    common.CategoryAccountUpdate,
		},
		{
			name:    "execution report",
			payload: `{"e":"executionReport","E":1499405658658,"s":"ETHBTC"}`,
			want:    common.CategoryOrderTrade,
		},
		{
			name:    "aggregated trade",
			payload: `{"e":"aggTrade","E":123456789,"s":"BNBBTC","a":12345}`,
			want:    common.CategoryAggTrade,
		},
		{
			name:    "raw trade",
			payload: `{"e":"trade","E":123456789,"s":"BNBBTC","t":12345}`,
			want:    common.CategoryTrade,
		},
		{
			name:    "kline",
			payload: `{"e":"kline","E":123456789,"s":"BNBBTC","k":{"i":"1m"}}`,
			want:    common.CategoryKline,
		},
		{
			name:    "partial order book",
			payload: `{"lastUpdateId":160,"bids":[["0.0024","10"]],"asks":[["0.0026","100"]]}`,
			want:    common.CategoryPartialOrderBook,
		},
		{
			name:    "depth diff",
			payload: `{"e":"depthUpdate","E":123456789,"s":"BNBBTC","U":157,"u":160}`,
			want:    common.CategoryDepthDiff,
		},
		{
			name:    "unrecognized shape",
			payload: `{"foo":"bar"}`,
			want:    common.CategoryUnknown,
		},
		{
			name:    "empty payload",
			payload: ``,
			want:    common.CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify([]byte(tt.payload)))
		})
	}
}

// An aggTrade payload textually contains "trade", so the aggTrade rule has
// to win. Swapping the rule order would silently break this.
func TestClassifyOrdering(t *testing.T) {
	payload := []byte(`{"e":"aggTrade","E":123456789,"s":"BNBBTC","a":12345,"p":"0.001","q":"100"}`)
	assert.Equal(t, common.CategoryAggTrade, Classify(payload))
	assert.NotEqual(t, common.CategoryTrade, Classify(payload))
}

// Account update wins regardless of other markers present in the payload.
func TestClassifyPriorityAccountUpdate(t *testing.T) {
	payload := []byte(`{"e":"outboundAccountInfo","note":"trade kline depthUpdate lastUpdateId"}`)
	assert.Equal(t, common.CategoryAccountUpdate, Classify(payload))
}
