package binance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceLevelUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PriceLevel
		wantErr bool
	}{
		{
			name:  "two element form",
			input: `["0.0024","10"]`,
			want:  PriceLevel{Price: "0.0024", Qty: "10"},
		},
		{
			name:  "legacy three element form",
			input: `["0.0024","10",[]]`,
			want:  PriceLevel{Price: "0.0024", Qty: "10"},
		},
		{
			name:    "not an array",
			input:   `{"price":"0.0024"}`,
			wantErr: true,
		},
		{
			name:    "too few elements",
			input:   `["0.0024"]`,
			wantErr: true,
		},
		{
			name:    "non-string price",
			input:   `[0.0024,"10"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var level PriceLevel
			err := json.Unmarshal([]byte(tt.input), &level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestOrderBookDecode(t *testing.T) {
	payload := `{"lastUpdateId":160,"bids":[["0.0024","10"],["0.0023","5"]],"asks":[["0.0026","100"]]}`

	var book OrderBook
	require.NoError(t, json.Unmarshal([]byte(payload), &book))

	assert.Equal(t, int64(160), book.LastUpdateID)
	require.Len(t, book.Bids, 2)
	assert.Equal(t, PriceLevel{Price: "0.0023", Qty: "5"}, book.Bids[1])
	require.Len(t, book.Asks, 1)
	assert.Equal(t, "100", book.Asks[0].Qty)
}

func TestKlineEventDecode(t *testing.T) {
	payload := `{"e":"kline","E":123456789,"s":"BNBBTC","k":{
		"t":123400000,"T":123460000,"s":"BNBBTC","i":"1m","f":100,"L":200,
		"o":"0.0010","c":"0.0020","h":"0.0025","l":"0.0015","v":"1000","n":100,
		"x":false,"q":"1.0000","V":"500","Q":"0.500"}}`

	var event KlineEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &event))

	assert.Equal(t, "BNBBTC", event.Symbol)
	assert.Equal(t, "1m", event.Kline.Interval)
	assert.Equal(t, "0.0025", event.Kline.High)
	assert.False(t, event.Kline.IsFinal)
	assert.Equal(t, int64(100), event.Kline.NumberOfTrades)
}
