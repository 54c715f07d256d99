package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		want   bool
	}{
		{"AAPL", true},
		{"MSFT", true},
		{"BTC-USD", true},
		{"EUR/USD", true},
		{"A", true},
		{"ABCDEFGHIJ", true},

		{"", false},
		{"aapl", false},
		{"AAPL ", false},
		{" AAPL", false},
		{"BTC--USD", false},
		{"BTC-USD-X", false},
		{"BTC_USD", false},
		{"ABCDEFGHIJK", false},
		{"-USD", false},
		{"BTC-", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Symbol(tt.symbol), "Symbol(%q)", tt.symbol)
	}
}

func TestSignal(t *testing.T) {
	assert.True(t, Signal(model.SignalBuy))
	assert.True(t, Signal(model.SignalSell))
	assert.True(t, Signal(model.SignalHold))
	assert.False(t, Signal(model.Signal("long")))
	assert.False(t, Signal(model.Signal("")))
	assert.False(t, Signal(model.Signal("BUY")))
}

func TestTimeframe(t *testing.T) {
	for _, tf := range []model.Timeframe{
		model.Timeframe1m, model.Timeframe5m, model.Timeframe15m,
		model.Timeframe1h, model.Timeframe4h, model.Timeframe1d,
	} {
		assert.True(t, Timeframe(tf), "Timeframe(%q)", tf)
	}
	assert.False(t, Timeframe(model.Timeframe("2m")))
	assert.False(t, Timeframe(model.Timeframe("1w")))
	assert.False(t, Timeframe(model.Timeframe("")))
}

func TestExecutionMode(t *testing.T) {
	assert.True(t, ExecutionMode(model.ExecutionModePaper))
	assert.True(t, ExecutionMode(model.ExecutionModeLive))
	assert.False(t, ExecutionMode(model.ExecutionMode("dry-run")))
	assert.False(t, ExecutionMode(model.ExecutionMode("")))
}

func TestTradeSide(t *testing.T) {
	assert.True(t, TradeSide(model.TradeSideBuy))
	assert.True(t, TradeSide(model.TradeSideSell))
	assert.False(t, TradeSide(model.TradeSide("hold")))
	assert.False(t, TradeSide(model.TradeSide("")))
}

func TestTradeStatus(t *testing.T) {
	for _, s := range []model.TradeStatus{
		model.TradeStatusPending, model.TradeStatusFilled,
		model.TradeStatusRejected, model.TradeStatusCanceled,
	} {
		assert.True(t, TradeStatus(s), "TradeStatus(%q)", s)
	}
	assert.False(t, TradeStatus(model.TradeStatus("open")))
	assert.False(t, TradeStatus(model.TradeStatus("")))
}

func TestQuantity(t *testing.T) {
	assert.True(t, Quantity(1))
	assert.True(t, Quantity(0.001))
	assert.False(t, Quantity(0))
	assert.False(t, Quantity(-5))
	assert.False(t, Quantity(math.NaN()))
	assert.False(t, Quantity(math.Inf(1)))
}

func TestPrice(t *testing.T) {
	assert.True(t, Price(187.34))
	assert.True(t, Price(0.00042))
	assert.False(t, Price(0))
	assert.False(t, Price(-1))
	assert.False(t, Price(math.NaN()))
	assert.False(t, Price(math.Inf(-1)))
}
