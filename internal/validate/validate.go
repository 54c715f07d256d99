// Package validate holds the request-field predicates applied before any
// value reaches persistence. Every predicate is a pure function of its
// input with no state.
package validate

import (
	"math"
	"regexp"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
)

// symbolPattern accepts a base instrument of 1-10 uppercase alphanumerics,
// optionally followed by a quote part separated by "-" or "/".
var symbolPattern = regexp.MustCompile(`^[A-Z0-9]{1,10}([-/][A-Z0-9]{1,10})?$`)

// Symbol reports whether s is a well-formed instrument symbol such as
// "AAPL", "BTC-USD" or "EUR/USD".
func Symbol(s string) bool {
	return symbolPattern.MatchString(s)
}

// Signal reports whether s is a known formula signal.
func Signal(s model.Signal) bool {
	switch s {
	case model.SignalBuy, model.SignalSell, model.SignalHold:
		return true
	}
	return false
}

// Timeframe reports whether tf is a supported candle interval.
func Timeframe(tf model.Timeframe) bool {
	switch tf {
	case model.Timeframe1m, model.Timeframe5m, model.Timeframe15m,
		model.Timeframe1h, model.Timeframe4h, model.Timeframe1d:
		return true
	}
	return false
}

// ExecutionMode reports whether m is a known execution mode.
func ExecutionMode(m model.ExecutionMode) bool {
	switch m {
	case model.ExecutionModePaper, model.ExecutionModeLive:
		return true
	}
	return false
}

// TradeSide reports whether s is a known trade side.
func TradeSide(s model.TradeSide) bool {
	switch s {
	case model.TradeSideBuy, model.TradeSideSell:
		return true
	}
	return false
}

// TradeStatus reports whether s is a known trade status.
func TradeStatus(s model.TradeStatus) bool {
	switch s {
	case model.TradeStatusPending, model.TradeStatusFilled,
		model.TradeStatusRejected, model.TradeStatusCanceled:
		return true
	}
	return false
}

// Quantity reports whether q is a usable order quantity.
func Quantity(q float64) bool {
	return q > 0 && !math.IsInf(q, 0) && !math.IsNaN(q)
}

// Price reports whether p is a usable execution price.
func Price(p float64) bool {
	return p > 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}
