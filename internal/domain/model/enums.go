package model

// Signal is the trade direction a formula emits when its conditions fire.
type Signal string

const (
	SignalBuy  Signal = "buy"
	SignalSell Signal = "sell"
	SignalHold Signal = "hold"
)

// Timeframe is the candle interval a formula evaluates on.
type Timeframe string

const (
	Timeframe1m  Timeframe = "1m"
	Timeframe5m  Timeframe = "5m"
	Timeframe15m Timeframe = "15m"
	Timeframe1h  Timeframe = "1h"
	Timeframe4h  Timeframe = "4h"
	Timeframe1d  Timeframe = "1d"
)

// ExecutionMode selects whether a formula's orders reach a live or a paper
// broker account.
type ExecutionMode string

const (
	ExecutionModePaper ExecutionMode = "paper"
	ExecutionModeLive  ExecutionMode = "live"
)

// TradeSide is the direction of an executed trade.
type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

// TradeStatus tracks a trade record through its lifecycle.
type TradeStatus string

const (
	TradeStatusPending  TradeStatus = "pending"
	TradeStatusFilled   TradeStatus = "filled"
	TradeStatusRejected TradeStatus = "rejected"
	TradeStatusCanceled TradeStatus = "canceled"
)
