package model

import "time"

// Trade is the persisted record of a single order placed by a formula.
type Trade struct {
	ID         string
	FormulaID  string
	Symbol     string
	Side       TradeSide
	Quantity   float64
	Price      float64
	Status     TradeStatus
	ExecutedAt time.Time
}
