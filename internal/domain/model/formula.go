package model

import "time"

// Formula is a user-defined trading rule: when its signal fires on the given
// symbol and timeframe, an order for Quantity units is placed in the selected
// execution mode. Disabled formulas are kept but never evaluated.
type Formula struct {
	ID        string
	UserID    int64
	Name      string
	Symbol    string
	Signal    Signal
	Timeframe Timeframe
	Mode      ExecutionMode
	Quantity  float64
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
