package driven

import (
	"context"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
)

// TradeStore defines the driven port for trade record persistence.
type TradeStore interface {
	// Insert stores a new trade record.
	Insert(ctx context.Context, trade model.Trade) error

	// Get retrieves a trade by ID. Returns ErrNotFound if no trade exists.
	Get(ctx context.Context, id string) (model.Trade, error)

	// ListByFormula returns all trades placed by the given formula, newest
	// first.
	ListByFormula(ctx context.Context, formulaID string) ([]model.Trade, error)

	// UpdateStatus moves a trade to a new lifecycle status. Returns
	// ErrNotFound if no trade exists.
	UpdateStatus(ctx context.Context, id string, status model.TradeStatus) error
}
