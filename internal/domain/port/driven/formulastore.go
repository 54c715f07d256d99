package driven

import (
	"context"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
)

// FormulaStore defines the driven port for formula persistence.
type FormulaStore interface {
	// Create inserts a new formula.
	Create(ctx context.Context, f model.Formula) error

	// Get retrieves a formula by ID. Returns ErrNotFound if no formula exists.
	Get(ctx context.Context, id string) (model.Formula, error)

	// ListByUser returns all formulas for the given user, ordered by name.
	ListByUser(ctx context.Context, userID int64) ([]model.Formula, error)

	// ListEnabled returns all enabled formulas, ordered by name.
	ListEnabled(ctx context.Context) ([]model.Formula, error)

	// SetEnabled flips a formula's enabled flag and bumps its updated_at.
	// Returns ErrNotFound if no formula exists.
	SetEnabled(ctx context.Context, id string, enabled bool) error

	// Delete removes a formula and, through foreign keys, its trades.
	// Deleting an absent formula is not an error.
	Delete(ctx context.Context, id string) error
}
