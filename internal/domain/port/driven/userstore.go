package driven

import (
	"context"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
)

// UserStore defines the driven port for user persistence.
type UserStore interface {
	// Create inserts a new user and returns the stored record with its
	// assigned ID.
	Create(ctx context.Context, email string) (model.User, error)

	// GetByID retrieves a user by ID. Returns ErrNotFound if no user exists.
	GetByID(ctx context.Context, id int64) (model.User, error)

	// GetByEmail retrieves a user by email. Returns ErrNotFound if no user exists.
	GetByEmail(ctx context.Context, email string) (model.User, error)
}
