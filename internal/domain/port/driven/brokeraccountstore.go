package driven

import (
	"context"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
)

// BrokerAccountStore defines the driven port for broker account persistence.
// The Credentials field is an opaque encrypted blob at this boundary; the
// store never sees plaintext credentials.
type BrokerAccountStore interface {
	// Create inserts a new broker account.
	Create(ctx context.Context, acct model.BrokerAccount) error

	// Get retrieves a broker account by ID. Returns ErrNotFound if no
	// account exists.
	Get(ctx context.Context, id string) (model.BrokerAccount, error)

	// ListByUser returns all broker accounts for the given user, ordered by
	// broker name.
	ListByUser(ctx context.Context, userID int64) ([]model.BrokerAccount, error)

	// UpdateCredentials replaces the stored credentials blob for an account.
	// Returns ErrNotFound if no account exists.
	UpdateCredentials(ctx context.Context, id, blob string) error

	// Delete removes a broker account. Deleting an absent account is not an
	// error.
	Delete(ctx context.Context, id string) error
}
