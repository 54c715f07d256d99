// Package application holds the services that orchestrate validation,
// credential encryption, and persistence. Services depend only on port
// interfaces and the secrets cipher.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/port/driven"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/secrets"
)

// BrokerAccountService links broker accounts to users, sealing their
// credentials before anything reaches the store. Plaintext credentials exist
// only in memory, on either side of a service call.
type BrokerAccountService struct {
	accounts driven.BrokerAccountStore
	cipher   *secrets.Cipher
	log      *slog.Logger
}

// NewBrokerAccountService creates a new BrokerAccountService with the
// required dependencies.
func NewBrokerAccountService(accounts driven.BrokerAccountStore, cipher *secrets.Cipher, log *slog.Logger) *BrokerAccountService {
	return &BrokerAccountService{
		accounts: accounts,
		cipher:   cipher,
		log:      log,
	}
}

// Link encrypts the credential payload and stores a new broker account for
// the user. The returned record carries the opaque blob, never the payload.
func (s *BrokerAccountService) Link(ctx context.Context, userID int64, broker string, paper bool, creds map[string]any) (model.BrokerAccount, error) {
	broker = strings.TrimSpace(broker)
	if broker == "" {
		return model.BrokerAccount{}, errors.New("broker name is required")
	}

	blob, err := s.cipher.EncryptCredentials(creds)
	if err != nil {
		return model.BrokerAccount{}, fmt.Errorf("encrypt credentials: %w", err)
	}

	now := time.Now().UTC()
	acct := model.BrokerAccount{
		ID:          xid.New().String(),
		UserID:      userID,
		Broker:      broker,
		Credentials: blob,
		Paper:       paper,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.accounts.Create(ctx, acct); err != nil {
		return model.BrokerAccount{}, err
	}

	s.log.Info("broker account linked", "account_id", acct.ID, "broker", broker, "user_id", userID, "paper", paper)
	return acct, nil
}

// Credentials loads and decrypts the credential payload for a broker
// account. A decryption failure means the stored blob is unreadable under
// the configured key; the caller decides whether that is user-visible
// ("re-link your broker account") or fatal.
func (s *BrokerAccountService) Credentials(ctx context.Context, accountID string) (map[string]any, error) {
	acct, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	creds, err := s.cipher.DecryptCredentials(acct.Credentials)
	if err != nil {
		return nil, fmt.Errorf("broker account %q: stored credentials unreadable: %w", accountID, err)
	}
	return creds, nil
}

// Relink replaces the credentials of an existing broker account, encrypting
// the new payload under the current key.
func (s *BrokerAccountService) Relink(ctx context.Context, accountID string, creds map[string]any) error {
	blob, err := s.cipher.EncryptCredentials(creds)
	if err != nil {
		return fmt.Errorf("encrypt credentials: %w", err)
	}

	if err := s.accounts.UpdateCredentials(ctx, accountID, blob); err != nil {
		return err
	}

	s.log.Info("broker account relinked", "account_id", accountID)
	return nil
}

// ListByUser returns the user's broker accounts. Credentials stay opaque.
func (s *BrokerAccountService) ListByUser(ctx context.Context, userID int64) ([]model.BrokerAccount, error) {
	return s.accounts.ListByUser(ctx, userID)
}

// Unlink removes a broker account and its stored credentials.
func (s *BrokerAccountService) Unlink(ctx context.Context, accountID string) error {
	if err := s.accounts.Delete(ctx, accountID); err != nil {
		return err
	}
	s.log.Info("broker account unlinked", "account_id", accountID)
	return nil
}
