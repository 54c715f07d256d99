package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.BrokerAccountStore = (*BrokerAccountRepo)(nil)

// BrokerAccountRepo is the SQLite implementation of the BrokerAccountStore
// port interface. The credentials column holds the opaque encrypted blob as
// plain TEXT; this repo never encrypts or decrypts.
type BrokerAccountRepo struct {
	db *DB
}

// NewBrokerAccountRepo creates a new BrokerAccountRepo backed by the given DB.
func NewBrokerAccountRepo(db *DB) *BrokerAccountRepo {
	return &BrokerAccountRepo{db: db}
}

// Create inserts a new broker account.
func (r *BrokerAccountRepo) Create(ctx context.Context, acct model.BrokerAccount) error {
	const query = `
		INSERT INTO broker_accounts (id, user_id, broker, credentials, paper, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	paper := 0
	if acct.Paper {
		paper = 1
	}

	_, err := r.db.Writer.ExecContext(ctx, query,
		acct.ID, acct.UserID, acct.Broker, acct.Credentials, paper,
		acct.CreatedAt.UTC(), acct.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("create broker account %q: %w", acct.ID, err)
	}

	return nil
}

// Get retrieves a broker account by ID. Returns driven.ErrNotFound if no
// account exists.
func (r *BrokerAccountRepo) Get(ctx context.Context, id string) (model.BrokerAccount, error) {
	const query = `
		SELECT id, user_id, broker, credentials, paper, created_at, updated_at
		FROM broker_accounts
		WHERE id = ?
	`

	acct, err := scanBrokerAccount(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.BrokerAccount{}, driven.ErrNotFound
	}
	if err != nil {
		return model.BrokerAccount{}, fmt.Errorf("get broker account %q: %w", id, err)
	}

	return acct, nil
}

// ListByUser returns all broker accounts for the given user, ordered by
// broker name.
func (r *BrokerAccountRepo) ListByUser(ctx context.Context, userID int64) ([]model.BrokerAccount, error) {
	const query = `
		SELECT id, user_id, broker, credentials, paper, created_at, updated_at
		FROM broker_accounts
		WHERE user_id = ?
		ORDER BY broker
	`

	rows, err := r.db.Reader.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list broker accounts for user %d: %w", userID, err)
	}
	defer rows.Close()

	var accounts []model.BrokerAccount
	for rows.Next() {
		acct, err := scanBrokerAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan broker account: %w", err)
		}
		accounts = append(accounts, acct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate broker accounts: %w", err)
	}

	return accounts, nil
}

// UpdateCredentials replaces the stored credentials blob for an account.
// Returns driven.ErrNotFound if no account exists.
func (r *BrokerAccountRepo) UpdateCredentials(ctx context.Context, id, blob string) error {
	const query = `UPDATE broker_accounts SET credentials = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, blob, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update credentials for broker account %q: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update credentials for broker account %q: rows affected: %w", id, err)
	}
	if affected == 0 {
		return driven.ErrNotFound
	}

	return nil
}

// Delete removes a broker account. Deleting an absent account is not an error.
func (r *BrokerAccountRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM broker_accounts WHERE id = ?`

	if _, err := r.db.Writer.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete broker account %q: %w", id, err)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for the shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanBrokerAccount(s scanner) (model.BrokerAccount, error) {
	var acct model.BrokerAccount
	var paper int
	var createdAt, updatedAt string

	err := s.Scan(&acct.ID, &acct.UserID, &acct.Broker, &acct.Credentials, &paper, &createdAt, &updatedAt)
	if err != nil {
		return model.BrokerAccount{}, err
	}

	acct.Paper = paper == 1

	if acct.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.BrokerAccount{}, fmt.Errorf("parse created_at: %w", err)
	}
	if acct.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.BrokerAccount{}, fmt.Errorf("parse updated_at: %w", err)
	}

	return acct, nil
}
