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
var _ driven.FormulaStore = (*FormulaRepo)(nil)

// FormulaRepo is the SQLite implementation of the FormulaStore port interface.
type FormulaRepo struct {
	db *DB
}

// NewFormulaRepo creates a new FormulaRepo backed by the given DB.
func NewFormulaRepo(db *DB) *FormulaRepo {
	return &FormulaRepo{db: db}
}

// Create inserts a new formula.
func (r *FormulaRepo) Create(ctx context.Context, f model.Formula) error {
	const query = `
		INSERT INTO formulas (id, user_id, name, symbol, signal, timeframe, mode, quantity, enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	enabled := 0
	if f.Enabled {
		enabled = 1
	}

	_, err := r.db.Writer.ExecContext(ctx, query,
		f.ID, f.UserID, f.Name, f.Symbol, string(f.Signal), string(f.Timeframe),
		string(f.Mode), f.Quantity, enabled, f.CreatedAt.UTC(), f.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("create formula %q: %w", f.ID, err)
	}

	return nil
}

// Get retrieves a formula by ID. Returns driven.ErrNotFound if no formula exists.
func (r *FormulaRepo) Get(ctx context.Context, id string) (model.Formula, error) {
	const query = `
		SELECT id, user_id, name, symbol, signal, timeframe, mode, quantity, enabled, created_at, updated_at
		FROM formulas
		WHERE id = ?
	`

	f, err := scanFormula(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Formula{}, driven.ErrNotFound
	}
	if err != nil {
		return model.Formula{}, fmt.Errorf("get formula %q: %w", id, err)
	}

	return f, nil
}

// ListByUser returns all formulas for the given user, ordered by name.
func (r *FormulaRepo) ListByUser(ctx context.Context, userID int64) ([]model.Formula, error) {
	const query = `
		SELECT id, user_id, name, symbol, signal, timeframe, mode, quantity, enabled, created_at, updated_at
		FROM formulas
		WHERE user_id = ?
		ORDER BY name
	`

	return r.queryFormulas(ctx, query, userID)
}

// ListEnabled returns all enabled formulas, ordered by name.
func (r *FormulaRepo) ListEnabled(ctx context.Context) ([]model.Formula, error) {
	const query = `
		SELECT id, user_id, name, symbol, signal, timeframe, mode, quantity, enabled, created_at, updated_at
		FROM formulas
		WHERE enabled = 1
		ORDER BY name
	`

	return r.queryFormulas(ctx, query)
}

// SetEnabled flips a formula's enabled flag and bumps its updated_at.
// Returns driven.ErrNotFound if no formula exists.
func (r *FormulaRepo) SetEnabled(ctx context.Context, id string, enabled bool) error {
	const query = `UPDATE formulas SET enabled = ?, updated_at = ? WHERE id = ?`

	val := 0
	if enabled {
		val = 1
	}

	result, err := r.db.Writer.ExecContext(ctx, query, val, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set enabled for formula %q: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set enabled for formula %q: rows affected: %w", id, err)
	}
	if affected == 0 {
		return driven.ErrNotFound
	}

	return nil
}

// Delete removes a formula and, through foreign keys, its trades. Deleting
// an absent formula is not an error.
func (r *FormulaRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM formulas WHERE id = ?`

	if _, err := r.db.Writer.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete formula %q: %w", id, err)
	}
	return nil
}

func (r *FormulaRepo) queryFormulas(ctx context.Context, query string, args ...any) ([]model.Formula, error) {
	rows, err := r.db.Reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query formulas: %w", err)
	}
	defer rows.Close()

	var formulas []model.Formula
	for rows.Next() {
		f, err := scanFormula(rows)
		if err != nil {
			return nil, fmt.Errorf("scan formula: %w", err)
		}
		formulas = append(formulas, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate formulas: %w", err)
	}

	return formulas, nil
}

func scanFormula(s scanner) (model.Formula, error) {
	var f model.Formula
	var signal, timeframe, mode string
	var enabled int
	var createdAt, updatedAt string

	err := s.Scan(&f.ID, &f.UserID, &f.Name, &f.Symbol, &signal, &timeframe, &mode,
		&f.Quantity, &enabled, &createdAt, &updatedAt)
	if err != nil {
		return model.Formula{}, err
	}

	f.Signal = model.Signal(signal)
	f.Timeframe = model.Timeframe(timeframe)
	f.Mode = model.ExecutionMode(mode)
	f.Enabled = enabled == 1

	if f.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Formula{}, fmt.Errorf("parse created_at: %w", err)
	}
	if f.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Formula{}, fmt.Errorf("parse updated_at: %w", err)
	}

	return f, nil
}
