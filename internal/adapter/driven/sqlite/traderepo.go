package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.TradeStore = (*TradeRepo)(nil)

// TradeRepo is the SQLite implementation of the TradeStore port interface.
type TradeRepo struct {
	db *DB
}

// NewTradeRepo creates a new TradeRepo backed by the given DB.
func NewTradeRepo(db *DB) *TradeRepo {
	return &TradeRepo{db: db}
}

// Insert stores a new trade record.
func (r *TradeRepo) Insert(ctx context.Context, trade model.Trade) error {
	const query = `
		INSERT INTO trades (id, formula_id, symbol, side, quantity, price, status, executed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Writer.ExecContext(ctx, query,
		trade.ID, trade.FormulaID, trade.Symbol, string(trade.Side),
		trade.Quantity, trade.Price, string(trade.Status), trade.ExecutedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert trade %q: %w", trade.ID, err)
	}

	return nil
}

// Get retrieves a trade by ID. Returns driven.ErrNotFound if no trade exists.
func (r *TradeRepo) Get(ctx context.Context, id string) (model.Trade, error) {
	const query = `
		SELECT id, formula_id, symbol, side, quantity, price, status, executed_at
		FROM trades
		WHERE id = ?
	`

	trade, err := scanTrade(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Trade{}, driven.ErrNotFound
	}
	if err != nil {
		return model.Trade{}, fmt.Errorf("get trade %q: %w", id, err)
	}

	return trade, nil
}

// ListByFormula returns all trades placed by the given formula, newest first.
func (r *TradeRepo) ListByFormula(ctx context.Context, formulaID string) ([]model.Trade, error) {
	const query = `
		SELECT id, formula_id, symbol, side, quantity, price, status, executed_at
		FROM trades
		WHERE formula_id = ?
		ORDER BY executed_at DESC
	`

	rows, err := r.db.Reader.QueryContext(ctx, query, formulaID)
	if err != nil {
		return nil, fmt.Errorf("list trades for formula %q: %w", formulaID, err)
	}
	defer rows.Close()

	var trades []model.Trade
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		trades = append(trades, trade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trades: %w", err)
	}

	return trades, nil
}

// UpdateStatus moves a trade to a new lifecycle status. Returns
// driven.ErrNotFound if no trade exists.
func (r *TradeRepo) UpdateStatus(ctx context.Context, id string, status model.TradeStatus) error {
	const query = `UPDATE trades SET status = ? WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("update status for trade %q: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update status for trade %q: rows affected: %w", id, err)
	}
	if affected == 0 {
		return driven.ErrNotFound
	}

	return nil
}

func scanTrade(s scanner) (model.Trade, error) {
	var trade model.Trade
	var side, status, executedAt string

	err := s.Scan(&trade.ID, &trade.FormulaID, &trade.Symbol, &side,
		&trade.Quantity, &trade.Price, &status, &executedAt)
	if err != nil {
		return model.Trade{}, err
	}

	trade.Side = model.TradeSide(side)
	trade.Status = model.TradeStatus(status)

	if trade.ExecutedAt, err = parseTime(executedAt); err != nil {
		return model.Trade{}, fmt.Errorf("parse executed_at: %w", err)
	}

	return trade, nil
}
