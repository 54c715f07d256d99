package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/port/driven"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/validate"
)

// FormulaService manages trading formulas. Every field is validated before
// it reaches the store.
type FormulaService struct {
	formulas driven.FormulaStore
}

// NewFormulaService creates a new FormulaService backed by the given store.
func NewFormulaService(formulas driven.FormulaStore) *FormulaService {
	return &FormulaService{formulas: formulas}
}

// Create validates and stores a new formula. New formulas start disabled.
func (s *FormulaService) Create(ctx context.Context, userID int64, name, symbol string, signal model.Signal, timeframe model.Timeframe, mode model.ExecutionMode, quantity float64) (model.Formula, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Formula{}, errors.New("formula name is required")
	}
	if !validate.Symbol(symbol) {
		return model.Formula{}, fmt.Errorf("invalid symbol %q", symbol)
	}
	if !validate.Signal(signal) {
		return model.Formula{}, fmt.Errorf("invalid signal %q", signal)
	}
	if !validate.Timeframe(timeframe) {
		return model.Formula{}, fmt.Errorf("invalid timeframe %q", timeframe)
	}
	if !validate.ExecutionMode(mode) {
		return model.Formula{}, fmt.Errorf("invalid execution mode %q", mode)
	}
	if !validate.Quantity(quantity) {
		return model.Formula{}, fmt.Errorf("invalid quantity %v", quantity)
	}

	now := time.Now().UTC()
	f := model.Formula{
		ID:        xid.New().String(),
		UserID:    userID,
		Name:      name,
		Symbol:    symbol,
		Signal:    signal,
		Timeframe: timeframe,
		Mode:      mode,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.formulas.Create(ctx, f); err != nil {
		return model.Formula{}, err
	}
	return f, nil
}

// Get retrieves a formula by ID.
func (s *FormulaService) Get(ctx context.Context, id string) (model.Formula, error) {
	return s.formulas.Get(ctx, id)
}

// ListByUser returns the user's formulas.
func (s *FormulaService) ListByUser(ctx context.Context, userID int64) ([]model.Formula, error) {
	return s.formulas.ListByUser(ctx, userID)
}

// ListEnabled returns all formulas currently eligible for evaluation.
func (s *FormulaService) ListEnabled(ctx context.Context) ([]model.Formula, error) {
	return s.formulas.ListEnabled(ctx)
}

// SetEnabled enables or disables a formula.
func (s *FormulaService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	return s.formulas.SetEnabled(ctx, id, enabled)
}

// Delete removes a formula and its trade history.
func (s *FormulaService) Delete(ctx context.Context, id string) error {
	return s.formulas.Delete(ctx, id)
}
