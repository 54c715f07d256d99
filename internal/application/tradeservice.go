package application

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/port/driven"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/validate"
)

// TradeService records trades against formulas. The symbol always comes from
// the formula, so a trade can never be recorded against a different
// instrument than the one its formula targets.
type TradeService struct {
	trades   driven.TradeStore
	formulas driven.FormulaStore
}

// NewTradeService creates a new TradeService with the required dependencies.
func NewTradeService(trades driven.TradeStore, formulas driven.FormulaStore) *TradeService {
	return &TradeService{
		trades:   trades,
		formulas: formulas,
	}
}

// Record validates and stores a new pending trade for the given formula.
func (s *TradeService) Record(ctx context.Context, formulaID string, side model.TradeSide, quantity, price float64) (model.Trade, error) {
	if !validate.TradeSide(side) {
		return model.Trade{}, fmt.Errorf("invalid trade side %q", side)
	}
	if !validate.Quantity(quantity) {
		return model.Trade{}, fmt.Errorf("invalid quantity %v", quantity)
	}
	if !validate.Price(price) {
		return model.Trade{}, fmt.Errorf("invalid price %v", price)
	}

	formula, err := s.formulas.Get(ctx, formulaID)
	if err != nil {
		return model.Trade{}, err
	}

	trade := model.Trade{
		ID:         xid.New().String(),
		FormulaID:  formula.ID,
		Symbol:     formula.Symbol,
		Side:       side,
		Quantity:   quantity,
		Price:      price,
		Status:     model.TradeStatusPending,
		ExecutedAt: time.Now().UTC(),
	}

	if err := s.trades.Insert(ctx, trade); err != nil {
		return model.Trade{}, err
	}
	return trade, nil
}

// MarkStatus moves a trade to a new lifecycle status.
func (s *TradeService) MarkStatus(ctx context.Context, id string, status model.TradeStatus) error {
	if !validate.TradeStatus(status) {
		return fmt.Errorf("invalid trade status %q", status)
	}
	return s.trades.UpdateStatus(ctx, id, status)
}

// ListByFormula returns the trade history of a formula, newest first.
func (s *TradeService) ListByFormula(ctx context.Context, formulaID string) ([]model.Trade, error) {
	return s.trades.ListByFormula(ctx, formulaID)
}
