package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/port/driven"
)

func TestFormulaRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormulaRepo(db)
	ctx := context.Background()

	user := createTestUser(t, db, "trader@example.com")
	f := createTestFormula(t, db, user.ID, "formula-1")

	got, err := repo.Get(ctx, "formula-1")
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, f.Name, got.Name)
	assert.Equal(t, "AAPL", got.Symbol)
	assert.Equal(t, model.SignalBuy, got.Signal)
	assert.Equal(t, model.Timeframe1h, got.Timeframe)
	assert.Equal(t, model.ExecutionModePaper, got.Mode)
	assert.Equal(t, f.Quantity, got.Quantity)
	assert.True(t, got.Enabled)
	assert.True(t, got.CreatedAt.Equal(f.CreatedAt), "created_at round-trip")
}

func TestFormulaRepo_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormulaRepo(db)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, driven.ErrNotFound)
}

func TestFormulaRepo_ListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormulaRepo(db)
	ctx := context.Background()

	user := createTestUser(t, db, "trader@example.com")
	other := createTestUser(t, db, "other@example.com")

	now := time.Now().UTC().Truncate(time.Second)
	for _, f := range []model.Formula{
		{ID: "f-2", UserID: user.ID, Name: "macd cross", Symbol: "MSFT", Signal: model.SignalSell,
			Timeframe: model.Timeframe5m, Mode: model.ExecutionModeLive, Quantity: 5, CreatedAt: now, UpdatedAt: now},
		{ID: "f-1", UserID: user.ID, Name: "golden cross", Symbol: "AAPL", Signal: model.SignalBuy,
			Timeframe: model.Timeframe1h, Mode: model.ExecutionModePaper, Quantity: 10, Enabled: true, CreatedAt: now, UpdatedAt: now},
		{ID: "f-3", UserID: other.ID, Name: "rsi dip", Symbol: "BTC-USD", Signal: model.SignalBuy,
			Timeframe: model.Timeframe15m, Mode: model.ExecutionModePaper, Quantity: 0.5, CreatedAt: now, UpdatedAt: now},
	} {
		require.NoError(t, repo.Create(ctx, f))
	}

	formulas, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, formulas, 2)
	// Ordered by name.
	assert.Equal(t, "golden cross", formulas[0].Name)
	assert.Equal(t, "macd cross", formulas[1].Name)
}

func TestFormulaRepo_ListEnabled(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormulaRepo(db)
	ctx := context.Background()

	user := createTestUser(t, db, "trader@example.com")
	createTestFormula(t, db, user.ID, "f-enabled")

	now := time.Now().UTC().Truncate(time.Second)
	disabled := model.Formula{
		ID: "f-disabled", UserID: user.ID, Name: "dormant", Symbol: "MSFT",
		Signal: model.SignalHold, Timeframe: model.Timeframe1d, Mode: model.ExecutionModePaper,
		Quantity: 1, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, disabled))

	formulas, err := repo.ListEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, formulas, 1)
	assert.Equal(t, "f-enabled", formulas[0].ID)
}

func TestFormulaRepo_SetEnabled(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormulaRepo(db)
	ctx := context.Background()

	user := createTestUser(t, db, "trader@example.com")
	createTestFormula(t, db, user.ID, "formula-1")

	require.NoError(t, repo.SetEnabled(ctx, "formula-1", false))

	got, err := repo.Get(ctx, "formula-1")
	require.NoError(t, err)
	assert.False(t, got.Enabled)

	require.NoError(t, repo.SetEnabled(ctx, "formula-1", true))

	got, err = repo.Get(ctx, "formula-1")
	require.NoError(t, err)
	assert.True(t, got.Enabled)
}

func TestFormulaRepo_SetEnabledMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormulaRepo(db)

	err := repo.SetEnabled(context.Background(), "missing", true)
	assert.ErrorIs(t, err, driven.ErrNotFound)
}

func TestFormulaRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormulaRepo(db)
	ctx := context.Background()

	user := createTestUser(t, db, "trader@example.com")
	createTestFormula(t, db, user.ID, "formula-1")

	require.NoError(t, repo.Delete(ctx, "formula-1"))

	_, err := repo.Get(ctx, "formula-1")
	assert.ErrorIs(t, err, driven.ErrNotFound)

	assert.NoError(t, repo.Delete(ctx, "formula-1"), "deleting an absent formula should not error")
}
