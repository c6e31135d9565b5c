package repository

import (
	"context"
	"testing"

	"shop-cli/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_Create(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	orderID, err := repo.Create(ctx, 3)

	require.NoError(t, err)
	assert.Greater(t, orderID, int64(0))

	order, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.True(t, order.Total.IsZero())
	assert.Equal(t, int64(3), order.UserID)
}

func TestOrderRepository_AddItem_UpdatesTotalAndStock(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	productID := seedProduct(t, pool, "Widget", "50.00", 10)

	orderID, err := repo.Create(ctx, 7)
	require.NoError(t, err)

	err = repo.AddItem(ctx, orderID, productID, 2)
	require.NoError(t, err)

	order, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(100)),
		"expected total 100, got %s", order.Total)
	assert.Equal(t, 8, currentStock(t, pool, productID))
}

func TestOrderRepository_AddItem_TotalIsSumOverAllItems(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	widgetID := seedProduct(t, pool, "Widget", "50.00", 10)
	gadgetID := seedProduct(t, pool, "Gadget", "19.99", 5)

	orderID, err := repo.Create(ctx, 3)
	require.NoError(t, err)

	require.NoError(t, repo.AddItem(ctx, orderID, widgetID, 2))
	require.NoError(t, repo.AddItem(ctx, orderID, gadgetID, 3))

	order, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	// 2*50.00 + 3*19.99
	assert.True(t, order.Total.Equal(decimal.RequireFromString("159.97")),
		"expected total 159.97, got %s", order.Total)
}

func TestOrderRepository_AddItem_PriceSnapshotSurvivesRepricing(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	orderRepo := NewOrderRepository(pool, zerolog.Nop())
	productRepo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	productID := seedProduct(t, pool, "Widget", "50.00", 10)

	orderID, err := orderRepo.Create(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, orderRepo.AddItem(ctx, orderID, productID, 1))

	// Reprice after purchase; the order keeps the old price.
	require.NoError(t, productRepo.Update(ctx, productID, decimal.RequireFromString("99.00"), 9))

	orders, err := orderRepo.ListByUser(ctx, 3)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.True(t, orders[0].Items[0].Price.Equal(decimal.RequireFromString("50.00")))
}

func TestOrderRepository_AddItem_InsufficientStock(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	productID := seedProduct(t, pool, "Widget", "50.00", 3)

	orderID, err := repo.Create(ctx, 3)
	require.NoError(t, err)

	err = repo.AddItem(ctx, orderID, productID, 5)

	var stockErr *model.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)

	// Nothing was mutated.
	order, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, order.Total.IsZero())
	assert.Equal(t, 3, currentStock(t, pool, productID))
}

func TestOrderRepository_AddItem_ProductNotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	orderID, err := repo.Create(ctx, 3)
	require.NoError(t, err)

	err = repo.AddItem(ctx, orderID, 9999, 1)

	assert.ErrorIs(t, err, model.ErrProductNotFound)

	order, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, order.Total.IsZero())
}

func TestOrderRepository_AddItem_OrderNotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	productID := seedProduct(t, pool, "Widget", "50.00", 10)

	err := repo.AddItem(ctx, 9999, productID, 1)

	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	assert.Equal(t, 10, currentStock(t, pool, productID))
}

func TestOrderRepository_ListByUser_NewestFirstWithItems(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	productID := seedProduct(t, pool, "Widget", "10.00", 100)

	first, err := repo.Create(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, repo.AddItem(ctx, first, productID, 1))

	second, err := repo.Create(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, repo.AddItem(ctx, second, productID, 2))

	// Another user's order must not appear.
	_, err = repo.Create(ctx, 7)
	require.NoError(t, err)

	orders, err := repo.ListByUser(ctx, 3)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second, orders[0].ID)
	assert.Equal(t, first, orders[1].ID)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Widget", orders[0].Items[0].ProductName)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
}

func TestOrderRepository_ListAll_IncludesCustomerName(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	_, err := repo.Create(ctx, 3)
	require.NoError(t, err)
	_, err = repo.Create(ctx, 7)
	require.NoError(t, err)

	orders, err := repo.ListAll(ctx)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	names := []string{orders[0].CustomerName, orders[1].CustomerName}
	assert.Contains(t, names, "Customer")
	assert.Contains(t, names, "Second Customer")
}

func TestOrderRepository_ListPending_FiltersByStatus(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	pending, err := repo.Create(ctx, 3)
	require.NoError(t, err)

	settled, err := repo.Create(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, repo.SetStatus(ctx, settled, model.StatusProcessing))

	orders, err := repo.ListPending(ctx)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, pending, orders[0].ID)
}

func TestOrderRepository_SetStatus_WritesHistoryOnce(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	orderID, err := repo.Create(ctx, 3)
	require.NoError(t, err)

	require.NoError(t, repo.SetStatus(ctx, orderID, model.StatusCanceled))
	// Same status again: no new history row.
	require.NoError(t, repo.SetStatus(ctx, orderID, model.StatusCanceled))

	order, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCanceled, order.Status)
	assert.Equal(t, 1, historyCount(t, pool, orderID, "canceled"))
}

func TestOrderRepository_SetStatus_OrderNotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	err := repo.SetStatus(ctx, 9999, model.StatusCanceled)

	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestOrderRepository_Approve_ProcessingOnly(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	orderID, err := repo.Create(ctx, 3)
	require.NoError(t, err)

	// Pending orders cannot be approved.
	assert.ErrorIs(t, repo.Approve(ctx, orderID), model.ErrOrderNotApprovable)

	require.NoError(t, repo.SetStatus(ctx, orderID, model.StatusProcessing))
	require.NoError(t, repo.Approve(ctx, orderID))

	order, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, order.Status)
	assert.Equal(t, 1, historyCount(t, pool, orderID, "completed"))

	// Re-approving a completed order fails and leaves one history row.
	assert.ErrorIs(t, repo.Approve(ctx, orderID), model.ErrOrderNotApprovable)
	assert.Equal(t, 1, historyCount(t, pool, orderID, "completed"))
}

func TestOrderRepository_Pay_Success(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	productID := seedProduct(t, pool, "Widget", "50.00", 10)

	orderID, err := repo.Create(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, repo.AddItem(ctx, orderID, productID, 2))

	total, err := repo.Pay(ctx, orderID, 3)

	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(100)))

	order, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusProcessing, order.Status)
}

func TestOrderRepository_Pay_NotOwned(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	orderID, err := repo.Create(ctx, 3)
	require.NoError(t, err)

	_, err = repo.Pay(ctx, orderID, 7)

	assert.ErrorIs(t, err, model.ErrOrderNotOwned)

	order, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, order.Status)
}

func TestOrderRepository_Pay_AlreadySettled(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	orderID, err := repo.Create(ctx, 3)
	require.NoError(t, err)

	_, err = repo.Pay(ctx, orderID, 3)
	require.NoError(t, err)

	_, err = repo.Pay(ctx, orderID, 3)

	assert.ErrorIs(t, err, model.ErrOrderNotPending)
}
