package service

import (
	"context"

	"shop-cli/internal/model"

	"github.com/shopspring/decimal"
)

// ProductService defines operations for catalog management.
type ProductService interface {
	// Add validates and inserts a new product.
	Add(ctx context.Context, name string, price decimal.Decimal, stock int) (*model.Product, error)

	// Update overwrites price and stock for an existing product ID.
	Update(ctx context.Context, id int64, price decimal.Decimal, stock int) error

	// List retrieves all products ordered by name.
	List(ctx context.Context) ([]model.Product, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// Create opens a new pending order for the user and returns its ID.
	Create(ctx context.Context, userID int64) (int64, error)

	// AddItem adds a stock-checked line to an order.
	AddItem(ctx context.Context, orderID, productID int64, quantity int) error

	// ListByUser retrieves the user's orders with their items, newest first.
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)

	// ListAll retrieves all orders with customer names, newest first.
	ListAll(ctx context.Context) ([]model.Order, error)

	// ListPending retrieves pending orders with customer names.
	ListPending(ctx context.Context) ([]model.Order, error)

	// SetStatus validates the status value and applies it to the order.
	SetStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	// Approve moves a processing order to completed.
	Approve(ctx context.Context, orderID int64) error

	// Pay settles a pending order owned by the user and returns a receipt.
	Pay(ctx context.Context, orderID, userID int64, method model.PaymentMethod) (*model.Receipt, error)
}
