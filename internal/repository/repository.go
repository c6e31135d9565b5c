package repository

import (
	"context"

	"shop-cli/internal/model"

	"github.com/shopspring/decimal"
)

// ProductRepository defines the interface for catalog data access operations.
type ProductRepository interface {
	// Create inserts a new product row and fills in its generated ID.
	Create(ctx context.Context, product *model.Product) error

	// Update overwrites price and stock for an existing product ID.
	// Updating an absent ID is a silent no-op.
	Update(ctx context.Context, id int64, price decimal.Decimal, stock int) error

	// GetAll retrieves all products ordered by name.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)
}

// OrderRepository defines the interface for order data access operations.
// Operations that touch multiple rows run as a single transaction so a
// failed check never partially mutates state.
type OrderRepository interface {
	// Create inserts a pending order with total 0 and returns its generated ID.
	Create(ctx context.Context, userID int64) (int64, error)

	// AddItem checks stock, inserts the line with a price snapshot,
	// recomputes the order total and decrements the product's stock,
	// all inside one transaction holding a lock on the product row.
	AddItem(ctx context.Context, orderID, productID int64, quantity int) error

	// ListByUser retrieves a user's orders newest first, each with its
	// line items joined to product names.
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)

	// ListAll retrieves all orders with the customer name, newest first.
	ListAll(ctx context.Context) ([]model.Order, error)

	// ListPending retrieves pending orders with the customer name.
	ListPending(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves an order header by its ID.
	GetByID(ctx context.Context, orderID int64) (*model.Order, error)

	// SetStatus records a history entry when the stored status differs,
	// then updates the order's status.
	SetStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	// Approve transitions a processing order to completed and records the
	// change in the status history.
	Approve(ctx context.Context, orderID int64) error

	// Pay verifies ownership and pending state, transitions the order to
	// processing and returns the amount due.
	Pay(ctx context.Context, orderID, userID int64) (decimal.Decimal, error)
}
