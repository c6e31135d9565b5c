package repository

import (
	"context"
	"errors"
	"fmt"

	"shop-cli/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create inserts a pending order with total 0 and returns its generated ID.
func (r *orderRepository) Create(ctx context.Context, userID int64) (int64, error) {
	query := `
		INSERT INTO orders (user_id, status, total_price)
		VALUES ($1, $2, 0)
		RETURNING order_id
	`

	var orderID int64
	err := r.pool.QueryRow(ctx, query, userID, model.StatusPending).Scan(&orderID)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to create order")
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Int64("order_id", orderID).
		Int64("user_id", userID).
		Msg("order created")

	return orderID, nil
}

// AddItem adds a line to an order inside a single transaction. The product
// row is locked for the duration so the stock check and the decrement cannot
// be interleaved by another session.
func (r *orderRepository) AddItem(ctx context.Context, orderID, productID int64, quantity int) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				r.logger.Error().Err(rbErr).Int64("order_id", orderID).Msg("failed to rollback transaction")
			}
		}
	}()

	var exists int
	err = tx.QueryRow(ctx,
		`SELECT 1 FROM orders WHERE order_id = $1`, orderID,
	).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrOrderNotFound
		}
		return fmt.Errorf("failed to query order: %w", err)
	}

	var (
		stock int
		price decimal.Decimal
	)
	err = tx.QueryRow(ctx,
		`SELECT stock_quantity, price FROM products WHERE product_id = $1 FOR UPDATE`,
		productID,
	).Scan(&stock, &price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", productID).Msg("product not found")
			return model.ErrProductNotFound
		}
		return fmt.Errorf("failed to query product stock: %w", err)
	}

	if stock < quantity {
		r.logger.Debug().
			Int64("product_id", productID).
			Int("requested", quantity).
			Int("available", stock).
			Msg("insufficient stock")
		return &model.InsufficientStockError{
			ProductID: productID,
			Requested: quantity,
			Available: stock,
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO order_items (order_id, product_id, quantity, price)
		 VALUES ($1, $2, $3, $4)`,
		orderID, productID, quantity, price,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order item: %w", err)
	}

	// Total is recomputed from scratch, not adjusted incrementally.
	_, err = tx.Exec(ctx,
		`UPDATE orders
		 SET total_price = (
		     SELECT COALESCE(SUM(quantity * price), 0)
		     FROM order_items
		     WHERE order_id = $1
		 )
		 WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		return fmt.Errorf("failed to recompute order total: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE products SET stock_quantity = stock_quantity - $2 WHERE product_id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Debug().
		Int64("order_id", orderID).
		Int64("product_id", productID).
		Int("quantity", quantity).
		Msg("item added to order")

	return nil
}

// ListByUser retrieves a user's orders newest first, each with its items.
func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `
		SELECT order_id, user_id, status, total_price, order_date
		FROM orders
		WHERE user_id = $1
		ORDER BY order_date DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var (
		orders   []model.Order
		orderIDs []int64
		index    = make(map[int64]int)
	)
	for rows.Next() {
		var o model.Order
		err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		index[o.ID] = len(orders)
		orders = append(orders, o)
		orderIDs = append(orderIDs, o.ID)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	if len(orderIDs) == 0 {
		return []model.Order{}, nil
	}

	itemsQuery := `
		SELECT oi.order_id, oi.product_id, p.name, oi.quantity, oi.price
		FROM order_items oi
		JOIN products p ON oi.product_id = p.product_id
		WHERE oi.order_id = ANY($1)
	`

	itemRows, err := r.pool.Query(ctx, itemsQuery, orderIDs)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item model.OrderItem
		err := itemRows.Scan(&item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	if err := itemRows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return orders, nil
}

// ListAll retrieves all orders with the customer name, newest first.
func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT o.order_id, o.user_id, u.name, o.status, o.total_price, o.order_date
		FROM orders o
		JOIN users u ON o.user_id = u.user_id
		ORDER BY o.order_date DESC
	`
	return r.listJoined(ctx, query)
}

// ListPending retrieves pending orders with the customer name.
func (r *orderRepository) ListPending(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT o.order_id, o.user_id, u.name, o.status, o.total_price, o.order_date
		FROM orders o
		JOIN users u ON o.user_id = u.user_id
		WHERE o.status = 'pending'
		ORDER BY o.order_date DESC
	`
	return r.listJoined(ctx, query)
}

func (r *orderRepository) listJoined(ctx context.Context, query string) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		err := rows.Scan(&o.ID, &o.UserID, &o.CustomerName, &o.Status, &o.Total, &o.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// GetByID retrieves an order header by its ID.
func (r *orderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	query := `
		SELECT order_id, user_id, status, total_price, order_date
		FROM orders
		WHERE order_id = $1
	`

	var o model.Order
	err := r.pool.QueryRow(ctx, query, orderID).Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("order_id", orderID).Msg("order not found")
			return nil, model.ErrOrderNotFound
		}
		r.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &o, nil
}

// SetStatus records a history entry only when the stored status differs,
// then updates the order's status. Both statements run in one transaction.
func (r *orderRepository) SetStatus(ctx context.Context, orderID int64, status model.OrderStatus) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				r.logger.Error().Err(rbErr).Int64("order_id", orderID).Msg("failed to rollback transaction")
			}
		}
	}()

	// Guard against duplicate history rows: only log a change when the
	// stored status actually differs.
	_, err = tx.Exec(ctx,
		`INSERT INTO order_status_history (order_id, new_status)
		 SELECT $1, $2
		 WHERE EXISTS (
		     SELECT 1 FROM orders WHERE order_id = $1 AND status <> $2
		 )`,
		orderID, status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert status history: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE orders SET status = $2 WHERE order_id = $1`,
		orderID, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		err = model.ErrOrderNotFound
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Debug().
		Int64("order_id", orderID).
		Str("status", status.String()).
		Msg("order status updated")

	return nil
}

// Approve transitions a processing order to completed. The history guard
// checks the stored status before the update so re-approving a completed
// order does not append another history row.
func (r *orderRepository) Approve(ctx context.Context, orderID int64) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				r.logger.Error().Err(rbErr).Int64("order_id", orderID).Msg("failed to rollback transaction")
			}
		}
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO order_status_history (order_id, new_status)
		 SELECT $1, $2
		 WHERE EXISTS (
		     SELECT 1 FROM orders WHERE order_id = $1 AND status = $3
		 )`,
		orderID, model.StatusCompleted, model.StatusProcessing,
	)
	if err != nil {
		return fmt.Errorf("failed to insert status history: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE orders SET status = $2 WHERE order_id = $1 AND status = $3`,
		orderID, model.StatusCompleted, model.StatusProcessing,
	)
	if err != nil {
		return fmt.Errorf("failed to approve order: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int64("order_id", orderID).Msg("order not in processing state")
		err = model.ErrOrderNotApprovable
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Debug().Int64("order_id", orderID).Msg("order approved")

	return nil
}

// Pay verifies the order belongs to the user and is still pending, then
// transitions it to processing. Returns the amount due.
func (r *orderRepository) Pay(ctx context.Context, orderID, userID int64) (total decimal.Decimal, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return decimal.Zero, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				r.logger.Error().Err(rbErr).Int64("order_id", orderID).Msg("failed to rollback transaction")
			}
		}
	}()

	var status model.OrderStatus
	err = tx.QueryRow(ctx,
		`SELECT status, total_price FROM orders
		 WHERE order_id = $1 AND user_id = $2
		 FOR UPDATE`,
		orderID, userID,
	).Scan(&status, &total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().
				Int64("order_id", orderID).
				Int64("user_id", userID).
				Msg("order not found or not owned")
			return decimal.Zero, model.ErrOrderNotOwned
		}
		return decimal.Zero, fmt.Errorf("failed to query order: %w", err)
	}

	if status != model.StatusPending {
		r.logger.Debug().
			Int64("order_id", orderID).
			Str("status", status.String()).
			Msg("order is not pending")
		return decimal.Zero, model.ErrOrderNotPending
	}

	_, err = tx.Exec(ctx,
		`UPDATE orders SET status = $2 WHERE order_id = $1`,
		orderID, model.StatusProcessing,
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to update order status: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to commit transaction")
		return decimal.Zero, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Debug().
		Int64("order_id", orderID).
		Str("total", total.String()).
		Msg("order paid")

	return total, nil
}
