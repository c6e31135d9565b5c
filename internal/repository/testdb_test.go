package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a PostgreSQL container, applies the schema and seeds
// the fixed role users. The cleanup function terminates the container.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	cleanup := func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return pool, cleanup
}

// createSchema mirrors the shipped migrations plus the extra customer used
// by ownership scenarios.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS users (
			user_id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'customer'
		);

		CREATE TABLE IF NOT EXISTS products (
			product_id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			price DECIMAL(10, 2) NOT NULL CHECK (price >= 0),
			stock_quantity INTEGER NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0)
		);

		CREATE TABLE IF NOT EXISTS orders (
			order_id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(user_id),
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			total_price DECIMAL(10, 2) NOT NULL DEFAULT 0 CHECK (total_price >= 0),
			order_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS order_items (
			order_id BIGINT NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
			product_id BIGINT NOT NULL REFERENCES products(product_id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price DECIMAL(10, 2) NOT NULL CHECK (price >= 0)
		);

		CREATE TABLE IF NOT EXISTS order_status_history (
			order_id BIGINT NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
			new_status VARCHAR(20) NOT NULL,
			changed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		INSERT INTO users (user_id, name, role) VALUES
			(1, 'Admin', 'admin'),
			(2, 'Manager', 'manager'),
			(3, 'Customer', 'customer'),
			(7, 'Second Customer', 'customer');
		SELECT setval('users_user_id_seq', 7);
	`

	_, err := pool.Exec(ctx, schema)
	require.NoError(t, err)
}

// seedProduct inserts one product and returns its generated ID.
func seedProduct(t *testing.T, pool *pgxpool.Pool, name, price string, stock int) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO products (name, price, stock_quantity)
		 VALUES ($1, $2, $3) RETURNING product_id`,
		name, price, stock,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

// historyCount returns the number of history rows for an order and status.
func historyCount(t *testing.T, pool *pgxpool.Pool, orderID int64, status string) int {
	t.Helper()

	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM order_status_history WHERE order_id = $1 AND new_status = $2`,
		orderID, status,
	).Scan(&count)
	require.NoError(t, err)

	return count
}

// currentStock returns the product's stock level.
func currentStock(t *testing.T, pool *pgxpool.Pool, productID int64) int {
	t.Helper()

	var stock int
	err := pool.QueryRow(context.Background(),
		`SELECT stock_quantity FROM products WHERE product_id = $1`, productID,
	).Scan(&stock)
	require.NoError(t, err)

	return stock
}
