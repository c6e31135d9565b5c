package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
)

// Seeds a demo catalog. Run with: go run scripts/seed_products.go
func main() {
	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		connString = "postgres://postgres:@localhost:5432/shop?sslmode=disable"
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	products := []struct {
		name  string
		price string
		stock int
	}{
		{"Desk lamp", "24.90", 40},
		{"Espresso cup", "7.50", 120},
		{"Mechanical keyboard", "89.00", 15},
		{"Notebook A5", "3.20", 300},
		{"USB-C cable", "9.99", 75},
	}

	for _, p := range products {
		_, err := conn.Exec(ctx,
			`INSERT INTO products (name, price, stock_quantity)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			p.name, p.price, p.stock,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed product %q: %v\n", p.name, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seeded %d products\n", len(products))
}
