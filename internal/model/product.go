package model

import "github.com/shopspring/decimal"

// Product represents a catalog item with its current stock level.
type Product struct {
	ID    int64           `json:"id" db:"product_id"`
	Name  string          `json:"name" db:"name"`
	Price decimal.Decimal `json:"price" db:"price"`
	Stock int             `json:"stock" db:"stock_quantity"`
}
