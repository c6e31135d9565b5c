package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCanceled   OrderStatus = "canceled"
	StatusReturned   OrderStatus = "returned"
)

func (s OrderStatus) String() string {
	return string(s)
}

// ValidStatus reports whether s is a member of the known status set.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCanceled, StatusReturned:
		return true
	}
	return false
}

// Order represents a customer order. Total is derived: it always equals the
// sum of quantity*price over the order's items.
type Order struct {
	ID           int64           `json:"id" db:"order_id"`
	UserID       int64           `json:"userId" db:"user_id"`
	CustomerName string          `json:"customerName,omitempty" db:"-"`
	Status       OrderStatus     `json:"status" db:"status"`
	Total        decimal.Decimal `json:"total" db:"total_price"`
	Items        []OrderItem     `json:"items,omitempty" db:"-"`
	CreatedAt    time.Time       `json:"createdAt" db:"order_date"`
}

// OrderItem is one line of an order. Price is the unit price snapshot taken
// at purchase time, not the product's current price.
type OrderItem struct {
	OrderID     int64           `json:"-" db:"order_id"`
	ProductID   int64           `json:"productId" db:"product_id"`
	ProductName string          `json:"productName,omitempty" db:"-"`
	Quantity    int             `json:"quantity" db:"quantity"`
	Price       decimal.Decimal `json:"price" db:"price"`
}

// Subtotal returns quantity*price for the line.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// StatusChange is one entry of the append-only order status history.
type StatusChange struct {
	OrderID   int64       `json:"orderId" db:"order_id"`
	NewStatus OrderStatus `json:"newStatus" db:"new_status"`
	ChangedAt time.Time   `json:"changedAt" db:"changed_at"`
}

// PaymentMethod is the selector a customer picks when paying an order.
type PaymentMethod string

const (
	PaymentCard    PaymentMethod = "card"
	PaymentWallet  PaymentMethod = "wallet"
	PaymentSBP     PaymentMethod = "sbp"
	PaymentUnknown PaymentMethod = "unknown"
)

// PaymentMethodFromSelector maps the menu selector (1=card, 2=wallet, 3=sbp)
// to a payment method. Anything else maps to unknown.
func PaymentMethodFromSelector(n int) PaymentMethod {
	switch n {
	case 1:
		return PaymentCard
	case 2:
		return PaymentWallet
	case 3:
		return PaymentSBP
	default:
		return PaymentUnknown
	}
}

// Receipt summarises a successful payment. No external payment provider is
// called; the reference identifies the settlement in logs only.
type Receipt struct {
	OrderID   int64           `json:"orderId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    PaymentMethod   `json:"method"`
	Reference string          `json:"reference"`
}
