package model

// Standard error codes for domain failures
const (
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeProductExists      = "PRODUCT_EXISTS"
	ErrCodeInvalidProduct     = "INVALID_PRODUCT"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeInsufficientStock  = "INSUFFICIENT_STOCK"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeOrderNotOwned      = "ORDER_NOT_OWNED"
	ErrCodeOrderNotPending    = "ORDER_NOT_PENDING"
	ErrCodeOrderNotApprovable = "ORDER_NOT_APPROVABLE"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrProductExists      = NewDomainError(ErrCodeProductExists, "A product with this name already exists")
	ErrInvalidProduct     = NewDomainError(ErrCodeInvalidProduct, "Product name must be non-empty and price and quantity non-negative")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrOrderNotFound      = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrOrderNotOwned      = NewDomainError(ErrCodeOrderNotOwned, "Order not found or not owned by you")
	ErrOrderNotPending    = NewDomainError(ErrCodeOrderNotPending, "Order is already settled or canceled")
	ErrOrderNotApprovable = NewDomainError(ErrCodeOrderNotApprovable, "Only processing orders can be approved")
	ErrInvalidStatus      = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
)

// InsufficientStockError reports a purchase attempt exceeding the available
// stock. Available carries the stock level seen at check time so menus can
// show it.
type InsufficientStockError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return "Insufficient stock"
}

// Code returns the machine-readable code, mirroring DomainError.
func (e *InsufficientStockError) Code() string {
	return ErrCodeInsufficientStock
}
