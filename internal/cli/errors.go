package cli

import (
	"errors"
	"fmt"

	"shop-cli/internal/model"
)

// userMessage maps an operation failure to the one-line message shown to the
// operator. Domain errors carry their own wording; anything else collapses
// to a generic failure so internals never leak onto the console.
func userMessage(err error) string {
	var stockErr *model.InsufficientStockError
	if errors.As(err, &stockErr) {
		return fmt.Sprintf("Insufficient stock. Available: %d", stockErr.Available)
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return "Operation failed"
}
