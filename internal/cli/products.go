package cli

import (
	"context"

	"shop-cli/internal/service"
)

// showProducts prints the full catalog. Shared by every role menu.
func showProducts(ctx context.Context, products service.ProductService, prompter *Prompter) error {
	list, err := products.List(ctx)
	if err != nil {
		prompter.Printf("Error: %s\n", userMessage(err))
		return nil
	}

	prompter.Printf("Product catalog:\n")
	for _, p := range list {
		prompter.Printf("ID: %d | %s | Price: %s | In stock: %d\n",
			p.ID, p.Name, p.Price.StringFixed(2), p.Stock)
	}
	return nil
}
