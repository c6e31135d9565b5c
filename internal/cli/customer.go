package cli

import (
	"context"

	"shop-cli/internal/model"
	"shop-cli/internal/service"

	"github.com/rs/zerolog"
)

// CustomerMenu presents the customer's numbered actions.
type CustomerMenu struct {
	user     model.User
	products service.ProductService
	orders   service.OrderService
	prompter *Prompter
	logger   zerolog.Logger
}

// NewCustomerMenu creates the customer menu for the given identity.
func NewCustomerMenu(user model.User, products service.ProductService, orders service.OrderService, prompter *Prompter, logger zerolog.Logger) *CustomerMenu {
	return &CustomerMenu{
		user:     user,
		products: products,
		orders:   orders,
		prompter: prompter,
		logger:   logger.With().Str("menu", "customer").Logger(),
	}
}

// Run loops over the customer menu until the operator selects exit.
func (m *CustomerMenu) Run(ctx context.Context) error {
	for {
		m.prompter.Printf("\n\tCUSTOMER MENU\n")
		m.prompter.Printf("1. Create order\n")
		m.prompter.Printf("2. My orders\n")
		m.prompter.Printf("3. Pay order\n")
		m.prompter.Printf("4. View products\n")
		m.prompter.Printf("0. Exit\n")

		choice, err := m.prompter.Int("Choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.createOrder(ctx)
		case 2:
			err = m.viewOrders(ctx)
		case 3:
			err = m.payOrder(ctx)
		case 4:
			err = showProducts(ctx, m.products, m.prompter)
		case 0:
			m.prompter.Printf("Logging out\n")
			return nil
		default:
			m.prompter.Printf("Invalid choice\n")
		}

		if err != nil {
			return err
		}
	}
}

// createOrder opens a pending order, then loops adding stock-checked items.
// A failed item never partially mutates the order.
func (m *CustomerMenu) createOrder(ctx context.Context) error {
	orderID, opErr := m.orders.Create(ctx, m.user.ID)
	if opErr != nil {
		m.logger.Error().Err(opErr).Msg("create order failed")
		m.prompter.Printf("Error: %s\n", userMessage(opErr))
		return nil
	}

	m.prompter.Printf("Order #%d created\n", orderID)

	for {
		more, err := m.prompter.YesNo("Add an item? (y/n): ")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		productID, err := m.prompter.Int64("Product ID: ")
		if err != nil {
			return err
		}
		quantity, err := m.prompter.Int("Quantity: ")
		if err != nil {
			return err
		}

		if opErr := m.orders.AddItem(ctx, orderID, productID, quantity); opErr != nil {
			m.logger.Warn().
				Err(opErr).
				Int64("order_id", orderID).
				Int64("product_id", productID).
				Msg("add item failed")
			m.prompter.Printf("Error: %s\n", userMessage(opErr))
			continue
		}

		m.prompter.Printf("Item added to order\n")
	}
}

func (m *CustomerMenu) viewOrders(ctx context.Context) error {
	orders, opErr := m.orders.ListByUser(ctx, m.user.ID)
	if opErr != nil {
		m.logger.Error().Err(opErr).Msg("list orders failed")
		m.prompter.Printf("Error: %s\n", userMessage(opErr))
		return nil
	}

	m.prompter.Printf("Your orders:\n")
	for _, o := range orders {
		m.prompter.Printf("Order #%d | Status: %s | Total: %s | Date: %s\n",
			o.ID, o.Status, o.Total.StringFixed(2), o.CreatedAt.Format("2006-01-02 15:04"))
		for _, item := range o.Items {
			m.prompter.Printf("  - %s x%d = %s\n",
				item.ProductName, item.Quantity, item.Subtotal().StringFixed(2))
		}
	}
	return nil
}

func (m *CustomerMenu) payOrder(ctx context.Context) error {
	orderID, err := m.prompter.Int64("Order ID to pay: ")
	if err != nil {
		return err
	}

	m.prompter.Printf("Select payment method:\n")
	m.prompter.Printf("1. Card\n2. Wallet\n3. SBP\n")
	selector, err := m.prompter.Int("Method: ")
	if err != nil {
		return err
	}
	method := model.PaymentMethodFromSelector(selector)

	receipt, opErr := m.orders.Pay(ctx, orderID, m.user.ID, method)
	if opErr != nil {
		m.logger.Warn().Err(opErr).Int64("order_id", orderID).Msg("pay failed")
		m.prompter.Printf("Error: %s\n", userMessage(opErr))
		return nil
	}

	m.prompter.Printf("Payment by %s for %s accepted (ref %s)\n",
		receipt.Method, receipt.Amount.StringFixed(2), receipt.Reference)
	return nil
}
