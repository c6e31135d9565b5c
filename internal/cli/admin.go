package cli

import (
	"context"

	"shop-cli/internal/model"
	"shop-cli/internal/service"

	"github.com/rs/zerolog"
)

// AdminMenu presents the administrator's numbered actions.
type AdminMenu struct {
	user     model.User
	products service.ProductService
	orders   service.OrderService
	prompter *Prompter
	logger   zerolog.Logger
}

// NewAdminMenu creates the admin menu for the given identity.
func NewAdminMenu(user model.User, products service.ProductService, orders service.OrderService, prompter *Prompter, logger zerolog.Logger) *AdminMenu {
	return &AdminMenu{
		user:     user,
		products: products,
		orders:   orders,
		prompter: prompter,
		logger:   logger.With().Str("menu", "admin").Logger(),
	}
}

// Run loops over the admin menu until the operator selects exit.
func (m *AdminMenu) Run(ctx context.Context) error {
	for {
		m.prompter.Printf("\n\tADMIN MENU\n")
		m.prompter.Printf("1. Add product\n")
		m.prompter.Printf("2. Update product\n")
		m.prompter.Printf("3. View all orders\n")
		m.prompter.Printf("4. Change order status\n")
		m.prompter.Printf("5. View products\n")
		m.prompter.Printf("0. Exit\n")

		choice, err := m.prompter.Int("Choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.addProduct(ctx)
		case 2:
			err = m.updateProduct(ctx)
		case 3:
			err = m.viewOrders(ctx)
		case 4:
			err = m.changeOrderStatus(ctx)
		case 5:
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

func (m *AdminMenu) addProduct(ctx context.Context) error {
	name, err := m.prompter.Line("Product name: ")
	if err != nil {
		return err
	}
	price, err := m.prompter.Decimal("Price: ")
	if err != nil {
		return err
	}
	stock, err := m.prompter.Int("Quantity: ")
	if err != nil {
		return err
	}

	product, opErr := m.products.Add(ctx, name, price, stock)
	if opErr != nil {
		m.logger.Warn().Err(opErr).Str("name", name).Msg("add product failed")
		m.prompter.Printf("Error: %s\n", userMessage(opErr))
		return nil
	}

	m.prompter.Printf("Product #%d added\n", product.ID)
	return nil
}

func (m *AdminMenu) updateProduct(ctx context.Context) error {
	id, err := m.prompter.Int64("Product ID: ")
	if err != nil {
		return err
	}
	price, err := m.prompter.Decimal("New price: ")
	if err != nil {
		return err
	}
	stock, err := m.prompter.Int("New quantity: ")
	if err != nil {
		return err
	}

	if opErr := m.products.Update(ctx, id, price, stock); opErr != nil {
		m.logger.Warn().Err(opErr).Int64("product_id", id).Msg("update product failed")
		m.prompter.Printf("Error: %s\n", userMessage(opErr))
		return nil
	}

	m.prompter.Printf("Product updated\n")
	return nil
}

func (m *AdminMenu) viewOrders(ctx context.Context) error {
	orders, opErr := m.orders.ListAll(ctx)
	if opErr != nil {
		m.logger.Error().Err(opErr).Msg("list orders failed")
		m.prompter.Printf("Error: %s\n", userMessage(opErr))
		return nil
	}

	m.prompter.Printf("All orders:\n")
	for _, o := range orders {
		m.prompter.Printf("ID: %d | Customer: %s | Status: %s | Total: %s | Date: %s\n",
			o.ID, o.CustomerName, o.Status, o.Total.StringFixed(2), o.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (m *AdminMenu) changeOrderStatus(ctx context.Context) error {
	orderID, err := m.prompter.Int64("Order ID: ")
	if err != nil {
		return err
	}
	status, err := m.prompter.Line("New status (pending/processing/completed/canceled/returned): ")
	if err != nil {
		return err
	}

	if opErr := m.orders.SetStatus(ctx, orderID, model.OrderStatus(status)); opErr != nil {
		m.logger.Warn().Err(opErr).Int64("order_id", orderID).Msg("change status failed")
		m.prompter.Printf("Error: %s\n", userMessage(opErr))
		return nil
	}

	m.prompter.Printf("Status updated\n")
	return nil
}
