package cli

import (
	"context"

	"shop-cli/internal/model"
	"shop-cli/internal/service"

	"github.com/rs/zerolog"
)

// ManagerMenu presents the manager's numbered actions.
type ManagerMenu struct {
	user     model.User
	products service.ProductService
	orders   service.OrderService
	prompter *Prompter
	logger   zerolog.Logger
}

// NewManagerMenu creates the manager menu for the given identity.
func NewManagerMenu(user model.User, products service.ProductService, orders service.OrderService, prompter *Prompter, logger zerolog.Logger) *ManagerMenu {
	return &ManagerMenu{
		user:     user,
		products: products,
		orders:   orders,
		prompter: prompter,
		logger:   logger.With().Str("menu", "manager").Logger(),
	}
}

// Run loops over the manager menu until the operator selects exit.
func (m *ManagerMenu) Run(ctx context.Context) error {
	for {
		m.prompter.Printf("\n\tMANAGER MENU\n")
		m.prompter.Printf("1. Pending orders\n")
		m.prompter.Printf("2. Approve order\n")
		m.prompter.Printf("3. View products\n")
		m.prompter.Printf("0. Exit\n")

		choice, err := m.prompter.Int("Choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.viewPending(ctx)
		case 2:
			err = m.approveOrder(ctx)
		case 3:
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

func (m *ManagerMenu) viewPending(ctx context.Context) error {
	orders, opErr := m.orders.ListPending(ctx)
	if opErr != nil {
		m.logger.Error().Err(opErr).Msg("list pending failed")
		m.prompter.Printf("Error: %s\n", userMessage(opErr))
		return nil
	}

	m.prompter.Printf("Pending orders:\n")
	for _, o := range orders {
		m.prompter.Printf("ID: %d | Customer: %s | Total: %s | Date: %s\n",
			o.ID, o.CustomerName, o.Total.StringFixed(2), o.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (m *ManagerMenu) approveOrder(ctx context.Context) error {
	orderID, err := m.prompter.Int64("Order ID to approve: ")
	if err != nil {
		return err
	}

	if opErr := m.orders.Approve(ctx, orderID); opErr != nil {
		m.logger.Warn().Err(opErr).Int64("order_id", orderID).Msg("approve failed")
		m.prompter.Printf("Error: %s\n", userMessage(opErr))
		return nil
	}

	m.prompter.Printf("Order approved\n")
	return nil
}
