package service

import (
	"context"
	"fmt"

	"shop-cli/internal/model"
	"shop-cli/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	repo   repository.OrderRepository
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		repo:   repo,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// Create opens a new pending order for the user and returns its ID.
func (s *orderService) Create(ctx context.Context, userID int64) (int64, error) {
	orderID, err := s.repo.Create(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", orderID).
		Int64("user_id", userID).
		Msg("order created")

	return orderID, nil
}

// AddItem adds a stock-checked line to an order.
func (s *orderService) AddItem(ctx context.Context, orderID, productID int64, quantity int) error {
	if quantity <= 0 {
		s.logger.Warn().
			Int64("order_id", orderID).
			Int64("product_id", productID).
			Int("quantity", quantity).
			Msg("invalid quantity")
		return model.ErrInvalidQuantity
	}

	if err := s.repo.AddItem(ctx, orderID, productID, quantity); err != nil {
		return err
	}

	s.logger.Info().
		Int64("order_id", orderID).
		Int64("product_id", productID).
		Int("quantity", quantity).
		Msg("item added")

	return nil
}

// ListByUser retrieves the user's orders with their items, newest first.
func (s *orderService) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListAll retrieves all orders with customer names, newest first.
func (s *orderService) ListAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListPending retrieves pending orders with customer names.
func (s *orderService) ListPending(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending orders: %w", err)
	}
	return orders, nil
}

// SetStatus validates the status value against the known set before
// applying it. The repository itself stays permissive.
func (s *orderService) SetStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if !model.ValidStatus(status) {
		s.logger.Warn().
			Int64("order_id", orderID).
			Str("status", status.String()).
			Msg("unknown status value")
		return model.ErrInvalidStatus
	}

	if err := s.repo.SetStatus(ctx, orderID, status); err != nil {
		return err
	}

	s.logger.Info().
		Int64("order_id", orderID).
		Str("status", status.String()).
		Msg("status changed")

	return nil
}

// Approve moves a processing order to completed.
func (s *orderService) Approve(ctx context.Context, orderID int64) error {
	if err := s.repo.Approve(ctx, orderID); err != nil {
		return err
	}

	s.logger.Info().Int64("order_id", orderID).Msg("order approved")

	return nil
}

// Pay settles a pending order owned by the user. No payment provider is
// called; the receipt reference only identifies the settlement in logs.
func (s *orderService) Pay(ctx context.Context, orderID, userID int64, method model.PaymentMethod) (*model.Receipt, error) {
	total, err := s.repo.Pay(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	receipt := &model.Receipt{
		OrderID:   orderID,
		Amount:    total,
		Method:    method,
		Reference: uuid.NewString(),
	}

	s.logger.Info().
		Int64("order_id", orderID).
		Int64("user_id", userID).
		Str("method", string(method)).
		Str("amount", total.String()).
		Str("reference", receipt.Reference).
		Msg("payment accepted")

	return receipt, nil
}
