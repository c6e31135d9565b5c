package service

import (
	"context"
	"fmt"
	"strings"

	"shop-cli/internal/model"
	"shop-cli/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// productService implements ProductService.
type productService struct {
	repo   repository.ProductRepository
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// Add validates and inserts a new product.
func (s *productService) Add(ctx context.Context, name string, price decimal.Decimal, stock int) (*model.Product, error) {
	if strings.TrimSpace(name) == "" || price.IsNegative() || stock < 0 {
		s.logger.Warn().
			Str("name", name).
			Str("price", price.String()).
			Int("stock", stock).
			Msg("invalid product input")
		return nil, model.ErrInvalidProduct
	}

	product := &model.Product{
		Name:  strings.TrimSpace(name),
		Price: price,
		Stock: stock,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("name", product.Name).
		Msg("product added")

	return product, nil
}

// Update overwrites price and stock for an existing product ID. An unknown
// ID passes through silently, matching the admin menu's contract.
func (s *productService) Update(ctx context.Context, id int64, price decimal.Decimal, stock int) error {
	if price.IsNegative() || stock < 0 {
		return model.ErrInvalidProduct
	}

	if err := s.repo.Update(ctx, id, price, stock); err != nil {
		return err
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")

	return nil
}

// List retrieves all products ordered by name.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
