package main

import (
	"context"
	"fmt"
	"os"

	"shop-cli/internal/cli"
	"shop-cli/internal/config"
	"shop-cli/internal/database"
	"shop-cli/internal/repository"
	"shop-cli/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting shop console")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool; failure here is fatal.
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Apply pending schema migrations
	if err := database.Migrate(cfg.Database, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)

	// Run the interactive session over stdin/stdout
	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	session := cli.NewSession(productService, orderService, prompter, logger)

	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("session error: %w", err)
	}

	logger.Info().Msg("shop console exited")

	return nil
}
