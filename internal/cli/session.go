package cli

import (
	"context"
	"errors"
	"io"

	"shop-cli/internal/model"
	"shop-cli/internal/service"

	"github.com/rs/zerolog"
)

// menuRunner runs one role's menu to completion for the given identity.
type menuRunner func(ctx context.Context, user model.User) error

// Session is the top-level loop: it prompts for a role, constructs that
// role's menu with its fixed identity and runs it until the operator logs
// out, then returns to role selection. Dispatch is a lookup on the role tag.
type Session struct {
	products service.ProductService
	orders   service.OrderService
	prompter *Prompter
	logger   zerolog.Logger
	menus    map[model.Role]menuRunner
}

// NewSession creates the session loop over the given services and prompter.
func NewSession(products service.ProductService, orders service.OrderService, prompter *Prompter, logger zerolog.Logger) *Session {
	s := &Session{
		products: products,
		orders:   orders,
		prompter: prompter,
		logger:   logger.With().Str("component", "session").Logger(),
	}

	s.menus = map[model.Role]menuRunner{
		model.RoleAdmin: func(ctx context.Context, user model.User) error {
			return NewAdminMenu(user, s.products, s.orders, s.prompter, s.logger).Run(ctx)
		},
		model.RoleManager: func(ctx context.Context, user model.User) error {
			return NewManagerMenu(user, s.products, s.orders, s.prompter, s.logger).Run(ctx)
		},
		model.RoleCustomer: func(ctx context.Context, user model.User) error {
			return NewCustomerMenu(user, s.products, s.orders, s.prompter, s.logger).Run(ctx)
		},
	}

	return s
}

var selectorRoles = map[int]model.Role{
	1: model.RoleAdmin,
	2: model.RoleManager,
	3: model.RoleCustomer,
}

// Run drives role selection until the operator exits or input ends.
func (s *Session) Run(ctx context.Context) error {
	for {
		s.prompter.Printf("\n\tONLINE SHOP\n")
		s.prompter.Printf("1. Log in as Admin\n")
		s.prompter.Printf("2. Log in as Manager\n")
		s.prompter.Printf("3. Log in as Customer\n")
		s.prompter.Printf("0. Exit\n")

		choice, err := s.prompter.Int("Choice: ")
		if err != nil {
			// Treat exhausted input like an explicit exit.
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if choice == 0 {
			s.prompter.Printf("Goodbye!\n")
			return nil
		}

		role, ok := selectorRoles[choice]
		if !ok {
			s.prompter.Printf("Invalid choice\n")
			continue
		}

		user := model.DefaultIdentities[role]
		s.logger.Info().
			Str("role", string(role)).
			Int64("user_id", user.ID).
			Msg("role selected")

		if err := s.menus[role](ctx, user); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
