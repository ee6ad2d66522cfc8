// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuItemRepoFactory provides access to menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// OrderUoW manages transactions for order-only operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MenuItemUoW manages transactions for menu catalog operations.
	MenuItemUoW interface {
		TxManager
		MenuItemRepoFactory
	}

	// MenuItemUoWFactory creates new menu item unit of work instances.
	MenuItemUoWFactory interface {
		Create() MenuItemUoW
	}
)
