package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle; repositories
// obtained before Begin run on the shared connection pool.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. It is a no-op once the
	// transaction was committed, so it can always be deferred.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository

	// MenuItemRepository returns a repository bound to the current transaction.
	MenuItemRepository() MenuItemRepository
}
