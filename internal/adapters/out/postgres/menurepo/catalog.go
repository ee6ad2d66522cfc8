package menurepo

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

// GormMenuCatalog resolves menu items for the order workflow. It reads on the
// shared connection pool, never on a transaction, so concurrent lookups are safe.
type GormMenuCatalog struct {
	db *gorm.DB
}

func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

// Resolve yields errs.ObjectNotFoundError naming the id for unknown items.
func (c *GormMenuCatalog) Resolve(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	return findByID(ctx, c.db, id)
}
