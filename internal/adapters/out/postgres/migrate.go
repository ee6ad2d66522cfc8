package postgres

import (
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or upgrades the schema. menu_items comes first so the
// foreign keys of order_line_entries can reference it.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineEntryDTO{},
	)
}
