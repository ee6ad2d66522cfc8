// Package menurepo provides the GORM persistence of menu items and the menu
// catalog used by the order workflow.
package menurepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Category    string          `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price().Amount(),
		Category:    item.Category(),
		CreatedAt:   item.CreatedAt(),
		UpdatedAt:   item.UpdatedAt(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, dto.Name, dto.Description, price, dto.Category, dto.CreatedAt, dto.UpdatedAt)
}
