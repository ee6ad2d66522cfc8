// Package orderrepo provides the GORM persistence of the order aggregate. An
// order is stored as one row in orders plus one row per line entry in
// order_line_entries; menu item display fields are joined in on read.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TotalValue  decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Status      string          `gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
	LineEntries []LineEntryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineEntryDTO is one order line. Position keeps the request order; the menu
// item reference is guarded by a RESTRICT foreign key.
type LineEntryDTO struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Position   int              `gorm:"type:int;not null"`
	Quantity   int              `gorm:"type:int;not null"`
	UnitPrice  decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	MenuItem   *MenuItemViewDTO `gorm:"foreignKey:MenuItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (LineEntryDTO) TableName() string {
	return "order_line_entries"
}

// MenuItemViewDTO reads the display columns of menu_items. It is only ever
// preloaded; its column definitions match the catalog's own DTO.
type MenuItemViewDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Category    string    `gorm:"type:varchar(100);not null"`
}

func (MenuItemViewDTO) TableName() string {
	return "menu_items"
}

// fromDomain maps the aggregate for insertion. MenuItem stays nil so GORM never
// writes to menu_items.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	lines := aggregate.LineEntries()
	lineDTOs := make([]LineEntryDTO, 0, len(lines))

	for i, line := range lines {
		lineDTOs = append(lineDTOs, LineEntryDTO{
			ID:         line.ID().Bytes(),
			OrderID:    orderID,
			MenuItemID: line.MenuItemID().Bytes(),
			Position:   i,
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		TotalValue:  aggregate.TotalValue().Amount(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		LineEntries: lineDTOs,
	}
}

// toDomain rebuilds the aggregate. Line entries must already be sorted by
// position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalValue)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.LineEntry, 0, len(dto.LineEntries))
	for _, lineDTO := range dto.LineEntries {
		line, lineErr := lineEntryToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, status, total, lines, dto.CreatedAt, dto.UpdatedAt)
}

func lineEntryToDomain(dto LineEntryDTO) (*order.LineEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	view := order.MenuItemView{ID: menuItemID}
	if dto.MenuItem != nil {
		view.Name = dto.MenuItem.Name
		view.Description = dto.MenuItem.Description
		view.Category = dto.MenuItem.Category
	}

	return order.NewLineEntry(id, view, dto.Quantity, unitPrice)
}
