package menu

import (
	"errors"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrNameIsRequired        = errs.NewValueIsRequiredError("name")
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	ErrCategoryIsRequired    = errs.NewValueIsRequiredError("category")
	ErrPriceIsNotPositive    = errs.NewValueIsInvalidErrorWithCause("price", errors.New("price must be greater than 0"))

	// ErrMenuItemIsNotConstructed is returned when a MenuItem was not built by
	// NewMenuItem or RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem is a dish offered by the restaurant.
//
// Timestamps are owned by the store: they are zero on a freshly built item and
// filled in when the item is restored from persistence.
type MenuItem struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	createdAt   time.Time
	updatedAt   time.Time
	guard       guard.ConstructorGuard
}

// Changes describes a partial update; nil fields stay as they are.
type Changes struct {
	Name        *string
	Description *string
	Price       *kernel.Money
	Category    *string
}

// NewMenuItem validates every attribute and reports all failures at once.
//
//	price, _ := kernel.MoneyFromString("35.90")
//	item, err := menu.NewMenuItem(kernel.NewUUID(), "Pizza Margherita",
//	    "Tomato sauce, mozzarella and basil", price, "Pizza")
func NewMenuItem(id kernel.UUID, name, description string, price kernel.Money, category string) (*MenuItem, error) {
	item := &MenuItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setDescription(description),
		item.setPrice(price),
		item.setCategory(category),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem rebuilds a persisted item, timestamps included.
func RestoreMenuItem(
	id kernel.UUID,
	name, description string,
	price kernel.Money,
	category string,
	createdAt, updatedAt time.Time,
) (*MenuItem, error) {
	item, err := NewMenuItem(id, name, description, price, category)
	if err != nil {
		return nil, err
	}

	item.createdAt = createdAt
	item.updatedAt = updatedAt
	return item, nil
}

// Validate ensures the item was built through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// IsEqual compares items by identity.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the current unit price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

func (m *MenuItem) Category() string {
	return m.category
}

func (m *MenuItem) CreatedAt() time.Time {
	return m.createdAt
}

func (m *MenuItem) UpdatedAt() time.Time {
	return m.updatedAt
}

// Apply validates the present fields of changes and applies them together:
// when any field is invalid the item is left untouched.
func (m *MenuItem) Apply(changes Changes) error {
	next := *m

	var joined []error
	if changes.Name != nil {
		joined = append(joined, next.setName(*changes.Name))
	}
	if changes.Description != nil {
		joined = append(joined, next.setDescription(*changes.Description))
	}
	if changes.Price != nil {
		joined = append(joined, next.setPrice(*changes.Price))
	}
	if changes.Category != nil {
		joined = append(joined, next.setCategory(*changes.Category))
	}
	if err := errors.Join(joined...); err != nil {
		return err
	}

	*m = next
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrDescriptionIsRequired
	}
	m.description = description
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return ErrPriceIsNotPositive
	}
	if price.IsGreaterThan(kernel.MaxUnitPrice()) {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0.01", kernel.MaxUnitPrice().String())
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return ErrCategoryIsRequired
	}
	m.category = category
	return nil
}
