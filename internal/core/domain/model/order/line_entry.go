package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrLineEntryIsNotConstructed = errors.New("LineEntry must be created via NewLineEntry constructor")

// MaxQuantity is the largest quantity a single line may order.
const MaxQuantity = 1000

// MenuItemView carries the descriptive fields of the menu item a line refers
// to. It is for display only; the price of the line lives on the LineEntry.
type MenuItemView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Category    string
}

// LineEntry is one line of an order: a menu item, a quantity and the unit price
// the item had when the order was placed.
type LineEntry struct {
	id        kernel.UUID
	menuItem  MenuItemView
	quantity  int
	unitPrice kernel.Money
	guard     guard.ConstructorGuard
}

// NewLineEntry validates the line. Quantity must be at least 1.
func NewLineEntry(id kernel.UUID, menuItem MenuItemView, quantity int, unitPrice kernel.Money) (*LineEntry, error) {
	line := &LineEntry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setMenuItem(menuItem),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return line, nil
}

func (l *LineEntry) Validate() error {
	if l == nil {
		return ErrLineEntryIsNotConstructed
	}
	return l.guard.Validate(ErrLineEntryIsNotConstructed)
}

func (l *LineEntry) ID() kernel.UUID {
	return l.id
}

func (l *LineEntry) MenuItemID() kernel.UUID {
	return l.menuItem.ID
}

// MenuItem returns the display fields of the referenced menu item.
func (l *LineEntry) MenuItem() MenuItemView {
	return l.menuItem
}

func (l *LineEntry) Quantity() int {
	return l.quantity
}

// UnitPrice is the price snapshot taken at order time.
func (l *LineEntry) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns unit price × quantity.
func (l *LineEntry) Subtotal() (kernel.Money, error) {
	return l.unitPrice.MultiplyBy(l.quantity)
}

func (l *LineEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *LineEntry) setMenuItem(view MenuItemView) error {
	if err := view.ID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuItemId", err)
	}
	l.menuItem = view
	return nil
}

func (l *LineEntry) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"quantity", quantity, 1, MaxQuantity,
			fmt.Errorf("%d is not between 1 and %d", quantity, MaxQuantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *LineEntry) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if price.IsGreaterThan(kernel.MaxUnitPrice()) {
		return errs.NewValueIsOutOfRangeError("unitPrice", price.String(), "0.00", kernel.MaxUnitPrice().String())
	}
	l.unitPrice = price
	return nil
}
