package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLineEntriesAreRequired is returned for an order without items.
	ErrLineEntriesAreRequired = errs.NewValueIsRequiredErrorWithCause(
		"items", errors.New("an order must contain at least one item"),
	)
)

// Order is the aggregate root of the ordering workflow. It owns its line
// entries and keeps the following invariants:
//   - Must have a valid unique identifier
//   - Holds at least one line entry, in the order the customer listed them
//   - Total value equals the sum of unit price × quantity over all lines
//   - Status is always one of the four valid statuses
//
// Timestamps are assigned by the store; a freshly built order has zero values
// until it is persisted and read back.
type Order struct {
	id          kernel.UUID
	lineEntries []*LineEntry
	totalValue  kernel.Money
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
	guard       guard.ConstructorGuard
}

// NewOrder builds a RECEIVED order from resolved line entries and computes its
// total once.
//
//	line, _ := order.NewLineEntry(kernel.NewUUID(), view, 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), []*order.LineEntry{line})
func NewOrder(id kernel.UUID, lineEntries []*LineEntry) (*Order, error) {
	o := &Order{
		status: Received,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setLineEntries(lineEntries),
	); err != nil {
		return nil, err
	}

	total, err := computeTotal(o.lineEntries)
	if err != nil {
		return nil, err
	}
	if total.IsGreaterThan(kernel.MaxTotal()) {
		return nil, errs.NewValueIsOutOfRangeError("totalValue", total.String(), "0.00", kernel.MaxTotal().String())
	}
	o.totalValue = total

	return o, nil
}

// RestoreOrder rebuilds a persisted order. The stored total is kept as is and
// not recomputed from the lines.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	totalValue kernel.Money,
	lineEntries []*LineEntry,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setLineEntries(lineEntries),
		o.setStatus(status),
		o.setTotalValue(totalValue),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built through one of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// LineEntries returns the lines in their original order. The slice is a copy;
// the entries themselves are immutable.
func (o *Order) LineEntries() []*LineEntry {
	lines := make([]*LineEntry, len(o.lineEntries))
	copy(lines, o.lineEntries)
	return lines
}

func (o *Order) TotalValue() kernel.Money {
	return o.totalValue
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to target. Every valid status is accepted from
// every current status, including the current one; lines and total are left
// untouched.
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.ChangeTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLineEntries(lines []*LineEntry) error {
	if len(lines) == 0 {
		return ErrLineEntriesAreRequired
	}

	var validationErrs []error
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			validationErrs = append(validationErrs, fmt.Errorf("items[%d]: %w", i, err))
		}
	}
	if err := errors.Join(validationErrs...); err != nil {
		return err
	}

	o.lineEntries = make([]*LineEntry, len(lines))
	copy(o.lineEntries, lines)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotalValue(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.totalValue = total
	return nil
}

func computeTotal(lines []*LineEntry) (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, line := range lines {
		subtotal, err := line.Subtotal()
		if err != nil {
			return kernel.Money{}, err
		}
		total = total.Add(subtotal)
	}
	return total, nil
}
