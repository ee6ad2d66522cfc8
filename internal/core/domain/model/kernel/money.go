package kernel

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// moneyPlaces is the currency precision of every stored amount.
const moneyPlaces = 2

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, MoneyFromString or MoneyFromFloat")

// Storage limits: unit prices fit numeric(10,2), order totals numeric(19,2).
var (
	maxUnitPrice = decimal.RequireFromString("99999999.99")
	maxTotal     = decimal.RequireFromString("99999999999999999.99")
)

// Money is a non-negative amount backed by an exact decimal with at most two
// places, so sums and products never drift the way float64 arithmetic does.
//
//	price, _ := kernel.MoneyFromString("35.90")
//	line, _ := price.MultiplyBy(2)   // 71.80
//	total := line.Add(other)
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// ZeroMoney returns a valid amount of 0.00, the neutral element of Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// NewMoney rejects negative values and amounts with more than two decimal
// places; nothing is rounded.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if !amount.Equal(amount.Round(moneyPlaces)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), moneyPlaces),
		)
	}
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.StringFixed(moneyPlaces), "0.00", "unbounded")
	}

	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MaxUnitPrice is the largest price a menu item or order line may carry.
func MaxUnitPrice() Money {
	return Money{amount: maxUnitPrice, guard: guard.NewConstructorGuard()}
}

// MaxTotal is the largest order total that can be stored.
func MaxTotal() Money {
	return Money{amount: maxTotal, guard: guard.NewConstructorGuard()}
}

// MoneyFromString parses a decimal literal such as "35.90".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MoneyFromFloat converts a JSON number. The float is read through its
// shortest decimal representation, so 35.9 becomes exactly 35.90.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// MultiplyBy returns the amount times quantity; quantity must not be negative.
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsGreaterThan reports whether m is strictly larger than other.
func (m Money) IsGreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual compares amounts numerically, so 71.8 equals 71.80.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Float64 is meant for display only (JSON numbers); arithmetic stays on Amount.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// String renders the amount with two decimals, e.g. "100.30".
func (m Money) String() string {
	return m.amount.StringFixed(moneyPlaces)
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	if err := m.guard.Validate(ErrMoneyIsNotConstructed); err != nil {
		return err
	}
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", m.String()))
	}
	return nil
}
