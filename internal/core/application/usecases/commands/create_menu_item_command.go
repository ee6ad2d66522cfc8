package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand adds a dish to the menu.
//
// Example:
//
//	cmd, err := NewCreateMenuItemCommand("Pizza Margherita", "Tomato, mozzarella, basil", 35.90, "Pizza")
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       kernel.Money
	category    string

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand requires every field; price must be greater than 0.
func NewCreateMenuItemCommand(name, description string, price float64, category string) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setDescription(description),
		cmd.setPrice(price),
		cmd.setCategory(category),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Name() string {
	return c.name
}

func (c CreateMenuItemCommand) Description() string {
	return c.description
}

func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

func (c CreateMenuItemCommand) Category() string {
	return c.category
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return menu.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return menu.ErrDescriptionIsRequired
	}
	c.description = description
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price float64) error {
	money, err := positivePrice(price)
	if err != nil {
		return err
	}
	c.price = money
	return nil
}

func (c *CreateMenuItemCommand) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return menu.ErrCategoryIsRequired
	}
	c.category = category
	return nil
}

func positivePrice(price float64) (kernel.Money, error) {
	money, err := kernel.MoneyFromFloat(price)
	if err != nil {
		return kernel.Money{}, err
	}
	if !money.IsPositive() {
		return kernel.Money{}, menu.ErrPriceIsNotPositive
	}
	if money.IsGreaterThan(kernel.MaxUnitPrice()) {
		return kernel.Money{}, errs.NewValueIsOutOfRangeError("price", money.String(), "0.01", kernel.MaxUnitPrice().String())
	}
	return money, nil
}
