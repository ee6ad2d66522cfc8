package menu_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func ptr[T any](v T) *T {
	return &v
}

func TestNewMenuItem(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should create menu item with valid attributes", func(t *testing.T) {
		item, err := menu.NewMenuItem(id, "Pizza Margherita", "Tomato, mozzarella, basil", price(t, "35.90"), "Pizza")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(id))
		assert.Equal(t, "Pizza Margherita", item.Name())
		assert.Equal(t, "Tomato, mozzarella, basil", item.Description())
		assert.Equal(t, "35.90", item.Price().String())
		assert.Equal(t, "Pizza", item.Category())
		assert.True(t, item.CreatedAt().IsZero())
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		item, err := menu.NewMenuItem(id, "  Lasagna ", " Bolognese ", price(t, "28.50"), " Pasta ")

		require.NoError(t, err)
		assert.Equal(t, "Lasagna", item.Name())
		assert.Equal(t, "Bolognese", item.Description())
		assert.Equal(t, "Pasta", item.Category())
	})

	t.Run("should reject zero price", func(t *testing.T) {
		_, err := menu.NewMenuItem(id, "Water", "Still", kernel.ZeroMoney(), "Drinks")

		require.ErrorIs(t, err, menu.ErrPriceIsNotPositive)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a price above the maximum", func(t *testing.T) {
		item, err := menu.NewMenuItem(id, "Caviar", "Beluga", price(t, "100000000.00"), "Starters")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, item)
	})

	t.Run("should accept the maximum price", func(t *testing.T) {
		item, err := menu.NewMenuItem(id, "Caviar", "Beluga", kernel.MaxUnitPrice(), "Starters")

		require.NoError(t, err)
		assert.Equal(t, "99999999.99", item.Price().String())
	})

	t.Run("should reject unconstructed price", func(t *testing.T) {
		_, err := menu.NewMenuItem(id, "Water", "Still", kernel.Money{}, "Drinks")

		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})

	t.Run("should report every missing field", func(t *testing.T) {
		item, err := menu.NewMenuItem(kernel.UUID{}, " ", "", price(t, "1.00"), "")

		require.Error(t, err)
		assert.Nil(t, item)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, menu.ErrNameIsRequired)
		require.ErrorIs(t, err, menu.ErrDescriptionIsRequired)
		require.ErrorIs(t, err, menu.ErrCategoryIsRequired)
	})
}

func TestRestoreMenuItem(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	item, err := menu.RestoreMenuItem(kernel.NewUUID(), "Tiramisu", "Coffee dessert", price(t, "18.00"), "Dessert", created, updated)

	require.NoError(t, err)
	assert.Equal(t, created, item.CreatedAt())
	assert.Equal(t, updated, item.UpdatedAt())
}

func TestMenuItem_Validate(t *testing.T) {
	t.Run("nil item", func(t *testing.T) {
		var item *menu.MenuItem

		assert.Equal(t, menu.ErrMenuItemIsNotConstructed, item.Validate())
	})

	t.Run("zero value item", func(t *testing.T) {
		var item menu.MenuItem

		assert.Equal(t, menu.ErrMenuItemIsNotConstructed, item.Validate())
	})
}

func TestMenuItem_Apply(t *testing.T) {
	newItem := func(t *testing.T) *menu.MenuItem {
		item, err := menu.NewMenuItem(kernel.NewUUID(), "Pizza Margherita", "Classic", price(t, "35.90"), "Pizza")
		require.NoError(t, err)
		return item
	}

	t.Run("should update only present fields", func(t *testing.T) {
		item := newItem(t)

		err := item.Apply(menu.Changes{Price: ptr(price(t, "39.90"))})

		require.NoError(t, err)
		assert.Equal(t, "39.90", item.Price().String())
		assert.Equal(t, "Pizza Margherita", item.Name())
		assert.Equal(t, "Classic", item.Description())
	})

	t.Run("should update every field", func(t *testing.T) {
		item := newItem(t)

		err := item.Apply(menu.Changes{
			Name:        ptr("Pizza Napoletana"),
			Description: ptr("San Marzano"),
			Price:       ptr(price(t, "42.00")),
			Category:    ptr("Pizza Especial"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Pizza Napoletana", item.Name())
		assert.Equal(t, "San Marzano", item.Description())
		assert.Equal(t, "42.00", item.Price().String())
		assert.Equal(t, "Pizza Especial", item.Category())
	})

	t.Run("should leave item untouched when any field is invalid", func(t *testing.T) {
		item := newItem(t)

		err := item.Apply(menu.Changes{
			Name:  ptr("Renamed"),
			Price: ptr(kernel.ZeroMoney()),
		})

		require.ErrorIs(t, err, menu.ErrPriceIsNotPositive)
		assert.Equal(t, "Pizza Margherita", item.Name())
		assert.Equal(t, "35.90", item.Price().String())
	})

	t.Run("should reject a price above the maximum", func(t *testing.T) {
		item := newItem(t)

		err := item.Apply(menu.Changes{Price: ptr(price(t, "123456789.00"))})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, "35.90", item.Price().String())
	})

	t.Run("empty changes are a no-op", func(t *testing.T) {
		item := newItem(t)

		require.NoError(t, item.Apply(menu.Changes{}))
		assert.Equal(t, "Pizza Margherita", item.Name())
	})
}

func TestMenuItem_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, _ := menu.NewMenuItem(id, "A", "a", price(t, "1.00"), "X")
	b, _ := menu.NewMenuItem(id, "B", "b", price(t, "2.00"), "Y")
	c, _ := menu.NewMenuItem(kernel.NewUUID(), "A", "a", price(t, "1.00"), "X")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
