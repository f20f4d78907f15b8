package beverage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coffeeshop/internal/core/domain/model/beverage"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCoffee(t *testing.T, size beverage.Size, shots int) beverage.Coffee {
	t.Helper()
	c, err := beverage.NewCoffee(size, shots)
	require.NoError(t, err)
	return c
}

func TestMenu_Price(t *testing.T) {
	menu := beverage.DefaultMenu()
	greenTea, err := beverage.NewTea(beverage.Large, "Green")
	require.NoError(t, err)
	smoothie, err := beverage.NewSmoothie(beverage.Medium, []string{"Strawberry", "Banana"})
	require.NoError(t, err)
	plainSmoothie, err := beverage.NewSmoothie(beverage.Small, nil)
	require.NoError(t, err)

	cases := []struct {
		name     string
		beverage beverage.Beverage
		expected string
	}{
		{"medium coffee", mustCoffee(t, beverage.Medium, 0), "3.50"},
		{"coffee with two shots", mustCoffee(t, beverage.Medium, 2), "5.00"},
		{"small coffee", mustCoffee(t, beverage.Small, 0), "2.80"},
		{"large coffee", mustCoffee(t, beverage.Large, 0), "4.20"},
		{"large tea", greenTea, "3.00"},
		{"two fruit smoothie", smoothie, "5.50"},
		{"small smoothie without fruits", plainSmoothie, "4.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := menu.Price(tc.beverage)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, price.String())
		})
	}
}

func TestMenu_Item(t *testing.T) {
	item, err := beverage.DefaultMenu().Item(mustCoffee(t, beverage.Small, 1), 2)

	require.NoError(t, err)
	assert.Equal(t, "Coffee (+1 shot)", item.Name())
	assert.Equal(t, "Coffee (+1 shot) (Small)", item.Description())
	assert.Equal(t, "3.40", item.UnitPrice().String())
	assert.Equal(t, "6.80", item.Subtotal().String())
}

type espresso struct{}

func (espresso) Name() string        { return "Espresso" }
func (espresso) Size() beverage.Size { return beverage.Small }

func TestMenu_UnknownBeverage(t *testing.T) {
	_, err := beverage.DefaultMenu().Price(espresso{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not on the menu")
}

func TestDecodeMenu(t *testing.T) {
	t.Run("partial override", func(t *testing.T) {
		menu, err := beverage.DecodeMenu(strings.NewReader("coffee:\n  base: 4.00\ntea:\n  base: 2.75\n"))

		require.NoError(t, err)
		assert.True(t, menu.CoffeeBase.IsEqual(kernel.MustMoney("4.00")))
		assert.True(t, menu.TeaBase.IsEqual(kernel.MustMoney("2.75")))
		assert.True(t, menu.ExtraShot.IsEqual(kernel.MustMoney("0.75")))
		assert.True(t, menu.SmoothieBase.IsEqual(kernel.MustMoney("5.00")))
	})

	t.Run("empty document keeps defaults", func(t *testing.T) {
		menu, err := beverage.DecodeMenu(strings.NewReader(""))

		require.NoError(t, err)
		assert.Equal(t, beverage.DefaultMenu(), menu)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := beverage.DecodeMenu(strings.NewReader("smoothie:\n  extra_fruit: -1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "smoothie.extra_fruit")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := beverage.DecodeMenu(strings.NewReader("coffee: ["))
		require.Error(t, err)
	})
}

func TestLoadMenu(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("smoothie:\n  base: 6\n"), 0o600))

	menu, err := beverage.LoadMenu(path)

	require.NoError(t, err)
	assert.True(t, menu.SmoothieBase.IsEqual(kernel.MustMoney("6")))

	_, err = beverage.LoadMenu(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseSize(t *testing.T) {
	for input, expected := range map[string]beverage.Size{
		"S": beverage.Small, "medium": beverage.Medium, " l ": beverage.Large,
	} {
		size, err := beverage.ParseSize(input)
		require.NoError(t, err)
		assert.Equal(t, expected, size)
	}

	_, err := beverage.ParseSize("XL")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = beverage.NewCoffee(beverage.UnknownSize, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestBeverageNames(t *testing.T) {
	tea, _ := beverage.NewTea(beverage.Medium, "")
	smoothie, _ := beverage.NewSmoothie(beverage.Large, []string{" Mango ", "", "Kiwi"})

	assert.Equal(t, "Coffee", mustCoffee(t, beverage.Medium, 0).Name())
	assert.Equal(t, "Coffee (+3 shots)", mustCoffee(t, beverage.Medium, 3).Name())
	assert.Equal(t, "Black Tea", tea.Name())
	assert.Equal(t, "Smoothie (Mango, Kiwi)", smoothie.Name())
	assert.Equal(t, 1, smoothie.ExtraFruits())
	assert.Equal(t, "Black Tea (Medium)", beverage.Description(tea))
}
