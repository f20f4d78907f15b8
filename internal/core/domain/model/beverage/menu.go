// Package beverage is the drink catalog: coffee, tea and smoothies in three
// sizes, priced by a Menu whose base prices can be overridden from YAML.
package beverage

import (
	"errors"
	"fmt"
	"io"
	"os"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"gopkg.in/yaml.v3"
)

// Menu holds the base prices. A beverage's unit price is its base price
// times its size multiplier, rounded to cents.
type Menu struct {
	CoffeeBase   kernel.Money
	ExtraShot    kernel.Money
	TeaBase      kernel.Money
	SmoothieBase kernel.Money
	ExtraFruit   kernel.Money
}

// DefaultMenu is the house price list.
func DefaultMenu() Menu {
	return Menu{
		CoffeeBase:   kernel.MustMoney("3.50"),
		ExtraShot:    kernel.MustMoney("0.75"),
		TeaBase:      kernel.MustMoney("2.50"),
		SmoothieBase: kernel.MustMoney("5.00"),
		ExtraFruit:   kernel.MustMoney("0.50"),
	}
}

// menuFile is the YAML layout. Missing keys keep their default price.
type menuFile struct {
	Coffee struct {
		Base      *float64 `yaml:"base"`
		ExtraShot *float64 `yaml:"extra_shot"`
	} `yaml:"coffee"`
	Tea struct {
		Base *float64 `yaml:"base"`
	} `yaml:"tea"`
	Smoothie struct {
		Base       *float64 `yaml:"base"`
		ExtraFruit *float64 `yaml:"extra_fruit"`
	} `yaml:"smoothie"`
}

// LoadMenu reads price overrides from a YAML file:
//
//	coffee:
//	  base: 3.80
//	  extra_shot: 0.90
//	tea:
//	  base: 2.70
//	smoothie:
//	  base: 5.50
//	  extra_fruit: 0.60
func LoadMenu(path string) (Menu, error) {
	file, err := os.Open(path)
	if err != nil {
		return Menu{}, fmt.Errorf("failed to open menu file: %w", err)
	}
	defer file.Close()

	return DecodeMenu(file)
}

// DecodeMenu applies YAML overrides from r to DefaultMenu. Negative prices are rejected.
func DecodeMenu(r io.Reader) (Menu, error) {
	var raw menuFile
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Menu{}, fmt.Errorf("failed to decode menu file: %w", err)
	}

	menu := DefaultMenu()
	overrides := []struct {
		key    string
		value  *float64
		target *kernel.Money
	}{
		{"coffee.base", raw.Coffee.Base, &menu.CoffeeBase},
		{"coffee.extra_shot", raw.Coffee.ExtraShot, &menu.ExtraShot},
		{"tea.base", raw.Tea.Base, &menu.TeaBase},
		{"smoothie.base", raw.Smoothie.Base, &menu.SmoothieBase},
		{"smoothie.extra_fruit", raw.Smoothie.ExtraFruit, &menu.ExtraFruit},
	}
	for _, o := range overrides {
		if o.value == nil {
			continue
		}
		price := kernel.MoneyFromFloat(*o.value)
		if price.IsNegative() {
			return Menu{}, fmt.Errorf("menu price %s must not be negative", o.key)
		}
		*o.target = price
	}

	return menu, nil
}

// BasePrice is the medium-size price before the size multiplier.
func (m Menu) BasePrice(b Beverage) (kernel.Money, error) {
	switch v := b.(type) {
	case Coffee:
		return m.CoffeeBase.Add(m.ExtraShot.Times(v.ExtraShots())), nil
	case Tea:
		return m.TeaBase, nil
	case Smoothie:
		return m.SmoothieBase.Add(m.ExtraFruit.Times(v.ExtraFruits())), nil
	default:
		return kernel.Money{}, fmt.Errorf("beverage %T is not on the menu", b)
	}
}

// Price is the unit price of b in its size, rounded to cents.
func (m Menu) Price(b Beverage) (kernel.Money, error) {
	base, err := m.BasePrice(b)
	if err != nil {
		return kernel.Money{}, err
	}
	return base.Scale(b.Size().Multiplier()).Round(), nil
}

// Item prices b and returns it as an order line item.
func (m Menu) Item(b Beverage, quantity int) (order.Item, error) {
	price, err := m.Price(b)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(b.Name(), Description(b), price, quantity)
}
