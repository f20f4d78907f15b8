package beverage

import (
	"fmt"
	"strings"
)

// Beverage is anything the menu can price.
type Beverage interface {
	Name() string
	Size() Size
}

// Description renders "<name> (<size>)", the text copied into order items.
func Description(b Beverage) string {
	return fmt.Sprintf("%s (%s)", b.Name(), b.Size())
}

type Coffee struct {
	size       Size
	extraShots int
}

func NewCoffee(size Size, extraShots int) (Coffee, error) {
	if err := size.Validate(); err != nil {
		return Coffee{}, err
	}
	if extraShots < 0 {
		extraShots = 0
	}
	return Coffee{size: size, extraShots: extraShots}, nil
}

func (c Coffee) Name() string {
	switch c.extraShots {
	case 0:
		return "Coffee"
	case 1:
		return "Coffee (+1 shot)"
	default:
		return fmt.Sprintf("Coffee (+%d shots)", c.extraShots)
	}
}

func (c Coffee) Size() Size {
	return c.size
}

func (c Coffee) ExtraShots() int {
	return c.extraShots
}

type Tea struct {
	size    Size
	variety string
}

// NewTea builds a tea; an empty variety defaults to "Black".
func NewTea(size Size, variety string) (Tea, error) {
	if err := size.Validate(); err != nil {
		return Tea{}, err
	}
	variety = strings.TrimSpace(variety)
	if variety == "" {
		variety = "Black"
	}
	return Tea{size: size, variety: variety}, nil
}

func (t Tea) Name() string {
	return t.variety + " Tea"
}

func (t Tea) Size() Size {
	return t.size
}

type Smoothie struct {
	size   Size
	fruits []string
}

// NewSmoothie keeps the non-blank fruit names in order.
func NewSmoothie(size Size, fruits []string) (Smoothie, error) {
	if err := size.Validate(); err != nil {
		return Smoothie{}, err
	}
	kept := make([]string, 0, len(fruits))
	for _, f := range fruits {
		if f = strings.TrimSpace(f); f != "" {
			kept = append(kept, f)
		}
	}
	return Smoothie{size: size, fruits: kept}, nil
}

func (s Smoothie) Name() string {
	return fmt.Sprintf("Smoothie (%s)", strings.Join(s.fruits, ", "))
}

func (s Smoothie) Size() Size {
	return s.size
}

// ExtraFruits counts fruits beyond the first.
func (s Smoothie) ExtraFruits() int {
	return max(len(s.fruits), 1) - 1
}
