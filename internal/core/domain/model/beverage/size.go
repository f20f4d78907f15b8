package beverage

import (
	"fmt"
	"strings"

	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Size scales a beverage's base price.
type Size int

const (
	UnknownSize Size = iota
	Small
	Medium
	Large
)

var sizeMultipliers = map[Size]decimal.Decimal{
	Small:  decimal.RequireFromString("0.8"),
	Medium: decimal.NewFromInt(1),
	Large:  decimal.RequireFromString("1.2"),
}

// ParseSize accepts "S", "M", "L" or the full names, in any case.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "small":
		return Small, nil
	case "m", "medium":
		return Medium, nil
	case "l", "large":
		return Large, nil
	}
	return UnknownSize, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not one of S, M, L", s))
}

func (s Size) Validate() error {
	if _, ok := sizeMultipliers[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// Multiplier is 0.8 for Small, 1.0 for Medium and 1.2 for Large.
func (s Size) Multiplier() decimal.Decimal {
	return sizeMultipliers[s]
}

func (s Size) String() string {
	switch s {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	default:
		return "Unknown"
	}
}
