package wanted

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PricePlaces is the number of fractional digits a Price keeps.
const PricePlaces = 2

// Price is a monetary amount held at cent precision.
type Price struct {
	decimal.Decimal
}

// NewPrice rounds d to PricePlaces fractional digits.
func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d.Round(PricePlaces)}
}

// PriceFromCents builds a Price from an integer number of cents.
func PriceFromCents(cents int64) Price {
	return NewPrice(decimal.New(cents, -PricePlaces))
}

// ParsePrice parses a decimal string such as "1.00" or "12.5".
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("parsing price %q: %w", s, err)
	}
	return NewPrice(d), nil
}

// MustParsePrice is ParsePrice for literals; it panics on bad input.
func MustParsePrice(s string) Price {
	p, err := ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the price with exactly PricePlaces fractional digits.
func (p Price) String() string {
	return p.StringFixed(PricePlaces)
}

// Equal reports whether two prices are numerically equal.
func (p Price) Equal(o Price) bool {
	return p.Decimal.Equal(o.Decimal)
}

// MarshalText implements encoding.TextMarshaler.
func (p Price) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// MarshalJSON renders the price as a quoted fixed-point string.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}
