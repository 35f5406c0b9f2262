package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errors.New("invalid price")

// Round2 rounds half away from zero to cents.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ParsePrice accepts both "8.50" and "8,50".
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "€"))
	if s == "" {
		return decimal.Zero, ErrInvalidPrice
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	return d, nil
}

// FormatAmount renders a fixed two-decimal string with a dot, the form payment
// providers expect.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatEUR renders the customer-facing form, e.g. "13,50 €".
func FormatEUR(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1) + " €"
}

// ToMinorUnits converts euros to cents.
func ToMinorUnits(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Amount decodes JSON numbers as well as price strings like "8,50".
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	d, err := ParsePrice(s)
	if err != nil {
		return err
	}
	a.Decimal = d
	return nil
}
