package locale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotANumber reports that a price string could not be parsed. Callers
// must check it before using the cent value.
var ErrNotANumber = errors.New("price is not a number")

// HumanizePrice renders integer cents as "{symbol}{amount}" with two
// decimals, e.g. HumanizePrice(12345, "$") == "$123.45".
func HumanizePrice(cents int64, currencySymbol string) string {
	return fmt.Sprintf("%s%.2f", currencySymbol, float64(cents)/100)
}

// ToCent converts a decimal price string to integer cents, rounding half
// away from zero ("12.5" -> 1250, "0.005" -> 1).
func ToCent(price string) (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, price)
	}
	return int64(math.Round(f * 100)), nil
}

// ToBaseUnit converts integer cents to the major currency unit.
func ToBaseUnit(cents int64) float64 {
	return float64(cents) / 100
}
