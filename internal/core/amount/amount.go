// Package amount normalizes free-text cost fields into decimal values.
//
// Amount columns hold operator input: a plain number, a comma-grouped
// number ("1,250.50"), "NA", or nothing at all. Anything that does not
// parse cleanly is treated as unknown, never as an error.
package amount

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// decimalPattern accepts unsigned decimals only: no sign, no exponent.
var decimalPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Amount is a parsed cost value: either a known decimal or unknown.
type Amount struct {
	value decimal.Decimal
	known bool
}

// Unknown returns the unknown amount.
func Unknown() Amount {
	return Amount{}
}

// FromDecimal wraps a known decimal value.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{value: d, known: true}
}

// Parse normalizes a raw amount field. Empty strings and "NA" (any
// case) map to unknown, grouping commas are stripped, and anything
// left that is not a plain unsigned decimal is unknown as well.
func Parse(raw string) Amount {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "NA") {
		return Unknown()
	}
	s = strings.ReplaceAll(s, ",", "")
	if !decimalPattern.MatchString(s) {
		return Unknown()
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Unknown()
	}
	return FromDecimal(d)
}

// Known reports whether the amount carries a numeric value.
func (a Amount) Known() bool {
	return a.known
}

// Value returns the numeric value. Zero for unknown amounts.
func (a Amount) Value() decimal.Decimal {
	if !a.known {
		return decimal.Zero
	}
	return a.value
}

// String renders the amount for display: "NA" when unknown, otherwise
// the value with two decimal places.
func (a Amount) String() string {
	if !a.known {
		return "NA"
	}
	return a.value.StringFixed(2)
}

// Sum totals a collection of raw amount fields. Unknown entries
// contribute nothing; an empty or all-unknown collection sums to zero.
func Sum(raws []string) decimal.Decimal {
	total := decimal.Zero
	for _, raw := range raws {
		a := Parse(raw)
		if a.Known() {
			total = total.Add(a.Value())
		}
	}
	return total
}
