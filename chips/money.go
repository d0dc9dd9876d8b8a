// Package chips holds the core data model for chip distributions: monetary
// amounts, chip sets, denomination catalogs, and the final distribution
// result. Everything in this package is either immutable after construction
// or a plain value type.
package chips

import "fmt"

// Cents is a monetary amount in integer cents. The solver does all of its
// arithmetic and tie-breaking in cents; floating point only appears at the
// config/CLI boundary.
type Cents int64

// FromDollars converts a decimal dollar amount to cents, rounding half away
// from zero.
func FromDollars(d float64) Cents {
	if d >= 0 {
		return Cents(d*100 + 0.5)
	}
	return Cents(d*100 - 0.5)
}

// Dollars returns the amount as a float, for display and serialization only.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

func (c Cents) String() string {
	v := c
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}
