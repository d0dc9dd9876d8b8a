package chips

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidCatalog is returned when a caller-supplied denomination list
// contains non-positive or duplicate values.
var ErrInvalidCatalog = errors.New("invalid denomination catalog")

// Catalog is an ordered list of chip denominations, strictly increasing.
type Catalog []Cents

// defaultDenominations are the standard denominations, in dollars.
var defaultDenominations = []float64{
	0.05, 0.10, 0.25, 0.50, 1, 2, 5, 10, 25, 50, 100, 200, 250, 500, 1000, 2000, 5000,
}

// DefaultCatalog returns the standard denomination catalog.
func DefaultCatalog() Catalog {
	c := make(Catalog, len(defaultDenominations))
	for i, d := range defaultDenominations {
		c[i] = FromDollars(d)
	}
	return c
}

// NewCatalog builds a catalog from caller-supplied values, replacing the
// default list. Values are normalized to ascending order; non-positive and
// duplicate values are rejected with ErrInvalidCatalog.
func NewCatalog(values []Cents) (Catalog, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty value list", ErrInvalidCatalog)
	}
	c := make(Catalog, len(values))
	copy(c, values)
	sort.Slice(c, func(i, j int) bool { return c[i] < c[j] })
	for i, v := range c {
		if v <= 0 {
			return nil, fmt.Errorf("%w: non-positive value %v", ErrInvalidCatalog, v)
		}
		if i > 0 && c[i-1] == v {
			return nil, fmt.Errorf("%w: duplicate value %v", ErrInvalidCatalog, v)
		}
	}
	return c, nil
}
