// Package rates provides the permissible monthly interest-rate ranges per
// country and loan category.
package rates

import (
	"errors"
	"fmt"
)

// Category identifies a loan product category.
type Category string

// Supported loan categories.
const (
	Personal Category = "personal"
	Business Category = "business"
	Mortgage Category = "mortgage"
	Vehicle  Category = "vehicle"
)

// Country identifies a lending market by ISO 3166-1 alpha-2 code.
type Country string

// Markets carried by the built-in catalog.
const (
	Colombia     Country = "CO"
	Mexico       Country = "MX"
	UnitedStates Country = "US"
)

// ErrUnknownCategory indicates a (country, category) pair absent from the
// catalog.
var ErrUnknownCategory = errors.New("unknown country/category combination")

// Range bounds the permissible monthly rate, in percent.
type Range struct {
	MinPercent float64
	MaxPercent float64
}

// Entry is one catalog row.
type Entry struct {
	Country  Country
	Category Category
	Range    Range
}

type catalogKey struct {
	country  Country
	category Category
}

// Catalog maps (country, category) to a permissible monthly-rate range.
// It is built once and read-only afterwards, so it is safe to share across
// concurrent callers without synchronization.
type Catalog struct {
	entries map[catalogKey]Range
}

// NewCatalog builds a catalog from explicit entries. Ranges must satisfy
// 0 <= min <= max.
func NewCatalog(entries []Entry) (*Catalog, error) {
	m := make(map[catalogKey]Range, len(entries))
	for _, e := range entries {
		if e.Country == "" || e.Category == "" {
			return nil, errors.New("catalog entry must set country and category")
		}
		if e.Range.MinPercent < 0 || e.Range.MaxPercent < e.Range.MinPercent {
			return nil, fmt.Errorf("catalog entry %s/%s has invalid range [%v, %v]",
				e.Country, e.Category, e.Range.MinPercent, e.Range.MaxPercent)
		}
		m[catalogKey{e.Country, e.Category}] = e.Range
	}
	return &Catalog{entries: m}, nil
}

// DefaultCatalog returns the built-in monthly-rate ranges.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog([]Entry{
		{Colombia, Personal, Range{1.20, 2.80}},
		{Colombia, Business, Range{1.00, 2.40}},
		{Colombia, Mortgage, Range{0.80, 1.40}},
		{Colombia, Vehicle, Range{1.00, 2.00}},
		{Mexico, Personal, Range{1.50, 3.50}},
		{Mexico, Business, Range{1.20, 2.80}},
		{Mexico, Mortgage, Range{0.70, 1.20}},
		{Mexico, Vehicle, Range{1.10, 2.20}},
		{UnitedStates, Personal, Range{0.50, 1.80}},
		{UnitedStates, Business, Range{0.40, 1.50}},
		{UnitedStates, Mortgage, Range{0.30, 0.70}},
		{UnitedStates, Vehicle, Range{0.35, 1.00}},
	})
	if err != nil {
		// The built-in entries are static and valid.
		panic(err)
	}
	return catalog
}

// RateRange returns the permissible monthly-rate range for the given
// country and category.
func (c *Catalog) RateRange(country Country, category Category) (Range, error) {
	r, ok := c.entries[catalogKey{country, category}]
	if !ok {
		return Range{}, fmt.Errorf("%w: %s/%s", ErrUnknownCategory, country, category)
	}
	return r, nil
}

// DefaultRate returns the midpoint of the permissible range, used as a sane
// default when the caller supplies no explicit rate.
func (c *Catalog) DefaultRate(country Country, category Category) (float64, error) {
	r, err := c.RateRange(country, category)
	if err != nil {
		return 0, err
	}
	return (r.MinPercent + r.MaxPercent) / 2, nil
}

// Contains reports whether rate lies within the range, inclusive.
func (r Range) Contains(rate float64) bool {
	return rate >= r.MinPercent && rate <= r.MaxPercent
}
