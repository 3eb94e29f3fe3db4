package currency

import (
	"errors"
	"fmt"
	"math"
)

// Errors reported by conversion.
var (
	// ErrUnsupportedCurrency indicates a currency code absent from the table.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrNegativeAmount indicates a negative amount was passed to Convert.
	ErrNegativeAmount = errors.New("amount must be non-negative")
)

// Table is an immutable exchange rate table. Every supported currency's
// rate is expressed relative to a single base currency (units of that
// currency per one unit of the base), so conversions always compose
// consistently: A->B->C and A->C go through the same two hops.
type Table struct {
	base    Code
	perBase map[Code]float64
}

// NewTable builds a Table from a base currency and a map of units-per-base
// rates. The base itself is always supported with an implicit rate of 1;
// an explicit base entry must also be 1. All rates must be positive and
// finite.
func NewTable(base Code, perBase map[Code]float64) (*Table, error) {
	if base == "" {
		return nil, errors.New("base currency must be set")
	}

	rates := make(map[Code]float64, len(perBase)+1)
	for code, rate := range perBase {
		if code == "" {
			return nil, errors.New("empty currency code in rate table")
		}
		if rate <= 0 || math.IsInf(rate, 0) || math.IsNaN(rate) {
			return nil, fmt.Errorf("rate for %s must be positive and finite, got %v", code, rate)
		}
		if code == base && rate != 1 {
			return nil, fmt.Errorf("base currency %s must have rate 1, got %v", base, rate)
		}
		rates[code] = rate
	}
	rates[base] = 1

	return &Table{base: base, perBase: rates}, nil
}

// Base returns the table's base currency.
func (t *Table) Base() Code {
	return t.base
}

// Supports reports whether the table carries a rate for code.
func (t *Table) Supports(code Code) bool {
	_, ok := t.perBase[code]
	return ok
}

// Codes returns the supported currency codes in unspecified order.
func (t *Table) Codes() []Code {
	codes := make([]Code, 0, len(t.perBase))
	for code := range t.perBase {
		codes = append(codes, code)
	}
	return codes
}

// Convert converts amount from one currency to another by hopping through
// the base currency. Identical from/to codes return amount unchanged with
// no rounding applied.
func (t *Table) Convert(amount float64, from, to Code) (float64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeAmount, amount)
	}
	if from == to {
		if !t.Supports(from) {
			return 0, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, from)
		}
		return amount, nil
	}

	fromRate, ok := t.perBase[from]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, from)
	}
	toRate, ok := t.perBase[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, to)
	}

	inBase := amount / fromRate
	return inBase * toRate, nil
}

// ConvertMoney converts a Money value into the target currency.
func (t *Table) ConvertMoney(m Money, to Code) (Money, error) {
	converted, err := t.Convert(m.Amount, m.Currency, to)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: converted, Currency: to}, nil
}
