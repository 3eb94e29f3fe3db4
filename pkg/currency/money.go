// Package currency defines monetary value types and base-relative exchange
// rate conversion between a fixed set of currencies.
package currency

// Code identifies a currency (e.g. "COP", "USD", "EUR").
type Code string

// Well-known currency codes used throughout the application. The set a
// given Table supports is determined by the rates it was built with, not
// by this list.
const (
	COP Code = "COP"
	USD Code = "USD"
	EUR Code = "EUR"
	MXN Code = "MXN"
)

// Money is an amount tagged with its currency.
type Money struct {
	Amount   float64
	Currency Code
}
