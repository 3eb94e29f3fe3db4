// Package format renders monetary amounts as locale-appropriate currency
// strings.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/inmocredit/credit-engine/pkg/currency"
)

// style holds the display conventions for one currency.
type style struct {
	symbol         string
	fractionDigits int
}

// COP is conventionally displayed without cents; USD/EUR/MXN carry two
// fractional digits.
var styles = map[currency.Code]style{
	currency.COP: {symbol: "$", fractionDigits: 0},
	currency.USD: {symbol: "$", fractionDigits: 2},
	currency.EUR: {symbol: "€", fractionDigits: 2},
	currency.MXN: {symbol: "$", fractionDigits: 2},
}

// Price renders amount in the given currency using the locale's grouping
// and decimal conventions (e.g. "$1,234.56" for USD in en-US, "$2.500.000"
// for COP in es-CO).
func Price(amount float64, code currency.Code, locale string) (string, error) {
	s, ok := styles[code]
	if !ok {
		return "", fmt.Errorf("%w: %s", currency.ErrUnsupportedCurrency, code)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	p := message.NewPrinter(tag)
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	var formatted string
	switch s.fractionDigits {
	case 0:
		formatted = p.Sprintf("%.0f", math.Abs(amount))
	default:
		formatted = p.Sprintf("%.2f", math.Abs(amount))
	}
	return sign + s.symbol + formatted, nil
}

// Supported reports whether the formatter knows the display conventions
// for code.
func Supported(code currency.Code) bool {
	_, ok := styles[code]
	return ok
}
