package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/inmocredit/credit-engine/pkg/currency"
)

func TestPriceEnglishLocale(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     currency.Code
		expected string
	}{
		{"USD with grouping", 1234.56, currency.USD, "$1,234.56"},
		{"USD small amount", 5.5, currency.USD, "$5.50"},
		{"EUR symbol", 99.9, currency.EUR, "€99.90"},
		{"COP no cents", 2500000, currency.COP, "$2,500,000"},
		{"MXN two digits", 17, currency.MXN, "$17.00"},
		{"Negative amount", -1234.56, currency.USD, "-$1,234.56"},
		{"Zero", 0, currency.USD, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(tt.amount, tt.code, "en-US")
			if err != nil {
				t.Fatalf("Price() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Price(%v, %s) = %q, expected %q", tt.amount, tt.code, got, tt.expected)
			}
		})
	}
}

func TestPriceColombianLocale(t *testing.T) {
	// Exact separators belong to the CLDR data, so only assert the digits
	// and the symbol here.
	got, err := Price(2500000, currency.COP, "es-CO")
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	if !strings.HasPrefix(got, "$") {
		t.Errorf("Price() = %q, expected leading currency symbol", got)
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, got)
	if digits != "2500000" {
		t.Errorf("Price() = %q, expected digits 2500000, got %q", got, digits)
	}
}

func TestPriceErrors(t *testing.T) {
	_, err := Price(100, "XXX", "en-US")
	if !errors.Is(err, currency.ErrUnsupportedCurrency) {
		t.Errorf("Price() error = %v, expected ErrUnsupportedCurrency", err)
	}

	_, err = Price(100, currency.USD, "not a locale !!")
	if err == nil {
		t.Errorf("Price() expected error for invalid locale tag")
	}
}

func TestSupported(t *testing.T) {
	for _, code := range []currency.Code{currency.COP, currency.USD, currency.EUR, currency.MXN} {
		if !Supported(code) {
			t.Errorf("Supported(%s) = false, expected true", code)
		}
	}
	if Supported("XXX") {
		t.Errorf("Supported(XXX) = true, expected false")
	}
}
