// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/inmocredit/credit-engine/pkg/constants"
	"github.com/inmocredit/credit-engine/pkg/currency"
	"github.com/inmocredit/credit-engine/pkg/format"
	"github.com/inmocredit/credit-engine/pkg/rates"
)

// Configuration holds all configuration for credit-engine.
type Configuration struct {
	Display     DisplayConfig
	Rates       RatesConfig
	Catalog     []CatalogEntry `yaml:"catalog,omitempty"`
	Simulations []Simulation
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// DisplayConfig selects the currency and locale used to render results.
type DisplayConfig struct {
	Currency string `yaml:"currency,omitempty"` // e.g. COP, USD, EUR
	Locale   string `yaml:"locale,omitempty"`   // BCP-47 tag, e.g. es-CO
}

// RatesConfig declares the exchange-rate table: every rate is expressed as
// units of that currency per one unit of the base currency.
type RatesConfig struct {
	Base    string             `yaml:"base"`
	PerBase map[string]float64 `yaml:"perBase"`
}

// CatalogEntry overrides one row of the built-in rate catalog.
type CatalogEntry struct {
	Country    string
	Category   string
	MinPercent float64
	MaxPercent float64
}

// Simulation describes one loan to amortize.
type Simulation struct {
	Name               string
	Country            string
	Category           string
	Principal          Principal
	TermMonths         int
	MonthlyRatePercent float64 // 0 means use the catalog default
}

// Principal is the borrowed amount in its stored currency.
type Principal struct {
	Amount   float64
	Currency string
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// DisplayCurrency returns the configured display currency or the default.
func (c *Configuration) DisplayCurrency() currency.Code {
	if c.Display.Currency == "" {
		return currency.Code(constants.DefaultDisplayCurrency)
	}
	return currency.Code(c.Display.Currency)
}

// DisplayLocale returns the configured locale or the default.
func (c *Configuration) DisplayLocale() string {
	if c.Display.Locale == "" {
		return constants.DefaultLocale
	}
	return c.Display.Locale
}

// ExchangeTable builds the immutable exchange-rate table from the
// configured base-relative rates. Viper lowercases map keys, so currency
// codes are normalized back to upper case here.
func (c *Configuration) ExchangeTable() (*currency.Table, error) {
	perBase := make(map[currency.Code]float64, len(c.Rates.PerBase))
	for code, rate := range c.Rates.PerBase {
		perBase[currency.Code(strings.ToUpper(code))] = rate
	}
	return currency.NewTable(currency.Code(strings.ToUpper(c.Rates.Base)), perBase)
}

// RateCatalog builds the rate catalog, applying any configured overrides on
// top of the built-in entries. An empty override list yields the built-in
// catalog unchanged.
func (c *Configuration) RateCatalog() (*rates.Catalog, error) {
	if len(c.Catalog) == 0 {
		return rates.DefaultCatalog(), nil
	}

	entries := make([]rates.Entry, 0, len(c.Catalog))
	for _, e := range c.Catalog {
		entries = append(entries, rates.Entry{
			Country:  rates.Country(e.Country),
			Category: rates.Category(e.Category),
			Range:    rates.Range{MinPercent: e.MinPercent, MaxPercent: e.MaxPercent},
		})
	}
	return rates.NewCatalog(entries)
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings. Out-of-range rates are warnings rather than hard
// failures; whether to reject them is display-layer policy.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Simulations) == 0 {
		warnings = append(warnings, "no simulations configured; nothing to compute")
	}

	if !format.Supported(c.DisplayCurrency()) {
		warnings = append(warnings, fmt.Sprintf("display currency %s has no known display conventions", c.DisplayCurrency()))
	}

	table, err := c.ExchangeTable()
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("exchange rates invalid: %v", err))
		table = nil
	}

	catalog, err := c.RateCatalog()
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("rate catalog invalid: %v", err))
		catalog = nil
	}

	for _, sim := range c.Simulations {
		if table != nil && !table.Supports(currency.Code(sim.Principal.Currency)) {
			warnings = append(warnings, fmt.Sprintf("simulation %s: principal currency %s not in exchange table",
				sim.Name, sim.Principal.Currency))
		}
		if catalog == nil || sim.MonthlyRatePercent == 0 {
			continue
		}
		r, err := catalog.RateRange(rates.Country(sim.Country), rates.Category(sim.Category))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("simulation %s: %v", sim.Name, err))
			continue
		}
		if !r.Contains(sim.MonthlyRatePercent) {
			warnings = append(warnings, fmt.Sprintf("simulation %s: monthly rate %.2f%% outside catalog range [%.2f%%, %.2f%%] for %s/%s",
				sim.Name, sim.MonthlyRatePercent, r.MinPercent, r.MaxPercent, sim.Country, sim.Category))
		}
	}

	return warnings
}
