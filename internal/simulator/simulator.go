// Package simulator runs the configured loan simulations: it resolves each
// loan's rate against the catalog, computes the amortization schedule, and
// converts the results into the display currency.
package simulator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/inmocredit/credit-engine/internal/config"
	"github.com/inmocredit/credit-engine/pkg/currency"
	"github.com/inmocredit/credit-engine/pkg/loans"
	"github.com/inmocredit/credit-engine/pkg/rates"
)

// Simulation holds the outcome of one configured loan simulation. All
// monetary fields of Result are expressed in DisplayCurrency; Principal
// keeps the stored amount and currency it was configured with.
type Simulation struct {
	Name               string
	Country            rates.Country
	Category           rates.Category
	Principal          currency.Money
	MonthlyRatePercent float64
	DisplayCurrency    currency.Code
	Result             loans.Result
}

// Run processes every configured simulation.
func Run(logger *zap.Logger, conf config.Configuration) ([]Simulation, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	table, err := conf.ExchangeTable()
	if err != nil {
		return nil, err
	}
	catalog, err := conf.RateCatalog()
	if err != nil {
		return nil, err
	}
	display := conf.DisplayCurrency()

	var results []Simulation
	for _, sim := range conf.Simulations {
		country := rates.Country(sim.Country)
		category := rates.Category(sim.Category)

		rate := sim.MonthlyRatePercent
		if rate == 0 {
			rate, err = catalog.DefaultRate(country, category)
			if err != nil {
				return results, fmt.Errorf("simulation %s: %w", sim.Name, err)
			}
			logger.Debug(fmt.Sprintf("using catalog default rate %.2f%% for simulation %s", rate, sim.Name),
				zap.String("op", "simulator.Run"),
			)
		}

		result, err := loans.ComputeSchedule(sim.Principal.Amount, sim.TermMonths, rate)
		if err != nil {
			return results, fmt.Errorf("simulation %s: %w", sim.Name, err)
		}

		principal := currency.Money{
			Amount:   sim.Principal.Amount,
			Currency: currency.Code(sim.Principal.Currency),
		}
		converted, err := convertResult(*result, table, principal.Currency, display)
		if err != nil {
			return results, fmt.Errorf("simulation %s: %w", sim.Name, err)
		}

		logger.Debug(fmt.Sprintf("simulation %s: payment %.2f over %d months", sim.Name, converted.MonthlyPayment, sim.TermMonths),
			zap.String("op", "simulator.Run"),
		)

		results = append(results, Simulation{
			Name:               sim.Name,
			Country:            country,
			Category:           category,
			Principal:          principal,
			MonthlyRatePercent: rate,
			DisplayCurrency:    display,
			Result:             converted,
		})
	}

	return results, nil
}

// convertResult maps every monetary field of a schedule into the display
// currency. Conversion is linear, so the schedule's payment decomposition
// is preserved.
func convertResult(result loans.Result, table *currency.Table, from, to currency.Code) (loans.Result, error) {
	convert := func(amount float64) (float64, error) {
		return table.Convert(amount, from, to)
	}

	var err error
	if result.MonthlyPayment, err = convert(result.MonthlyPayment); err != nil {
		return loans.Result{}, err
	}
	if result.TotalPayment, err = convert(result.TotalPayment); err != nil {
		return loans.Result{}, err
	}
	if result.TotalInterest, err = convert(result.TotalInterest); err != nil {
		return loans.Result{}, err
	}

	schedule := make([]loans.Entry, len(result.Schedule))
	for i, entry := range result.Schedule {
		if entry.Payment, err = convert(entry.Payment); err != nil {
			return loans.Result{}, err
		}
		if entry.Principal, err = convert(entry.Principal); err != nil {
			return loans.Result{}, err
		}
		if entry.Interest, err = convert(entry.Interest); err != nil {
			return loans.Result{}, err
		}
		if entry.RemainingBalance, err = convert(entry.RemainingBalance); err != nil {
			return loans.Result{}, err
		}
		schedule[i] = entry
	}
	result.Schedule = schedule

	return result, nil
}
