// Package output provides utilities for formatting and displaying
// simulation results.
package output

import (
	"fmt"

	"github.com/inmocredit/credit-engine/internal/simulator"
	"github.com/inmocredit/credit-engine/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []simulator.Simulation, locale string) error {
	for i, result := range results {
		payment, err := format.Price(result.Result.MonthlyPayment, result.DisplayCurrency, locale)
		if err != nil {
			return err
		}
		totalPayment, err := format.Price(result.Result.TotalPayment, result.DisplayCurrency, locale)
		if err != nil {
			return err
		}
		totalInterest, err := format.Price(result.Result.TotalInterest, result.DisplayCurrency, locale)
		if err != nil {
			return err
		}

		fmt.Printf("--- Results for simulation %s ---\n", result.Name)
		fmt.Printf("Market: %s/%s at %.2f%% monthly\n", result.Country, result.Category, result.MonthlyRatePercent)
		fmt.Printf("Monthly payment: %s (%s)\n", payment, result.DisplayCurrency)
		fmt.Printf("Total payment:   %s\n", totalPayment)
		fmt.Printf("Total interest:  %s\n", totalInterest)
		fmt.Printf("Period | Payment         | Principal       | Interest        | Balance\n")
		fmt.Printf("______ | _______________ | _______________ | _______________ | _______________\n")
		for _, entry := range result.Result.Schedule {
			payment, err := format.Price(entry.Payment, result.DisplayCurrency, locale)
			if err != nil {
				return err
			}
			principal, err := format.Price(entry.Principal, result.DisplayCurrency, locale)
			if err != nil {
				return err
			}
			interest, err := format.Price(entry.Interest, result.DisplayCurrency, locale)
			if err != nil {
				return err
			}
			balance, err := format.Price(entry.RemainingBalance, result.DisplayCurrency, locale)
			if err != nil {
				return err
			}
			fmt.Printf("%6d | %15s | %15s | %15s | %15s\n", entry.Period, payment, principal, interest, balance)
		}
		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
	return nil
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []simulator.Simulation) {
	fmt.Printf(`"simulation","currency","period","payment","principal","interest","balance"`)
	fmt.Printf("\n")
	for _, result := range results {
		for _, entry := range result.Result.Schedule {
			fmt.Printf(`"%s","%s","%d","%.2f","%.2f","%.2f","%.2f"`,
				result.Name, result.DisplayCurrency, entry.Period,
				entry.Payment, entry.Principal, entry.Interest, entry.RemainingBalance)
			fmt.Printf("\n")
		}
	}
}
