// Package loans provides fixed-installment loan amortization calculations.
package loans

import (
	"errors"
	"fmt"
	"math"

	"github.com/inmocredit/credit-engine/pkg/constants"
	"github.com/inmocredit/credit-engine/pkg/mathutil"
)

// Errors reported for malformed calculator input. All are local validation
// failures; nothing here is transient or retryable.
var (
	// ErrInvalidPrincipal indicates a non-positive or non-finite principal.
	ErrInvalidPrincipal = errors.New("principal must be positive and finite")

	// ErrInvalidTerm indicates a term of less than one month.
	ErrInvalidTerm = errors.New("term must be at least one month")

	// ErrInvalidRate indicates a negative or non-finite monthly rate.
	ErrInvalidRate = errors.New("monthly rate must be non-negative and finite")
)

// Entry holds the values for a given payment period.
type Entry struct {
	Period           int // 1-based
	Payment          float64
	Principal        float64
	Interest         float64
	RemainingBalance float64
}

// Result is the outcome of amortizing a loan: the constant monthly payment,
// the aggregates over the full term, and the period-by-period schedule.
// Results are computed fresh on every call and never mutated afterwards.
type Result struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
	Schedule       []Entry
}

// MonthlyPayment calculates the constant monthly payment for a loan using
// the standard amortization formula. A zero rate divides the principal
// evenly across the term.
func MonthlyPayment(principal, monthlyRatePercent float64, termMonths int) float64 {
	if monthlyRatePercent == 0 {
		return principal / float64(termMonths)
	}

	r := monthlyRatePercent / constants.PercentageMultiplier
	power := math.Pow(1.00+r, float64(termMonths))
	return principal * r * power / (power - 1.00)
}

// InterestPayment calculates the interest portion of a payment on the
// remaining balance.
func InterestPayment(remainingBalance, monthlyRatePercent float64) float64 {
	return remainingBalance * monthlyRatePercent / constants.PercentageMultiplier
}

// ComputeSchedule amortizes a loan over termMonths at the given monthly
// rate (in percent, e.g. 2.5 for 2.5% per month) and returns the full
// schedule. The final period's remaining balance is set to exactly 0; the
// iteration otherwise accumulates machine error that would leave a tiny
// residual balance.
func ComputeSchedule(principal float64, termMonths int, monthlyRatePercent float64) (*Result, error) {
	if principal <= 0 || math.IsInf(principal, 0) || math.IsNaN(principal) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrincipal, principal)
	}
	if termMonths < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTerm, termMonths)
	}
	if monthlyRatePercent < 0 || math.IsInf(monthlyRatePercent, 0) || math.IsNaN(monthlyRatePercent) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRate, monthlyRatePercent)
	}

	payment := MonthlyPayment(principal, monthlyRatePercent, termMonths)

	schedule := make([]Entry, 0, termMonths)
	balance := principal
	for period := 1; period <= termMonths; period++ {
		interest := InterestPayment(balance, monthlyRatePercent)
		principalPortion := payment - interest
		balance -= principalPortion
		if period == termMonths || mathutil.IsZero(balance) {
			// We will get machine error otherwise so just set to 0.
			balance = 0.00
		}
		schedule = append(schedule, Entry{
			Period:           period,
			Payment:          payment,
			Principal:        principalPortion,
			Interest:         interest,
			RemainingBalance: balance,
		})
	}

	totalPayment := payment * float64(termMonths)
	return &Result{
		MonthlyPayment: payment,
		TotalPayment:   totalPayment,
		TotalInterest:  totalPayment - principal,
		Schedule:       schedule,
	}, nil
}
