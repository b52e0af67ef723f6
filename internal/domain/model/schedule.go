package model

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/bib/services/obligation-service/internal/domain/valueobject"
	"github.com/bibbank/bib/services/obligation-service/pkg/money"
)

// DefaultMaxPeriods caps a projection at fifty years of monthly installments.
const DefaultMaxPeriods = 600

// ScheduleEntry is an immutable value object representing one projected
// installment.
type ScheduleEntry struct {
	Period           int
	DueDate          valueobject.Date
	Payment          decimal.Decimal
	Interest         decimal.Decimal
	Principal        decimal.Decimal
	RemainingBalance decimal.Decimal
}

// Projection is the forecast of the remaining installments.
type Projection struct {
	Entries []ScheduleEntry
	// Converges is false when the monthly amount never retires the balance
	// within the period cap, or when there is no basis for due dates.
	Converges bool
}

// PayoffDate returns the due date of the installment that clears the balance.
func (p Projection) PayoffDate() *valueobject.Date {
	if !p.Converges || len(p.Entries) == 0 {
		return nil
	}
	return p.Entries[len(p.Entries)-1].DueDate.Ptr()
}

// ProjectSchedule forecasts the installments still to come after the payments
// already summarised in result, assuming monthly is paid on every due date.
//
// Due dates follow FirstDueDate and then the due day of each following month.
// Periods on or before the last confirmed payment are skipped. Interest uses
// the same ACT/365F rule as Calculate, accruing from the last confirmed payment
// (or the start date). The final installment is trimmed so the balance lands
// exactly on zero. maxPeriods is capped at DefaultMaxPeriods.
func ProjectSchedule(
	terms LoanTerms,
	result AmortizationResult,
	monthly decimal.Decimal,
	maxPeriods int,
) Projection {
	balance := money.Quantize(result.RemainingBalance)
	if !balance.IsPositive() {
		return Projection{Converges: true}
	}
	if !monthly.IsPositive() || terms.AnnualRatePercent.IsNegative() {
		return Projection{}
	}
	if maxPeriods <= 0 || maxPeriods > DefaultMaxPeriods {
		maxPeriods = DefaultMaxPeriods
	}

	cal, ok := newDueCalendar(terms)
	if !ok {
		return Projection{}
	}

	var prev *valueobject.Date
	switch {
	case result.LastPaymentDate != nil:
		prev = result.LastPaymentDate
	case terms.StartDate != nil:
		prev = terms.StartDate
	}

	k := 0
	if prev != nil {
		k, _ = cal.firstOnOrAfter(prev.AddDays(1))
	} else {
		// No accrual baseline: the first installment carries no interest.
		prev = cal.period(0).Ptr()
	}

	rateYear := terms.AnnualRatePercent.Shift(-2)
	installment := money.Quantize(monthly)
	schedule := make([]ScheduleEntry, 0, min(maxPeriods, 64))

	for period := 1; period <= maxPeriods; period, k = period+1, k+1 {
		dueDate := cal.period(k)

		interest := accruedInterest(balance, rateYear, *prev, dueDate)
		payment := installment

		// Last period: pay exactly what is left.
		if owed := balance.Add(interest); payment.GreaterThanOrEqual(owed) {
			payment = owed
		}
		principalPart := payment.Sub(interest)

		if !principalPart.IsPositive() {
			// The installment does not even cover interest.
			schedule = append(schedule, ScheduleEntry{
				Period:           period,
				DueDate:          dueDate,
				Payment:          payment,
				Interest:         interest,
				Principal:        decimal.Zero,
				RemainingBalance: balance,
			})
			return Projection{Entries: schedule}
		}

		balance = money.Quantize(balance.Sub(principalPart))
		schedule = append(schedule, ScheduleEntry{
			Period:           period,
			DueDate:          dueDate,
			Payment:          payment,
			Interest:         interest,
			Principal:        principalPart,
			RemainingBalance: balance,
		})

		if balance.IsZero() {
			return Projection{Entries: schedule, Converges: true}
		}
		prev = dueDate.Ptr()
	}

	return Projection{Entries: schedule}
}
