package model

import (
	"cmp"
	"slices"

	"github.com/bibbank/bib/services/obligation-service/internal/domain/valueobject"
	"github.com/bibbank/bib/services/obligation-service/pkg/money"
)

// UrgencyThresholds classify how close a due date is, in days.
type UrgencyThresholds struct {
	UrgentWithinDays  int
	WarningWithinDays int
}

// DefaultUrgencyThresholds flag payments due today or tomorrow as urgent and
// within three days as a warning.
var DefaultUrgencyThresholds = UrgencyThresholds{UrgentWithinDays: 1, WarningWithinDays: 3}

// UpcomingPayment is a reminder for the next installment of a block.
type UpcomingPayment struct {
	BlockID     string
	BlockTitle  string
	PaymentDate valueobject.Date
	Amount      money.Money
	DaysUntil   int
	IsUrgent    bool
	IsWarning   bool
}

// UpcomingPayments lists the next due installment of every active block that
// still has a balance, when it falls within daysAhead days of today. Due
// dates already in the past roll forward to the next month's due day.
// Results are ordered by date, then block ID.
func UpcomingPayments(
	blocks []ObligationBlock,
	today valueobject.Date,
	daysAhead int,
	th UrgencyThresholds,
) []UpcomingPayment {
	daysAhead = max(0, daysAhead)

	var out []UpcomingPayment
	for _, b := range blocks {
		if !b.IsActive() {
			continue
		}
		if !b.Metrics().RemainingBalance.IsPositive() {
			continue
		}

		cal, ok := newDueCalendar(b.Terms())
		if !ok {
			continue
		}
		_, due := cal.firstOnOrAfter(today)

		days := due.DaysSince(today)
		if days > daysAhead {
			continue
		}

		urgent := days <= th.UrgentWithinDays
		out = append(out, UpcomingPayment{
			BlockID:     b.ID(),
			BlockTitle:  b.Title(),
			PaymentDate: due,
			Amount:      b.MonthlyPayment(),
			DaysUntil:   days,
			IsUrgent:    urgent,
			IsWarning:   !urgent && days <= th.WarningWithinDays,
		})
	}

	slices.SortFunc(out, func(a, b UpcomingPayment) int {
		if c := a.PaymentDate.Compare(b.PaymentDate); c != 0 {
			return c
		}
		return cmp.Compare(a.BlockID, b.BlockID)
	})
	return out
}
