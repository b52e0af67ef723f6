package model

import (
	"time"

	"github.com/bibbank/bib/services/obligation-service/internal/domain/valueobject"
)

// DefaultDueDay is used when a block has no due day configured.
const DefaultDueDay = 15

// NextBusinessDay moves Saturday and Sunday forward to the following Monday.
// Holidays are not considered.
func NextBusinessDay(d valueobject.Date) valueobject.Date {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(2)
	case time.Sunday:
		return d.AddDays(1)
	default:
		return d
	}
}

// MonthEnd returns the last calendar day of d's month.
func MonthEnd(d valueobject.Date) valueobject.Date {
	return valueobject.NewDate(d.Year(), d.Month()+1, 1).AddDays(-1)
}

// DueDateForMonth places dueDay inside the given month, clamping it to the
// month length, and then shifts weekends to Monday. The shift may carry the
// result up to two days into the next month.
func DueDateForMonth(year int, month time.Month, dueDay int) valueobject.Date {
	first := valueobject.NewDate(year, month, 1)
	day := min(dueDay, MonthEnd(first).Day())
	if day < 1 {
		day = 1
	}
	return NextBusinessDay(valueobject.NewDate(first.Year(), first.Month(), day))
}

// FirstDueDate returns the first payment due date implied by the terms, or nil
// when neither an explicit next payment nor a start date is known.
func FirstDueDate(terms LoanTerms) *valueobject.Date {
	if terms.NextPayment != nil {
		return NextBusinessDay(*terms.NextPayment).Ptr()
	}
	if terms.StartDate == nil {
		return nil
	}
	next := valueobject.NewDate(terms.StartDate.Year(), terms.StartDate.Month()+1, 1)
	return DueDateForMonth(next.Year(), next.Month(), terms.effectiveDueDay()).Ptr()
}

// dueCalendar yields the due date of period k, counted from the first due date.
// Period 0 is FirstDueDate; later periods fall on the due day of each
// following month.
type dueCalendar struct {
	first  valueobject.Date
	anchor valueobject.Date // first day of period 0's month
	dueDay int
}

func newDueCalendar(terms LoanTerms) (dueCalendar, bool) {
	first := FirstDueDate(terms)
	if first == nil {
		return dueCalendar{}, false
	}

	var anchor valueobject.Date
	if terms.NextPayment != nil {
		anchor = valueobject.NewDate(terms.NextPayment.Year(), terms.NextPayment.Month(), 1)
	} else {
		anchor = valueobject.NewDate(terms.StartDate.Year(), terms.StartDate.Month()+1, 1)
	}

	cal := dueCalendar{first: *first, anchor: anchor, dueDay: terms.effectiveDueDay()}
	// A weekend shift can push the first due date into the next month, onto
	// or past that month's own due date.
	if !cal.period(1).After(cal.first) {
		cal.anchor = valueobject.NewDate(anchor.Year(), anchor.Month()+1, 1)
	}
	return cal, true
}

func (c dueCalendar) period(k int) valueobject.Date {
	if k == 0 {
		return c.first
	}
	month := valueobject.NewDate(c.anchor.Year(), c.anchor.Month()+time.Month(k), 1)
	return DueDateForMonth(month.Year(), month.Month(), c.dueDay)
}

// firstOnOrAfter returns the earliest period whose due date is not before day.
func (c dueCalendar) firstOnOrAfter(day valueobject.Date) (int, valueobject.Date) {
	if !c.first.Before(day) {
		return 0, c.first
	}
	// Periods sit in consecutive months, so nothing earlier than the month
	// before day's month can qualify.
	k := max(1, monthsBetween(c.anchor, day)-1)
	for {
		due := c.period(k)
		if !due.Before(day) {
			return k, due
		}
		k++
	}
}

func monthsBetween(from, to valueobject.Date) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
