package model

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/bibbank/bib/services/obligation-service/internal/domain/valueobject"
	"github.com/bibbank/bib/services/obligation-service/pkg/money"
)

var (
	hundred    = decimal.NewFromInt(100)
	daysInYear = decimal.NewFromInt(365)
)

// LoanTerms describes the economics of an installment obligation.
type LoanTerms struct {
	Total             decimal.Decimal // principal, 2 fractional digits
	AnnualRatePercent decimal.Decimal // 12.5 means 12.5% a year
	DueDay            int             // 0 means DefaultDueDay
	StartDate         *valueobject.Date
	NextPayment       *valueobject.Date
}

func (t LoanTerms) effectiveDueDay() int {
	if t.DueDay == 0 {
		return DefaultDueDay
	}
	return t.DueDay
}

// PaymentRecord is one installment line of an obligation.
type PaymentRecord struct {
	SequenceNumber int
	Confirmed      bool
	Date           *valueobject.Date
	Amount         decimal.Decimal
}

func (p PaymentRecord) qualifies() bool {
	return p.Confirmed && p.Date != nil && p.Amount.IsPositive()
}

// AmortizationResult holds the metrics derived from the confirmed payments.
// Every amount is in whole cents.
type AmortizationResult struct {
	PaidTotal        decimal.Decimal
	PaidInterest     decimal.Decimal
	PaidPrincipal    decimal.Decimal
	RemainingBalance decimal.Decimal
	ProgressPercent  decimal.Decimal

	// LastPaymentDate is the date of the latest qualifying payment, nil when
	// none qualified. Interest accrues again from this date.
	LastPaymentDate *valueobject.Date
}

// Calculate replays the confirmed payments against the loan terms.
//
// Interest accrues daily on the outstanding balance using an actual/365 fixed
// day count. Each payment settles accrued interest first and the remainder
// reduces principal, never by more than the outstanding balance. Every
// intermediate amount is rounded half-up to cents before it is used again.
//
// Calculate is pure: the same inputs always give the same result.
func Calculate(terms LoanTerms, payments []PaymentRecord) AmortizationResult {
	if !terms.Total.IsPositive() || terms.AnnualRatePercent.IsNegative() {
		return AmortizationResult{
			PaidTotal:        decimal.Zero,
			PaidInterest:     decimal.Zero,
			PaidPrincipal:    decimal.Zero,
			RemainingBalance: decimal.Max(decimal.Zero, terms.Total),
			ProgressPercent:  decimal.Zero,
		}
	}

	qualifying := make([]PaymentRecord, 0, len(payments))
	for _, p := range payments {
		if p.qualifies() {
			qualifying = append(qualifying, p)
		}
	}

	if len(qualifying) == 0 {
		return AmortizationResult{
			PaidTotal:        decimal.Zero,
			PaidInterest:     decimal.Zero,
			PaidPrincipal:    decimal.Zero,
			RemainingBalance: money.Quantize(terms.Total),
			ProgressPercent:  decimal.Zero,
		}
	}

	slices.SortStableFunc(qualifying, func(a, b PaymentRecord) int {
		if c := a.Date.Compare(*b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.SequenceNumber, b.SequenceNumber)
	})

	acc := accrual{
		rateYear:      terms.AnnualRatePercent.Shift(-2),
		balance:       money.Quantize(terms.Total),
		paidTotal:     decimal.Zero,
		paidInterest:  decimal.Zero,
		paidPrincipal: decimal.Zero,
		prev:          *qualifying[0].Date,
	}
	if terms.StartDate != nil {
		acc.prev = *terms.StartDate
	}

	for _, p := range qualifying {
		acc = acc.apply(*p.Date, p.Amount)
	}

	return AmortizationResult{
		PaidTotal:        acc.paidTotal,
		PaidInterest:     acc.paidInterest,
		PaidPrincipal:    acc.paidPrincipal,
		RemainingBalance: acc.balance,
		ProgressPercent:  progressPercent(acc.paidPrincipal, terms.Total),
		LastPaymentDate:  acc.prev.Ptr(),
	}
}

// accrual is the running state of the payment replay.
type accrual struct {
	rateYear      decimal.Decimal
	balance       decimal.Decimal
	paidTotal     decimal.Decimal
	paidInterest  decimal.Decimal
	paidPrincipal decimal.Decimal
	prev          valueobject.Date
}

// apply settles one payment and returns the next state.
func (a accrual) apply(on valueobject.Date, amount decimal.Decimal) accrual {
	interestDue := accruedInterest(a.balance, a.rateYear, a.prev, on)
	amt := money.Quantize(amount)

	interestPart := decimal.Min(amt, interestDue)
	principalPart := decimal.Min(amt.Sub(interestPart), a.balance)

	next := a
	next.balance = money.Quantize(a.balance.Sub(principalPart))
	next.paidInterest = money.Quantize(a.paidInterest.Add(interestPart))
	next.paidPrincipal = money.Quantize(a.paidPrincipal.Add(principalPart))
	next.paidTotal = money.Quantize(a.paidTotal.Add(amt))
	next.prev = on
	return next
}

// accruedInterest is simple ACT/365F interest on balance between two dates,
// rounded to cents. Out-of-order dates accrue nothing.
func accruedInterest(balance, rateYear decimal.Decimal, from, to valueobject.Date) decimal.Decimal {
	days := max(0, to.DaysSince(from))
	return balance.Mul(rateYear).Mul(decimal.NewFromInt(int64(days))).DivRound(daysInYear, money.Places)
}

func progressPercent(paidPrincipal, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return paidPrincipal.Mul(hundred).DivRound(total, money.Places)
}
