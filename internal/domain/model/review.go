package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bibbank/bib/services/obligation-service/internal/domain/valueobject"
	"github.com/bibbank/bib/services/obligation-service/pkg/money"
)

// DefaultReviewGraceDays keeps the previous month under review during the
// first days of a new month.
const DefaultReviewGraceDays = 5

// BlockReview summarises one active block for the reviewed month.
type BlockReview struct {
	BlockID               string
	Title                 string
	PaymentsInMonthCount  int
	PaymentsInMonthAmount decimal.Decimal
	Remaining             decimal.Decimal
	ProgressPercent       decimal.Decimal
}

// ObligationReview is the obligations part of a monthly review.
type ObligationReview struct {
	Year                   int
	Month                  time.Month
	PaidCount              int
	TotalPaymentAmount     decimal.Decimal
	Blocks                 []BlockReview
	UpcomingPaymentsCount  int
	UpcomingPaymentsAmount decimal.Decimal
}

// ReviewMonthFor picks the month to review on a given day: the previous month
// while today's day of month is within graceDays, otherwise the current one.
func ReviewMonthFor(today valueobject.Date, graceDays int) (int, time.Month) {
	if today.Day() <= graceDays {
		prev := valueobject.NewDate(today.Year(), today.Month(), 1).AddDays(-1)
		return prev.Year(), prev.Month()
	}
	return today.Year(), today.Month()
}

// ReviewObligations summarises active blocks for the given month: confirmed
// payments dated inside the month, each block's remaining balance and
// progress, and the installments whose next payment date falls in the
// following month.
func ReviewObligations(blocks []ObligationBlock, year int, month time.Month) ObligationReview {
	monthStart := valueobject.NewDate(year, month, 1)
	monthEnd := MonthEnd(monthStart)
	nextStart := monthEnd.AddDays(1)
	nextEnd := MonthEnd(nextStart)

	review := ObligationReview{
		Year:                   monthStart.Year(),
		Month:                  monthStart.Month(),
		TotalPaymentAmount:     decimal.Zero,
		Blocks:                 []BlockReview{},
		UpcomingPaymentsAmount: decimal.Zero,
	}

	for _, b := range blocks {
		if !b.IsActive() {
			continue
		}

		count := 0
		amount := decimal.Zero
		for _, p := range b.payments {
			if !p.Confirmed || p.Date == nil || !within(*p.Date, monthStart, monthEnd) {
				continue
			}
			count++
			amount = money.Quantize(amount.Add(p.Amount))
		}
		review.PaidCount += count
		review.TotalPaymentAmount = money.Quantize(review.TotalPaymentAmount.Add(amount))

		metrics := b.Metrics()
		review.Blocks = append(review.Blocks, BlockReview{
			BlockID:               b.ID(),
			Title:                 b.Title(),
			PaymentsInMonthCount:  count,
			PaymentsInMonthAmount: amount,
			Remaining:             metrics.RemainingBalance,
			ProgressPercent:       metrics.ProgressPercent,
		})

		if b.nextPayment != nil && within(*b.nextPayment, nextStart, nextEnd) {
			review.UpcomingPaymentsCount++
			review.UpcomingPaymentsAmount = money.Quantize(review.UpcomingPaymentsAmount.Add(b.monthly))
		}
	}

	return review
}

func within(d, from, to valueobject.Date) bool {
	return !d.Before(from) && !d.After(to)
}
