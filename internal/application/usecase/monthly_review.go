package usecase

import (
	"context"
	"time"

	"github.com/bibbank/bib/services/obligation-service/internal/application/dto"
	"github.com/bibbank/bib/services/obligation-service/internal/domain/model"
	"github.com/bibbank/bib/services/obligation-service/internal/domain/port"
	"github.com/bibbank/bib/services/obligation-service/internal/domain/valueobject"
)

// MonthlyReviewUseCase summarises obligation activity for one month.
type MonthlyReviewUseCase struct {
	clock     port.Clock
	graceDays int
}

// NewMonthlyReviewUseCase wires dependencies. graceDays keeps the previous
// month selected during the first days of a new one.
func NewMonthlyReviewUseCase(clock port.Clock, graceDays int) *MonthlyReviewUseCase {
	return &MonthlyReviewUseCase{clock: clock, graceDays: graceDays}
}

func (uc *MonthlyReviewUseCase) Execute(
	ctx context.Context,
	req dto.MonthlyReviewRequest,
) (dto.ObligationReviewResponse, error) {
	if err := ctx.Err(); err != nil {
		return dto.ObligationReviewResponse{}, err
	}
	if req.Month < 0 || req.Month > 12 {
		return dto.ObligationReviewResponse{}, invalid(errMonth)
	}

	year, month := req.Year, time.Month(req.Month)
	if year == 0 || month == 0 {
		today := valueobject.DateOf(uc.clock.Now())
		if req.Today != nil {
			today = *req.Today
		}
		year, month = model.ReviewMonthFor(today, uc.graceDays)
	}

	blocks, err := toBlocks(req.Blocks)
	if err != nil {
		return dto.ObligationReviewResponse{}, invalid(err)
	}

	review := model.ReviewObligations(blocks, year, month)

	items := make([]dto.BlockReviewResponse, len(review.Blocks))
	for i, b := range review.Blocks {
		items[i] = dto.BlockReviewResponse{
			BlockID:               b.BlockID,
			Title:                 b.Title,
			PaymentsInMonthCount:  b.PaymentsInMonthCount,
			PaymentsInMonthAmount: b.PaymentsInMonthAmount,
			Remaining:             b.Remaining,
			ProgressPct:           b.ProgressPercent,
		}
	}

	return dto.ObligationReviewResponse{
		Year:                   review.Year,
		Month:                  int(review.Month),
		PaidCount:              review.PaidCount,
		TotalPaymentAmount:     review.TotalPaymentAmount,
		Blocks:                 items,
		UpcomingPaymentsCount:  review.UpcomingPaymentsCount,
		UpcomingPaymentsAmount: review.UpcomingPaymentsAmount,
	}, nil
}
