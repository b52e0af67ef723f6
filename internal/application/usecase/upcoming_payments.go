package usecase

import (
	"context"

	"github.com/bibbank/bib/services/obligation-service/internal/application/dto"
	"github.com/bibbank/bib/services/obligation-service/internal/domain/model"
	"github.com/bibbank/bib/services/obligation-service/internal/domain/port"
	"github.com/bibbank/bib/services/obligation-service/internal/domain/valueobject"
)

// UpcomingPaymentsUseCase lists installments due soon across blocks.
type UpcomingPaymentsUseCase struct {
	clock      port.Clock
	daysAhead  int
	thresholds model.UrgencyThresholds
}

// NewUpcomingPaymentsUseCase wires dependencies. daysAhead is used when a
// request does not set its own window.
func NewUpcomingPaymentsUseCase(
	clock port.Clock,
	daysAhead int,
	thresholds model.UrgencyThresholds,
) *UpcomingPaymentsUseCase {
	return &UpcomingPaymentsUseCase{
		clock:      clock,
		daysAhead:  daysAhead,
		thresholds: thresholds,
	}
}

func (uc *UpcomingPaymentsUseCase) Execute(
	ctx context.Context,
	req dto.UpcomingPaymentsRequest,
) (dto.UpcomingPaymentsResponse, error) {
	if err := ctx.Err(); err != nil {
		return dto.UpcomingPaymentsResponse{}, err
	}

	daysAhead := uc.daysAhead
	if req.DaysAhead != nil {
		if *req.DaysAhead < 0 {
			return dto.UpcomingPaymentsResponse{}, invalid(errDaysAhead)
		}
		daysAhead = *req.DaysAhead
	}

	today := valueobject.DateOf(uc.clock.Now())
	if req.Today != nil {
		today = *req.Today
	}

	blocks, err := toBlocks(req.Blocks)
	if err != nil {
		return dto.UpcomingPaymentsResponse{}, invalid(err)
	}

	upcoming := model.UpcomingPayments(blocks, today, daysAhead, uc.thresholds)

	payments := make([]dto.UpcomingPaymentResponse, len(upcoming))
	for i, u := range upcoming {
		payments[i] = dto.UpcomingPaymentResponse{
			BlockID:     u.BlockID,
			BlockTitle:  u.BlockTitle,
			PaymentDate: u.PaymentDate,
			Amount:      u.Amount.Amount(),
			Currency:    u.Amount.Currency().Code(),
			DaysUntil:   u.DaysUntil,
			IsUrgent:    u.IsUrgent,
			IsWarning:   u.IsWarning,
		}
	}

	return dto.UpcomingPaymentsResponse{
		Today:     today,
		DaysAhead: daysAhead,
		Payments:  payments,
	}, nil
}
