package usecase

import (
	"fmt"

	"github.com/bibbank/bib/services/obligation-service/internal/application/dto"
	"github.com/bibbank/bib/services/obligation-service/internal/domain/model"
)

func toBlock(req dto.ObligationBlockRequest) (model.ObligationBlock, error) {
	block, err := model.NewObligationBlock(model.BlockParams{
		ID:          req.ID,
		Title:       req.Title,
		Currency:    req.Currency,
		Total:       req.Total,
		Monthly:     req.Monthly,
		Rate:        req.Rate,
		DueDay:      req.DueDay,
		StartDate:   req.StartDate,
		NextPayment: req.NextPayment,
		CloseDate:   req.CloseDate,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		return model.ObligationBlock{}, err
	}
	if len(req.Payments) == 0 {
		return block, nil
	}

	payments := make([]model.ObligationPayment, len(req.Payments))
	for i, p := range req.Payments {
		payments[i] = model.ObligationPayment{
			ID: p.ID,
			PaymentRecord: model.PaymentRecord{
				SequenceNumber: p.N,
				Confirmed:      p.OK,
				Date:           p.Date,
				Amount:         p.Amount,
			},
			Note: p.Note,
		}
	}
	return block.WithPayments(payments)
}

func toBlocks(reqs []dto.ObligationBlockRequest) ([]model.ObligationBlock, error) {
	blocks := make([]model.ObligationBlock, len(reqs))
	for i, r := range reqs {
		b, err := toBlock(r)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		blocks[i] = b
	}
	return blocks, nil
}

func toPaymentDTOs(payments []model.ObligationPayment) []dto.ObligationPaymentDTO {
	out := make([]dto.ObligationPaymentDTO, len(payments))
	for i, p := range payments {
		out[i] = dto.ObligationPaymentDTO{
			ID:     p.ID,
			N:      p.SequenceNumber,
			OK:     p.Confirmed,
			Date:   p.Date,
			Amount: p.Amount,
			Note:   p.Note,
		}
	}
	return out
}

func toBlockResponse(b model.ObligationBlock, r model.AmortizationResult) dto.ObligationBlockResponse {
	return dto.ObligationBlockResponse{
		ID:              b.ID(),
		Title:           b.Title(),
		Currency:        b.Currency().Code(),
		Total:           b.Total(),
		Monthly:         b.Monthly(),
		Rate:            b.Rate(),
		DueDay:          b.DueDay(),
		StartDate:       b.StartDate(),
		NextPayment:     b.NextPayment(),
		CloseDate:       b.CloseDate(),
		Status:          b.Status().String(),
		Notes:           b.Notes(),
		Payments:        toPaymentDTOs(b.Payments()),
		PaidTotal:       r.PaidTotal,
		PaidInterest:    r.PaidInterest,
		PaidPrincipal:   r.PaidPrincipal,
		Remaining:       r.RemainingBalance,
		ProgressPct:     r.ProgressPercent,
		LastPaymentDate: r.LastPaymentDate,
		FirstDueDate:    model.FirstDueDate(b.Terms()),
	}
}

func toScheduleResponse(entries []model.ScheduleEntry) []dto.ScheduleEntryResponse {
	out := make([]dto.ScheduleEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = dto.ScheduleEntryResponse{
			Period:           e.Period,
			DueDate:          e.DueDate,
			Payment:          e.Payment,
			Interest:         e.Interest,
			Principal:        e.Principal,
			RemainingBalance: e.RemainingBalance,
		}
	}
	return out
}
