package usecase

import (
	"context"
	"log/slog"

	"github.com/bibbank/bib/services/obligation-service/internal/application/dto"
	"github.com/bibbank/bib/services/obligation-service/internal/domain/model"
)

// PreviewObligationUseCase normalises a block and derives its metrics
// without storing anything.
type PreviewObligationUseCase struct {
	logger *slog.Logger
}

// NewPreviewObligationUseCase wires dependencies.
func NewPreviewObligationUseCase(logger *slog.Logger) *PreviewObligationUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &PreviewObligationUseCase{logger: logger}
}

// Execute validates the block, replays its confirmed payments and, when
// asked, projects the remaining installments.
func (uc *PreviewObligationUseCase) Execute(
	ctx context.Context,
	req dto.ObligationBlockRequest,
) (dto.ObligationBlockResponse, error) {
	if err := ctx.Err(); err != nil {
		return dto.ObligationBlockResponse{}, err
	}
	if req.MaxPeriods < 0 || req.MaxPeriods > model.DefaultMaxPeriods {
		return dto.ObligationBlockResponse{}, invalid(errMaxPeriods)
	}

	block, err := toBlock(req)
	if err != nil {
		return dto.ObligationBlockResponse{}, invalid(err)
	}

	result := block.Metrics()
	resp := toBlockResponse(block, result)

	if req.IncludeSchedule {
		projection := block.Project(result, req.MaxPeriods)
		resp.Schedule = toScheduleResponse(projection.Entries)
		resp.ScheduleConverges = projection.Converges
		resp.PayoffDate = projection.PayoffDate()
		if !projection.Converges && result.RemainingBalance.IsPositive() {
			uc.logger.DebugContext(ctx, "projection does not retire the balance",
				"block_id", block.ID(),
				"monthly", block.MonthlyPayment().String(),
				"remaining", result.RemainingBalance.String(),
				"periods", len(projection.Entries),
			)
		}
	}

	return resp, nil
}
