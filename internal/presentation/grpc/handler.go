package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/bib/services/obligation-service/internal/application/usecase"
)

// ObligationHandler is the gRPC handler for obligation calculations.
type ObligationHandler struct {
	UnimplementedObligationServiceServer

	preview  *usecase.PreviewObligationUseCase
	upcoming *usecase.UpcomingPaymentsUseCase
	review   *usecase.MonthlyReviewUseCase
	logger   *slog.Logger
}

// NewObligationHandler creates a new handler with all use-case dependencies.
func NewObligationHandler(
	preview *usecase.PreviewObligationUseCase,
	upcoming *usecase.UpcomingPaymentsUseCase,
	review *usecase.MonthlyReviewUseCase,
	logger *slog.Logger,
) *ObligationHandler {
	return &ObligationHandler{
		preview:  preview,
		upcoming: upcoming,
		review:   review,
		logger:   logger,
	}
}

// PreviewObligation returns a block with its derived metrics.
func (h *ObligationHandler) PreviewObligation(
	ctx context.Context,
	req *PreviewObligationRequest,
) (*PreviewObligationResponse, error) {
	resp, err := h.preview.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "preview obligation", err)
	}
	return &resp, nil
}

// ListUpcomingPayments returns installments due within the window.
func (h *ObligationHandler) ListUpcomingPayments(
	ctx context.Context,
	req *ListUpcomingPaymentsRequest,
) (*ListUpcomingPaymentsResponse, error) {
	resp, err := h.upcoming.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "list upcoming payments", err)
	}
	return &resp, nil
}

// ReviewMonth returns the obligations section of a monthly review.
func (h *ObligationHandler) ReviewMonth(
	ctx context.Context,
	req *ReviewMonthRequest,
) (*ReviewMonthResponse, error) {
	resp, err := h.review.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "review month", err)
	}
	return &resp, nil
}

func (h *ObligationHandler) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		h.logger.ErrorContext(ctx, op+" failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
