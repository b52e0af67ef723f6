package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/bib/services/obligation-service/internal/application/dto"
	"github.com/bibbank/bib/services/obligation-service/internal/application/usecase"
	"github.com/bibbank/bib/services/obligation-service/internal/domain/model"
	"github.com/bibbank/bib/services/obligation-service/pkg/testutil"
)

func reviewBlocks() []dto.ObligationBlockRequest {
	mortgage := interestFree("mortgage", 15)
	mortgage.NextPayment = day("2024-04-15")
	mortgage.Payments = []dto.ObligationPaymentDTO{
		confirmed(1, "2024-02-29", "100"),
		confirmed(2, "2024-03-05", "100"),
		confirmed(3, "2024-03-31", "50"),
	}
	closed := interestFree("closed", 15)
	closed.Status = "CLOSED"
	closed.Payments = []dto.ObligationPaymentDTO{confirmed(1, "2024-03-10", "500")}
	return []dto.ObligationBlockRequest{mortgage, closed}
}

func TestMonthlyReviewUseCase_Execute(t *testing.T) {
	t.Run("grace period selects the previous month", func(t *testing.T) {
		uc := usecase.NewMonthlyReviewUseCase(clockAt("2024-04-03"), model.DefaultReviewGraceDays)

		resp, err := uc.Execute(context.Background(), dto.MonthlyReviewRequest{Blocks: reviewBlocks()})

		require.NoError(t, err)
		assert.Equal(t, 2024, resp.Year)
		assert.Equal(t, 3, resp.Month)
		assert.Equal(t, 2, resp.PaidCount)
		testutil.AssertCents(t, "150.00", resp.TotalPaymentAmount)
		assert.Equal(t, 1, resp.UpcomingPaymentsCount)
		testutil.AssertCents(t, "100.00", resp.UpcomingPaymentsAmount)

		require.Len(t, resp.Blocks, 1)
		b := resp.Blocks[0]
		assert.Equal(t, "mortgage", b.BlockID)
		assert.Equal(t, 2, b.PaymentsInMonthCount)
		testutil.AssertCents(t, "750.00", b.Remaining)
		testutil.AssertCents(t, "25.00", b.ProgressPct)
	})

	t.Run("explicit month wins over the clock", func(t *testing.T) {
		uc := usecase.NewMonthlyReviewUseCase(clockAt("2024-04-03"), model.DefaultReviewGraceDays)

		resp, err := uc.Execute(context.Background(), dto.MonthlyReviewRequest{
			Blocks: reviewBlocks(),
			Year:   2024,
			Month:  2,
		})

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Month)
		assert.Equal(t, 1, resp.PaidCount)
		testutil.AssertCents(t, "100.00", resp.TotalPaymentAmount)
		assert.Equal(t, 0, resp.UpcomingPaymentsCount)
	})

	t.Run("request today replaces the clock", func(t *testing.T) {
		uc := usecase.NewMonthlyReviewUseCase(clockAt("2024-04-03"), model.DefaultReviewGraceDays)

		resp, err := uc.Execute(context.Background(), dto.MonthlyReviewRequest{Today: day("2024-01-02")})

		require.NoError(t, err)
		assert.Equal(t, 2023, resp.Year)
		assert.Equal(t, 12, resp.Month)
		assert.NotNil(t, resp.Blocks)
	})

	t.Run("rejects an out-of-range month", func(t *testing.T) {
		uc := usecase.NewMonthlyReviewUseCase(clockAt("2024-04-03"), model.DefaultReviewGraceDays)

		_, err := uc.Execute(context.Background(), dto.MonthlyReviewRequest{Year: 2024, Month: 13})

		assert.ErrorIs(t, err, usecase.ErrInvalidRequest)
	})
}
