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

func TestUpcomingPaymentsUseCase_Execute(t *testing.T) {
	blocks := []dto.ObligationBlockRequest{interestFree("fifteenth", 15), interestFree("fourteenth", 14)}

	t.Run("uses the clock and configured window", func(t *testing.T) {
		uc := usecase.NewUpcomingPaymentsUseCase(clockAt("2024-03-13"), 7, model.DefaultUrgencyThresholds)

		resp, err := uc.Execute(context.Background(), dto.UpcomingPaymentsRequest{Blocks: blocks})

		require.NoError(t, err)
		assert.Equal(t, "2024-03-13", resp.Today.String())
		assert.Equal(t, 7, resp.DaysAhead)
		require.Len(t, resp.Payments, 2)

		first := resp.Payments[0]
		assert.Equal(t, "fourteenth", first.BlockID)
		assert.Equal(t, "Block fourteenth", first.BlockTitle)
		assert.Equal(t, "2024-03-14", first.PaymentDate.String())
		testutil.AssertCents(t, "100.00", first.Amount)
		assert.Equal(t, "RUB", first.Currency)
		assert.Equal(t, 1, first.DaysUntil)
		assert.True(t, first.IsUrgent)
		assert.False(t, first.IsWarning)

		second := resp.Payments[1]
		assert.Equal(t, "fifteenth", second.BlockID)
		assert.Equal(t, 2, second.DaysUntil)
		assert.True(t, second.IsWarning)
	})

	t.Run("request overrides today and window", func(t *testing.T) {
		uc := usecase.NewUpcomingPaymentsUseCase(clockAt("2024-01-01"), 7, model.DefaultUrgencyThresholds)
		zero := 0

		resp, err := uc.Execute(context.Background(), dto.UpcomingPaymentsRequest{
			Blocks:    blocks,
			Today:     day("2024-03-15"),
			DaysAhead: &zero,
		})

		require.NoError(t, err)
		require.Len(t, resp.Payments, 1)
		assert.Equal(t, "fifteenth", resp.Payments[0].BlockID)
		assert.Equal(t, 0, resp.Payments[0].DaysUntil)
		assert.True(t, resp.Payments[0].IsUrgent)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		uc := usecase.NewUpcomingPaymentsUseCase(clockAt("2024-03-13"), 7, model.DefaultUrgencyThresholds)

		resp, err := uc.Execute(context.Background(), dto.UpcomingPaymentsRequest{})

		require.NoError(t, err)
		assert.NotNil(t, resp.Payments)
		assert.Empty(t, resp.Payments)
	})

	t.Run("rejects a negative window", func(t *testing.T) {
		uc := usecase.NewUpcomingPaymentsUseCase(clockAt("2024-03-13"), 7, model.DefaultUrgencyThresholds)
		negative := -1

		_, err := uc.Execute(context.Background(), dto.UpcomingPaymentsRequest{Blocks: blocks, DaysAhead: &negative})

		assert.ErrorIs(t, err, usecase.ErrInvalidRequest)
	})

	t.Run("names the invalid block", func(t *testing.T) {
		uc := usecase.NewUpcomingPaymentsUseCase(clockAt("2024-03-13"), 7, model.DefaultUrgencyThresholds)
		bad := interestFree("bad", 15)
		bad.Status = "PAUSED"

		_, err := uc.Execute(context.Background(), dto.UpcomingPaymentsRequest{
			Blocks: []dto.ObligationBlockRequest{blocks[0], bad},
		})

		assert.ErrorIs(t, err, usecase.ErrInvalidRequest)
		testutil.AssertErrorContains(t, err, "block 1")
	})
}
