package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/bib/services/obligation-service/internal/domain/model"
)

func TestProjectSchedule_ZeroRate(t *testing.T) {
	terms := model.LoanTerms{Total: dec("1200"), AnnualRatePercent: decimal.Zero, StartDate: day("2024-01-10")}
	result := model.Calculate(terms, nil)

	p := model.ProjectSchedule(terms, result, dec("100"), 0)

	require.Len(t, p.Entries, 12)
	assert.True(t, p.Converges)

	wantDates := []string{
		"2024-02-15", "2024-03-15", "2024-04-15", "2024-05-15",
		"2024-06-17", "2024-07-15", "2024-08-15", "2024-09-16",
		"2024-10-15", "2024-11-15", "2024-12-16", "2025-01-15",
	}
	for i, e := range p.Entries {
		assert.Equal(t, i+1, e.Period)
		assert.Equal(t, wantDates[i], e.DueDate.String(), "period %d", e.Period)
		assertCents(t, "100.00", e.Payment, "payment")
		assertCents(t, "0.00", e.Interest, "interest")
	}
	assertCents(t, "0.00", p.Entries[11].RemainingBalance, "final balance")

	payoff := p.PayoffDate()
	require.NotNil(t, payoff)
	assert.Equal(t, "2025-01-15", payoff.String())
}

func TestProjectSchedule_WithInterestTrimsLastInstallment(t *testing.T) {
	terms := model.LoanTerms{
		Total:             dec("1000"),
		AnnualRatePercent: dec("12"),
		DueDay:            31,
		StartDate:         day("2024-01-01"),
	}

	p := model.ProjectSchedule(terms, model.Calculate(terms, nil), dec("500"), 0)

	require.Len(t, p.Entries, 3)
	assert.True(t, p.Converges)

	want := []struct{ due, interest, payment, principal, remaining string }{
		{"2024-02-29", "19.40", "500.00", "480.60", "519.40"},
		{"2024-04-01", "5.46", "500.00", "494.54", "24.86"},
		{"2024-04-30", "0.24", "25.10", "24.86", "0.00"},
	}
	for i, w := range want {
		e := p.Entries[i]
		assert.Equal(t, w.due, e.DueDate.String())
		assertCents(t, w.interest, e.Interest, "interest")
		assertCents(t, w.payment, e.Payment, "payment")
		assertCents(t, w.principal, e.Principal, "principal")
		assertCents(t, w.remaining, e.RemainingBalance, "remaining")
	}
}

func TestProjectSchedule_ContinuesAfterLastPayment(t *testing.T) {
	terms := standardTerms()
	result := model.Calculate(terms, []model.PaymentRecord{paid(1, "2024-01-31", "500")})

	p := model.ProjectSchedule(terms, result, dec("500"), 0)

	require.NotEmpty(t, p.Entries)
	first := p.Entries[0]
	assert.Equal(t, "2024-02-15", first.DueDate.String())
	assertCents(t, "47.34", first.Interest, "interest on 9598.63 for 15 days")
	assertCents(t, "452.66", first.Principal, "principal")
	assert.True(t, p.Converges)
}

func TestProjectSchedule_InstallmentBelowInterest(t *testing.T) {
	p := model.ProjectSchedule(standardTerms(), model.Calculate(standardTerms(), nil), dec("50"), 0)

	require.Len(t, p.Entries, 1)
	assert.False(t, p.Converges)
	assertCents(t, "147.95", p.Entries[0].Interest, "interest")
	assertCents(t, "0.00", p.Entries[0].Principal, "principal")
	assert.Nil(t, p.PayoffDate())
}

func TestProjectSchedule_Degenerate(t *testing.T) {
	t.Run("nothing outstanding", func(t *testing.T) {
		terms := model.LoanTerms{Total: decimal.Zero, StartDate: day("2024-01-01")}
		p := model.ProjectSchedule(terms, model.Calculate(terms, nil), dec("100"), 0)
		assert.Empty(t, p.Entries)
		assert.True(t, p.Converges)
	})

	t.Run("no monthly amount", func(t *testing.T) {
		p := model.ProjectSchedule(standardTerms(), model.Calculate(standardTerms(), nil), decimal.Zero, 0)
		assert.Empty(t, p.Entries)
		assert.False(t, p.Converges)
	})

	t.Run("no due date basis", func(t *testing.T) {
		terms := model.LoanTerms{Total: dec("1000"), AnnualRatePercent: dec("5")}
		p := model.ProjectSchedule(terms, model.Calculate(terms, nil), dec("100"), 0)
		assert.Empty(t, p.Entries)
		assert.False(t, p.Converges)
	})

	t.Run("period cap", func(t *testing.T) {
		terms := model.LoanTerms{Total: dec("1200"), AnnualRatePercent: decimal.Zero, StartDate: day("2024-01-10")}
		p := model.ProjectSchedule(terms, model.Calculate(terms, nil), dec("100"), 5)
		assert.Len(t, p.Entries, 5)
		assert.False(t, p.Converges)
	})

	t.Run("requested periods above the cap are clamped", func(t *testing.T) {
		terms := model.LoanTerms{Total: dec("100000000"), AnnualRatePercent: decimal.Zero, StartDate: day("2024-01-01")}
		p := model.ProjectSchedule(terms, model.Calculate(terms, nil), dec("0.01"), 3_000_000)
		require.Len(t, p.Entries, model.DefaultMaxPeriods)
		assert.False(t, p.Converges)
		assert.Equal(t, "2074-01-15", p.Entries[len(p.Entries)-1].DueDate.String())
	})
}

func TestProjectSchedule_WeekendShiftIntoNextMonth(t *testing.T) {
	tests := []struct {
		name   string
		dueDay int
		want   []string
	}{
		{"small due day skips the month already covered", 1, []string{"2024-09-02", "2024-10-01", "2024-11-01"}},
		{"late due day keeps the following month", 31, []string{"2024-09-02", "2024-09-30", "2024-10-31"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := model.LoanTerms{
				Total:             dec("300"),
				AnnualRatePercent: decimal.Zero,
				DueDay:            tt.dueDay,
				NextPayment:       day("2024-08-31"),
			}

			p := model.ProjectSchedule(terms, model.Calculate(terms, nil), dec("100"), 0)

			require.Len(t, p.Entries, len(tt.want))
			for i, e := range p.Entries {
				assert.Equal(t, tt.want[i], e.DueDate.String(), "period %d", e.Period)
				if i > 0 {
					assert.True(t, e.DueDate.After(p.Entries[i-1].DueDate))
				}
			}
			assert.True(t, p.Converges)
		})
	}
}
