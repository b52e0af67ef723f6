package usecase_test

import (
	"time"

	"github.com/bibbank/bib/services/obligation-service/internal/application/dto"
	"github.com/bibbank/bib/services/obligation-service/internal/domain/valueobject"
	"github.com/bibbank/bib/services/obligation-service/pkg/testutil"
)

// fixedClock is a port.Clock stuck at one instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func clockAt(s string) fixedClock {
	d := valueobject.MustParseDate(s)
	return fixedClock{now: d.Time().Add(10 * time.Hour)}
}

var dec = testutil.Dec

func day(s string) *valueobject.Date { return valueobject.MustParseDate(s).Ptr() }

func confirmed(n int, on, amount string) dto.ObligationPaymentDTO {
	return dto.ObligationPaymentDTO{N: n, OK: true, Date: day(on), Amount: dec(amount)}
}

func loanRequest() dto.ObligationBlockRequest {
	return dto.ObligationBlockRequest{
		ID:        "loan-001",
		Title:     "Car loan",
		Total:     dec("10000"),
		Monthly:   dec("500"),
		Rate:      dec("12"),
		StartDate: day("2024-01-01"),
		Payments: []dto.ObligationPaymentDTO{
			confirmed(1, "2024-01-31", "500"),
			confirmed(2, "2024-03-01", "500"),
			{N: 3, Date: day("2024-04-01"), Amount: dec("500")},
		},
	}
}

func interestFree(id string, dueDay int) dto.ObligationBlockRequest {
	return dto.ObligationBlockRequest{
		ID:        id,
		Title:     "Block " + id,
		Total:     dec("1000"),
		Monthly:   dec("100"),
		DueDay:    dueDay,
		StartDate: day("2024-01-01"),
	}
}
