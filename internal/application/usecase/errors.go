package usecase

import (
	"errors"
	"fmt"

	"github.com/bibbank/bib/services/obligation-service/internal/domain/model"
)

// ErrInvalidRequest marks failures caused by the caller's input. The
// transport layer maps it to an invalid-argument status.
var ErrInvalidRequest = errors.New("invalid request")

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}

var (
	errMaxPeriods = fmt.Errorf("max_periods must be between 0 and %d", model.DefaultMaxPeriods)
	errDaysAhead  = errors.New("days_ahead must not be negative")
	errMonth      = errors.New("month must be between 1 and 12")
)
