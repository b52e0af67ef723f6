package valueobject

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatus is returned for unknown obligation statuses.
var ErrInvalidStatus = errors.New("invalid obligation status")

// ---------------------------------------------------------------------------
// ObligationStatus – immutable value object
// ---------------------------------------------------------------------------

// ObligationStatus is the lifecycle stage of an obligation block.
type ObligationStatus struct {
	value string
}

const (
	obligationStatusActive = "ACTIVE"
	obligationStatusClosed = "CLOSED"
)

var (
	ObligationStatusActive = ObligationStatus{value: obligationStatusActive}
	ObligationStatusClosed = ObligationStatus{value: obligationStatusClosed}
)

// Labels written by the budget UI are accepted as aliases.
var validObligationStatuses = map[string]ObligationStatus{
	obligationStatusActive: ObligationStatusActive,
	obligationStatusClosed: ObligationStatusClosed,
	"АКТИВНЫЙ":             ObligationStatusActive,
	"ЗАКРЫТ":               ObligationStatusClosed,
}

// NewObligationStatus parses a status string, ignoring case and surrounding space.
func NewObligationStatus(s string) (ObligationStatus, error) {
	v, ok := validObligationStatuses[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return ObligationStatus{}, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return v, nil
}

// String returns the canonical string representation of the status.
func (s ObligationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ObligationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ObligationStatus) Equal(other ObligationStatus) bool {
	return s.value == other.value
}
