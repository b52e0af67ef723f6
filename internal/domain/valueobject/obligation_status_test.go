package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/bib/services/obligation-service/internal/domain/valueobject"
)

func TestNewObligationStatus(t *testing.T) {
	tests := []struct {
		input string
		want  valueobject.ObligationStatus
	}{
		{"ACTIVE", valueobject.ObligationStatusActive},
		{"active", valueobject.ObligationStatusActive},
		{"  Closed ", valueobject.ObligationStatusClosed},
		{"Активный", valueobject.ObligationStatusActive},
		{"Закрыт", valueobject.ObligationStatusClosed},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := valueobject.NewObligationStatus(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestNewObligationStatus_Invalid(t *testing.T) {
	for _, input := range []string{"", "PAID_OFF", "pending"} {
		_, err := valueobject.NewObligationStatus(input)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatus, "input %q", input)
	}
}

func TestObligationStatus_ZeroValue(t *testing.T) {
	var s valueobject.ObligationStatus
	assert.True(t, s.IsZero())
	assert.False(t, valueobject.ObligationStatusActive.IsZero())
	assert.Equal(t, "CLOSED", valueobject.ObligationStatusClosed.String())
}
