package testutil

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fixed block ids for deterministic testing.
var (
	TestBlockID1 = uuid.MustParse("00000000-0000-0000-0000-000000000001").String()
	TestBlockID2 = uuid.MustParse("00000000-0000-0000-0000-000000000002").String()
)

// Dec parses a decimal literal and panics on malformed input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
