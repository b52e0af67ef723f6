package clock

import (
	"time"

	"github.com/bibbank/bib/services/obligation-service/internal/domain/port"
)

var _ port.Clock = (*SystemClock)(nil)

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock returns a clock reporting time in loc. A nil loc means UTC.
func NewSystemClock(loc *time.Location) *SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return &SystemClock{loc: loc}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed is a clock stuck at one instant, for tests and replays.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
