package port

import "time"

// ---------------------------------------------------------------------------
// Clock port (driven/secondary adapter)
// ---------------------------------------------------------------------------

// Clock supplies the current instant. Use cases read "today" through it so
// that date-relative features stay deterministic under test.
type Clock interface {
	Now() time.Time
}
