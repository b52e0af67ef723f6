package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/bib/services/obligation-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// ObligationPaymentDTO is one installment line of a block.
type ObligationPaymentDTO struct {
	ID     string            `json:"id,omitempty"`
	N      int               `json:"n"`
	OK     bool              `json:"ok"`
	Date   *valueobject.Date `json:"date,omitempty"`
	Amount decimal.Decimal   `json:"amount"`
	Note   string            `json:"note,omitempty"`
}

// ObligationBlockRequest carries a block as the client holds it. Payments
// replace the twelve blank lines a new block starts with.
type ObligationBlockRequest struct {
	ID          string                 `json:"id,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Currency    string                 `json:"currency,omitempty"`
	Total       decimal.Decimal        `json:"total"`
	Monthly     decimal.Decimal        `json:"monthly"`
	Rate        decimal.Decimal        `json:"rate"`
	DueDay      int                    `json:"due_day,omitempty"`
	StartDate   *valueobject.Date      `json:"start_date,omitempty"`
	NextPayment *valueobject.Date      `json:"next_payment,omitempty"`
	CloseDate   *valueobject.Date      `json:"close_date,omitempty"`
	Status      string                 `json:"status,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
	Payments    []ObligationPaymentDTO `json:"payments,omitempty"`

	// IncludeSchedule asks for the projected remaining installments.
	IncludeSchedule bool `json:"include_schedule,omitempty"`
	// MaxPeriods caps the projection; 0 means the default cap.
	MaxPeriods int `json:"max_periods,omitempty"`
}

// UpcomingPaymentsRequest lists reminders for the given blocks. Today and
// DaysAhead fall back to the service clock and configuration.
type UpcomingPaymentsRequest struct {
	Blocks    []ObligationBlockRequest `json:"blocks"`
	Today     *valueobject.Date        `json:"today,omitempty"`
	DaysAhead *int                     `json:"days_ahead,omitempty"`
}

// MonthlyReviewRequest selects the month to review. When Year or Month is
// zero the month is derived from Today (or the service clock).
type MonthlyReviewRequest struct {
	Blocks []ObligationBlockRequest `json:"blocks"`
	Year   int                      `json:"year,omitempty"`
	Month  int                      `json:"month,omitempty"`
	Today  *valueobject.Date        `json:"today,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScheduleEntryResponse is one projected installment.
type ScheduleEntryResponse struct {
	Period           int              `json:"period"`
	DueDate          valueobject.Date `json:"due_date"`
	Payment          decimal.Decimal  `json:"payment"`
	Interest         decimal.Decimal  `json:"interest"`
	Principal        decimal.Decimal  `json:"principal"`
	RemainingBalance decimal.Decimal  `json:"remaining_balance"`
}

// ObligationBlockResponse is the normalised block with its derived metrics.
type ObligationBlockResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Currency    string                 `json:"currency"`
	Total       decimal.Decimal        `json:"total"`
	Monthly     decimal.Decimal        `json:"monthly"`
	Rate        decimal.Decimal        `json:"rate"`
	DueDay      int                    `json:"due_day"`
	StartDate   *valueobject.Date      `json:"start_date,omitempty"`
	NextPayment *valueobject.Date      `json:"next_payment,omitempty"`
	CloseDate   *valueobject.Date      `json:"close_date,omitempty"`
	Status      string                 `json:"status"`
	Notes       string                 `json:"notes"`
	Payments    []ObligationPaymentDTO `json:"payments"`

	PaidTotal       decimal.Decimal   `json:"paid_total"`
	PaidInterest    decimal.Decimal   `json:"paid_interest"`
	PaidPrincipal   decimal.Decimal   `json:"paid_principal"`
	Remaining       decimal.Decimal   `json:"remaining"`
	ProgressPct     decimal.Decimal   `json:"progress_pct"`
	LastPaymentDate *valueobject.Date `json:"last_payment_date,omitempty"`
	FirstDueDate    *valueobject.Date `json:"first_due_date,omitempty"`

	Schedule          []ScheduleEntryResponse `json:"schedule,omitempty"`
	ScheduleConverges bool                    `json:"schedule_converges,omitempty"`
	PayoffDate        *valueobject.Date       `json:"payoff_date,omitempty"`
}

// UpcomingPaymentResponse is a reminder for one block's next installment.
type UpcomingPaymentResponse struct {
	BlockID     string           `json:"block_id"`
	BlockTitle  string           `json:"block_title"`
	PaymentDate valueobject.Date `json:"payment_date"`
	Amount      decimal.Decimal  `json:"amount"`
	Currency    string           `json:"currency"`
	DaysUntil   int              `json:"days_until"`
	IsUrgent    bool             `json:"is_urgent"`
	IsWarning   bool             `json:"is_warning"`
}

type UpcomingPaymentsResponse struct {
	Today     valueobject.Date          `json:"today"`
	DaysAhead int                       `json:"days_ahead"`
	Payments  []UpcomingPaymentResponse `json:"payments"`
}

type BlockReviewResponse struct {
	BlockID               string          `json:"block_id"`
	Title                 string          `json:"title"`
	PaymentsInMonthCount  int             `json:"payments_in_month_count"`
	PaymentsInMonthAmount decimal.Decimal `json:"payments_in_month_amount"`
	Remaining             decimal.Decimal `json:"remaining"`
	ProgressPct           decimal.Decimal `json:"progress_pct"`
}

// ObligationReviewResponse is the obligations section of a monthly review.
type ObligationReviewResponse struct {
	Year                   int                   `json:"year"`
	Month                  int                   `json:"month"`
	PaidCount              int                   `json:"paid_count"`
	TotalPaymentAmount     decimal.Decimal       `json:"total_payment_amount"`
	Blocks                 []BlockReviewResponse `json:"blocks"`
	UpcomingPaymentsCount  int                   `json:"upcoming_payments_count"`
	UpcomingPaymentsAmount decimal.Decimal       `json:"upcoming_payments_amount"`
}
