package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibbank/bib/services/obligation-service/internal/domain/valueobject"
	"github.com/bibbank/bib/services/obligation-service/pkg/money"
)

const (
	// DefaultTitle names blocks submitted without a title.
	DefaultTitle = "Obligation"
	// DefaultInstallmentLines is the number of blank payment lines a new block gets.
	DefaultInstallmentLines = 12

	ratePlaces = 4
)

var (
	ErrInvalidDueDay  = errors.New("due day must be between 1 and 31")
	ErrNegativeRate   = errors.New("annual rate must not be negative")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// ---------------------------------------------------------------------------
// ObligationPayment
// ---------------------------------------------------------------------------

// ObligationPayment is one installment line of a block as the user keeps it.
type ObligationPayment struct {
	ID string
	PaymentRecord
	Note string
}

// ---------------------------------------------------------------------------
// ObligationBlock aggregate root
// ---------------------------------------------------------------------------

// BlockParams carries the user-supplied fields of an obligation block.
type BlockParams struct {
	ID          string
	Title       string
	Currency    string
	Total       decimal.Decimal
	Monthly     decimal.Decimal
	Rate        decimal.Decimal
	DueDay      int
	StartDate   *valueobject.Date
	NextPayment *valueobject.Date
	CloseDate   *valueobject.Date
	Status      string
	Notes       string
}

// ObligationBlock is an immutable aggregate. Mutations return a new copy.
type ObligationBlock struct {
	id          string
	title       string
	currency    money.Currency
	total       decimal.Decimal
	monthly     decimal.Decimal
	rate        decimal.Decimal
	dueDay      int
	startDate   *valueobject.Date
	nextPayment *valueobject.Date
	closeDate   *valueobject.Date
	status      valueobject.ObligationStatus
	notes       string
	payments    []ObligationPayment
}

// NewObligationBlock validates and normalises p. A blank title becomes
// DefaultTitle, a zero due day becomes DefaultDueDay, an empty status means
// ACTIVE and an empty ID is generated. The block starts with
// DefaultInstallmentLines blank, unconfirmed payment lines.
func NewObligationBlock(p BlockParams) (ObligationBlock, error) {
	if p.Total.IsNegative() {
		return ObligationBlock{}, fmt.Errorf("total: %w", ErrNegativeAmount)
	}
	if p.Monthly.IsNegative() {
		return ObligationBlock{}, fmt.Errorf("monthly: %w", ErrNegativeAmount)
	}
	if p.Rate.IsNegative() {
		return ObligationBlock{}, ErrNegativeRate
	}
	if p.DueDay < 0 || p.DueDay > 31 {
		return ObligationBlock{}, fmt.Errorf("%w: got %d", ErrInvalidDueDay, p.DueDay)
	}

	currency := money.DefaultCurrency
	if p.Currency != "" {
		c, err := money.NewCurrency(p.Currency)
		if err != nil {
			return ObligationBlock{}, err
		}
		currency = c
	}

	status := valueobject.ObligationStatusActive
	if strings.TrimSpace(p.Status) != "" {
		s, err := valueobject.NewObligationStatus(p.Status)
		if err != nil {
			return ObligationBlock{}, err
		}
		status = s
	}

	id := p.ID
	if id == "" {
		id = uuid.New().String()
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = DefaultTitle
	}

	dueDay := p.DueDay
	if dueDay == 0 {
		dueDay = DefaultDueDay
	}

	payments := make([]ObligationPayment, DefaultInstallmentLines)
	for i := range payments {
		payments[i] = ObligationPayment{
			PaymentRecord: PaymentRecord{SequenceNumber: i + 1, Amount: decimal.Zero},
		}
	}

	return ObligationBlock{
		id:          id,
		title:       title,
		currency:    currency,
		total:       money.Quantize(p.Total),
		monthly:     money.Quantize(p.Monthly),
		rate:        p.Rate.Round(ratePlaces),
		dueDay:      dueDay,
		startDate:   p.StartDate,
		nextPayment: p.NextPayment,
		closeDate:   p.CloseDate,
		status:      status,
		notes:       p.Notes,
		payments:    payments,
	}, nil
}

// WithPayments replaces the payment lines. Amounts must not be negative.
func (b ObligationBlock) WithPayments(payments []ObligationPayment) (ObligationBlock, error) {
	out := make([]ObligationPayment, len(payments))
	for i, p := range payments {
		if p.Amount.IsNegative() {
			return b, fmt.Errorf("payment %d: %w", p.SequenceNumber, ErrNegativeAmount)
		}
		out[i] = p
	}
	next := b
	next.payments = out
	return next, nil
}

// Terms projects the block onto the amortization engine's input.
func (b ObligationBlock) Terms() LoanTerms {
	return LoanTerms{
		Total:             b.total,
		AnnualRatePercent: b.rate,
		DueDay:            b.dueDay,
		StartDate:         b.startDate,
		NextPayment:       b.nextPayment,
	}
}

// PaymentRecords returns the engine view of the payment lines.
func (b ObligationBlock) PaymentRecords() []PaymentRecord {
	out := make([]PaymentRecord, len(b.payments))
	for i, p := range b.payments {
		out[i] = p.PaymentRecord
	}
	return out
}

// Metrics runs the amortization engine over the block.
func (b ObligationBlock) Metrics() AmortizationResult {
	return Calculate(b.Terms(), b.PaymentRecords())
}

// Project forecasts the remaining installments at the block's monthly amount.
func (b ObligationBlock) Project(result AmortizationResult, maxPeriods int) Projection {
	return ProjectSchedule(b.Terms(), result, b.monthly, maxPeriods)
}

// IsActive reports whether the block is still being repaid.
func (b ObligationBlock) IsActive() bool {
	return b.status.Equal(valueobject.ObligationStatusActive)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (b ObligationBlock) ID() string                           { return b.id }
func (b ObligationBlock) Title() string                        { return b.title }
func (b ObligationBlock) Currency() money.Currency             { return b.currency }
func (b ObligationBlock) Total() decimal.Decimal               { return b.total }
func (b ObligationBlock) Monthly() decimal.Decimal             { return b.monthly }
func (b ObligationBlock) Rate() decimal.Decimal                { return b.rate }
func (b ObligationBlock) DueDay() int                          { return b.dueDay }
func (b ObligationBlock) StartDate() *valueobject.Date         { return b.startDate }
func (b ObligationBlock) NextPayment() *valueobject.Date       { return b.nextPayment }
func (b ObligationBlock) CloseDate() *valueobject.Date         { return b.closeDate }
func (b ObligationBlock) Status() valueobject.ObligationStatus { return b.status }
func (b ObligationBlock) Notes() string                        { return b.notes }

// MonthlyPayment is the installment amount in the block's currency.
func (b ObligationBlock) MonthlyPayment() money.Money {
	return money.New(b.monthly, b.currency)
}

// Payments returns a copy of the payment lines.
func (b ObligationBlock) Payments() []ObligationPayment {
	out := make([]ObligationPayment, len(b.payments))
	copy(out, b.payments)
	return out
}
