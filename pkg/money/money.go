package money

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits carried by every monetary amount.
const Places = 2

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// ErrInvalidCurrency is returned for codes that are not three uppercase letters.
var ErrInvalidCurrency = errors.New("invalid currency code")

// Quantize rounds d to whole cents, half away from zero.
func Quantize(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Currency is an ISO 4217 currency code.
type Currency struct {
	code string
}

// NewCurrency validates code and returns the matching Currency.
func NewCurrency(code string) (Currency, error) {
	if !currencyCodeRe.MatchString(code) {
		return Currency{}, fmt.Errorf("%w %q: must be exactly 3 uppercase letters", ErrInvalidCurrency, code)
	}
	return Currency{code: code}, nil
}

// MustCurrency is NewCurrency for package-level variables.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Currency) Code() string   { return c.code }
func (c Currency) String() string { return c.code }

// DefaultCurrency is used when a block does not name one.
var DefaultCurrency = MustCurrency("RUB")

// Money is an immutable amount in whole cents with its currency.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// New quantizes amount to cents.
func New(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: Quantize(amount), currency: currency}
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() Currency      { return m.currency }

// String formats as "1234.50 RUB".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(Places), m.currency.Code())
}
