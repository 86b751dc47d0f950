package expense

import (
	"math"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/currency"
)

const DateLayout = "2006-01-02"

// MaxAmount is the exclusive upper bound of an amount, the largest value
// the amount column (NUMERIC(14,2)) can hold rounded up.
const MaxAmount = 1e12

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrInvalidAmount    = errors.New("amount is not a number")
	ErrAmountTooLarge   = errors.New("amount is too large")
	ErrInvalidDate      = errors.New("invalid date")
	ErrUnknownCategory  = errors.New("unknown category")
)

type Record struct {
	ID          string
	Description string
	Amount      float64
	Currency    string
	Category    string
	Date        civil.Date
	Owner       string
	CreatedAt   time.Time
}

// Validate checks the user-supplied fields. ID and Owner are not checked,
// the store assigns them.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyDescription
	}
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) {
		return ErrInvalidAmount
	}
	if r.Amount < 0 {
		return ErrNegativeAmount
	}
	if r.Amount >= MaxAmount {
		return ErrAmountTooLarge
	}
	if !currency.Valid(r.Currency) {
		return errors.Wrap(currency.ErrUnknownCurrency, r.Currency)
	}
	if !ValidCategory(r.Category) {
		return errors.Wrap(ErrUnknownCategory, r.Category)
	}
	if !r.Date.IsValid() {
		return ErrInvalidDate
	}
	return nil
}
