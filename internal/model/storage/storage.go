package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

// duplicateWindow is how far back an identical submission is treated as a
// repeat of the same expense rather than a new one.
const duplicateWindow = time.Minute

var ErrOwnerRequired = errors.New("owner is required")

type changePublisher interface {
	PublishChange(ctx context.Context, ev expense.ChangeEvent) error
}

func sameSubmission(a, b expense.Record) bool {
	return a.Description == b.Description &&
		a.Amount == b.Amount &&
		a.Currency == b.Currency &&
		a.Category == b.Category
}
