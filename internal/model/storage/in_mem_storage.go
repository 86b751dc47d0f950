package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

// InMemStorage keeps expenses in process memory. It is meant for local
// runs and tests.
type InMemStorage struct {
	mu        sync.Mutex
	byOwner   map[string][]expense.Record
	publisher changePublisher
	now       func() time.Time
}

func NewInMemStorage(publisher changePublisher) *InMemStorage {
	return &InMemStorage{
		byOwner:   make(map[string][]expense.Record),
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *InMemStorage) FetchAll(_ context.Context, owner string) ([]expense.Record, error) {
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]expense.Record, len(s.byOwner[owner]))
	copy(res, s.byOwner[owner])
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Date != res[j].Date {
			return res[i].Date.After(res[j].Date)
		}
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (s *InMemStorage) Insert(ctx context.Context, rec expense.Record, owner string) (expense.Record, error) {
	if owner == "" {
		return expense.Record{}, ErrOwnerRequired
	}
	if err := rec.Validate(); err != nil {
		return expense.Record{}, errors.Wrap(err, "insert expense")
	}

	s.mu.Lock()
	now := s.now()
	for _, existing := range s.byOwner[owner] {
		if sameSubmission(existing, rec) && now.Sub(existing.CreatedAt) < duplicateWindow {
			s.mu.Unlock()
			logger.Warn("similar expense within the last minute, returning existing", zap.String("id", existing.ID))
			return existing, nil
		}
	}
	rec.ID = uuid.NewString()
	rec.Owner = owner
	rec.CreatedAt = now
	s.byOwner[owner] = append(s.byOwner[owner], rec)
	s.mu.Unlock()

	s.publish(ctx, expense.ChangeEvent{Kind: expense.Insert, Record: rec})
	return rec, nil
}

func (s *InMemStorage) Delete(ctx context.Context, id, owner string) error {
	if owner == "" {
		return ErrOwnerRequired
	}

	s.mu.Lock()
	recs := s.byOwner[owner]
	found := false
	for i, rec := range recs {
		if rec.ID == id {
			s.byOwner[owner] = append(recs[:i], recs[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.publish(ctx, expense.ChangeEvent{Kind: expense.Delete, Record: expense.Record{ID: id, Owner: owner}})
	}
	return nil
}

func (s *InMemStorage) publish(ctx context.Context, ev expense.ChangeEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishChange(ctx, ev); err != nil {
		logger.Error("cannot publish change", zap.String("id", ev.Record.ID), zap.Error(err))
	}
}
