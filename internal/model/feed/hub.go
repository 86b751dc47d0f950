// Package feed fans change events out to per-owner subscribers.
package feed

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

var ErrEmptyOwner = errors.New("subscription requires an owner")

type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]*Subscription
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[uint64]*Subscription)}
}

// Subscription is a handle on a registered callback. Once Close returns
// the callback is not running and will not be invoked again.
type Subscription struct {
	hub      *Hub
	id       uint64
	owner    string
	mu       sync.Mutex
	closed   bool
	onChange func(expense.ChangeEvent)
}

// Subscribe registers onChange for events belonging to owner.
func (h *Hub) Subscribe(owner string, onChange func(expense.ChangeEvent)) (*Subscription, error) {
	if owner == "" {
		return nil, ErrEmptyOwner
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	sub := &Subscription{hub: h, id: h.nextID, owner: owner, onChange: onChange}
	if h.subs[owner] == nil {
		h.subs[owner] = make(map[uint64]*Subscription)
	}
	h.subs[owner][sub.id] = sub
	activeSubscriptions.Inc()
	logger.Debug("feed subscribed", zap.String("owner", owner), zap.Uint64("sub", sub.id))
	return sub, nil
}

// Publish delivers ev synchronously to every open subscription of the
// event's owner.
func (h *Hub) Publish(ev expense.ChangeEvent) {
	h.mu.RLock()
	targets := make([]*Subscription, 0, len(h.subs[ev.Owner()]))
	for _, sub := range h.subs[ev.Owner()] {
		targets = append(targets, sub)
	}
	h.mu.RUnlock()

	publishedEvents.WithLabelValues(string(ev.Kind)).Inc()
	for _, sub := range targets {
		sub.deliver(ev)
	}
}

func (s *Subscription) deliver(ev expense.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.onChange(ev)
}

// Close unregisters the subscription. It is safe to call more than once
// but must not be called from inside the callback.
func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[s.owner], s.id)
	if len(h.subs[s.owner]) == 0 {
		delete(h.subs, s.owner)
	}
	activeSubscriptions.Dec()
	logger.Debug("feed unsubscribed", zap.String("owner", s.owner), zap.Uint64("sub", s.id))
}

func (s *Subscription) Owner() string {
	return s.owner
}

// PublishChange lets the hub stand in for a remote change transport.
func (h *Hub) PublishChange(_ context.Context, ev expense.ChangeEvent) error {
	h.Publish(ev)
	return nil
}
