// Package session ties identity changes to the expense list of a client.
package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/expenses"
)

type Subscription interface {
	Close()
}

type Feed interface {
	Subscribe(owner string, onChange func(expense.ChangeEvent)) (Subscription, error)
}

// FeedFunc adapts a function to Feed.
type FeedFunc func(owner string, onChange func(expense.ChangeEvent)) (Subscription, error)

func (f FeedFunc) Subscribe(owner string, onChange func(expense.ChangeEvent)) (Subscription, error) {
	return f(owner, onChange)
}

type reconciler interface {
	Reset(owner string) expenses.Ticket
	Load(ctx context.Context, t expenses.Ticket) error
	ApplyRemoteChange(ev expense.ChangeEvent)
}

// Gate moves between signed-out and signed-in(owner) on identity
// notifications. It owns the change-feed subscription and keeps at most
// one open.
type Gate struct {
	reconciler reconciler
	feed       Feed

	mu       sync.Mutex
	identity user.Identity
	sub      Subscription
}

func NewGate(r reconciler, feed Feed) *Gate {
	return &Gate{reconciler: r, feed: feed}
}

// HandleIdentityChange applies an identity notification. A zero identity
// means signed out.
func (g *Gate) HandleIdentityChange(ctx context.Context, ident user.Identity) error {
	g.mu.Lock()
	if ident.OwnerID == g.identity.OwnerID {
		// token refresh or repeated notification
		g.identity = ident
		g.mu.Unlock()
		return nil
	}

	g.closeSubscription()
	prev := g.identity.OwnerID
	g.identity = ident
	ticket := g.reconciler.Reset(ident.OwnerID)
	if !ident.Present() {
		g.mu.Unlock()
		logger.Info("session ended", zap.String("owner", prev))
		return nil
	}

	sub, err := g.feed.Subscribe(ident.OwnerID, g.reconciler.ApplyRemoteChange)
	if err != nil {
		// no live feed, stay signed out
		g.identity = user.Identity{}
		g.reconciler.Reset("")
		g.mu.Unlock()
		logger.Error("cannot subscribe to changes", zap.String("owner", ident.OwnerID), zap.Error(err))
		return errors.Wrap(err, "subscribe to changes")
	}
	g.sub = sub
	g.mu.Unlock()

	logger.Info("session started", zap.String("owner", ident.OwnerID))
	return g.reconciler.Load(ctx, ticket)
}

func (g *Gate) Identity() (user.Identity, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.identity, g.identity.Present()
}

// Close drops the subscription and the list, as on sign-out.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closeSubscription()
	g.identity = user.Identity{}
	g.reconciler.Reset("")
}

func (g *Gate) closeSubscription() {
	if g.sub != nil {
		g.sub.Close()
		g.sub = nil
	}
}
