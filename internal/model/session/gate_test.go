package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/expenses/mock"
	"max.ks1230/expense-tracker/internal/model/feed"
)

var (
	alice = user.Identity{OwnerID: "alice", Email: "alice@example.com"}
	bob   = user.Identity{OwnerID: "bob", Email: "bob@example.com"}
)

func record(id, owner string) expense.Record {
	return expense.Record{
		ID:          id,
		Description: "coffee",
		Amount:      3,
		Currency:    currency.EUR,
		Category:    expense.Food,
		Date:        civil.Date{Year: 2024, Month: time.June, Day: 1},
		Owner:       owner,
	}
}

func newStore(t *testing.T) *mock.StoreMock {
	m := minimock.NewController(t)
	t.Cleanup(m.Finish)
	return mock.NewStoreMock(m)
}

// storeOf serves a fixed record set per owner.
func storeOf(t *testing.T, byOwner map[string][]expense.Record) *mock.StoreMock {
	return newStore(t).FetchAllMock.Set(func(_ context.Context, owner string) ([]expense.Record, error) {
		return byOwner[owner], nil
	})
}

func hubFeed(h *feed.Hub) Feed {
	return FeedFunc(func(owner string, onChange func(expense.ChangeEvent)) (Subscription, error) {
		sub, err := h.Subscribe(owner, onChange)
		if err != nil {
			return nil, err
		}
		return sub, nil
	})
}

type countingFeed struct {
	mu     sync.Mutex
	open   map[string]int
	opened []string
}

type countingSub struct {
	f     *countingFeed
	owner string
	once  sync.Once
}

func (s *countingSub) Close() {
	s.once.Do(func() {
		s.f.mu.Lock()
		defer s.f.mu.Unlock()
		s.f.open[s.owner]--
	})
}

func (f *countingFeed) Subscribe(owner string, _ func(expense.ChangeEvent)) (Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open[owner]++
	f.opened = append(f.opened, owner)
	return &countingSub{f: f, owner: owner}, nil
}

func (f *countingFeed) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.open {
		n += c
	}
	return n
}

func Test_SignIn_LoadsAndSubscribes(t *testing.T) {
	store := storeOf(t, map[string][]expense.Record{"alice": {record("1", "alice")}})
	hub := feed.NewHub()
	r := expenses.NewReconciler(store)
	g := NewGate(r, hubFeed(hub))

	require.NoError(t, g.HandleIdentityChange(context.Background(), alice))
	ident, ok := g.Identity()
	assert.True(t, ok)
	assert.Equal(t, alice, ident)
	assert.Len(t, r.Records(), 1)

	hub.Publish(expense.ChangeEvent{Kind: expense.Insert, Record: record("2", "alice")})
	hub.Publish(expense.ChangeEvent{Kind: expense.Insert, Record: record("3", "bob")})
	assert.Len(t, r.Records(), 2)
}

func Test_SignOut_ClosesSubscriptionAndClearsList(t *testing.T) {
	store := storeOf(t, map[string][]expense.Record{"alice": {record("1", "alice")}})
	hub := feed.NewHub()
	r := expenses.NewReconciler(store)
	g := NewGate(r, hubFeed(hub))

	require.NoError(t, g.HandleIdentityChange(context.Background(), alice))
	require.NoError(t, g.HandleIdentityChange(context.Background(), user.Identity{}))

	_, ok := g.Identity()
	assert.False(t, ok)
	assert.Empty(t, r.Records())

	hub.Publish(expense.ChangeEvent{Kind: expense.Insert, Record: record("2", "alice")})
	assert.Empty(t, r.Records())
}

func Test_SwitchingOwner_KeepsSingleSubscription(t *testing.T) {
	store := storeOf(t, nil)
	f := &countingFeed{open: map[string]int{}}
	g := NewGate(expenses.NewReconciler(store), f)

	require.NoError(t, g.HandleIdentityChange(context.Background(), alice))
	assert.Equal(t, 1, f.total())
	require.NoError(t, g.HandleIdentityChange(context.Background(), bob))
	assert.Equal(t, 1, f.total())
	assert.Equal(t, 0, f.open["alice"])
	assert.Equal(t, 1, f.open["bob"])

	g.Close()
	assert.Equal(t, 0, f.total())
	assert.Equal(t, []string{"alice", "bob"}, f.opened)
}

func Test_RepeatedIdentity_IsNoop(t *testing.T) {
	store := newStore(t)
	store.FetchAllMock.Return([]expense.Record{}, nil)
	f := &countingFeed{open: map[string]int{}}
	g := NewGate(expenses.NewReconciler(store), f)

	require.NoError(t, g.HandleIdentityChange(context.Background(), alice))
	refreshed := alice
	refreshed.IDToken = "new-token"
	require.NoError(t, g.HandleIdentityChange(context.Background(), refreshed))

	ident, _ := g.Identity()
	assert.Equal(t, "new-token", ident.IDToken)
	assert.Equal(t, []string{"alice"}, f.opened)
	assert.Equal(t, uint64(1), store.FetchAllAfterCounter())
}

func Test_SignOutDuringFetch_DiscardsStaleResponse(t *testing.T) {
	store := newStore(t)
	started := make(chan struct{})
	release := make(chan struct{})
	store.FetchAllMock.Set(func(context.Context, string) ([]expense.Record, error) {
		close(started)
		<-release
		return []expense.Record{record("1", "alice")}, nil
	})
	r := expenses.NewReconciler(store)
	g := NewGate(r, hubFeed(feed.NewHub()))

	done := make(chan error, 1)
	go func() { done <- g.HandleIdentityChange(context.Background(), alice) }()
	<-started

	require.NoError(t, g.HandleIdentityChange(context.Background(), user.Identity{}))
	close(release)

	assert.True(t, errors.Is(<-done, expenses.ErrSessionChanged))
	assert.Empty(t, r.Records())
	assert.Equal(t, "", r.Owner())
}

func Test_SubscribeFailure_LeavesSignedOut(t *testing.T) {
	store := storeOf(t, map[string][]expense.Record{"alice": {record("1", "alice")}})
	hub := feed.NewHub()
	down := true
	flaky := FeedFunc(func(owner string, onChange func(expense.ChangeEvent)) (Subscription, error) {
		if down {
			return nil, errors.New("feed down")
		}
		return hubFeed(hub).Subscribe(owner, onChange)
	})
	r := expenses.NewReconciler(store)
	g := NewGate(r, flaky)

	err := g.HandleIdentityChange(context.Background(), alice)
	assert.Error(t, err)
	_, ok := g.Identity()
	assert.False(t, ok)
	assert.Empty(t, r.Records())
	assert.Equal(t, "", r.Owner())
	assert.Equal(t, uint64(0), store.FetchAllBeforeCounter())

	down = false
	require.NoError(t, g.HandleIdentityChange(context.Background(), alice))
	ident, ok := g.Identity()
	assert.True(t, ok)
	assert.Equal(t, alice, ident)
	assert.Len(t, r.Records(), 1)
	assert.Equal(t, uint64(1), store.FetchAllAfterCounter())
}
