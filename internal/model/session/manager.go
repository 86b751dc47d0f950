package session

import (
	"context"
	"sync"

	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/model/expenses"
)

// Context is the state of one client session. Collaborators receive it
// explicitly instead of reaching for shared globals.
type Context struct {
	Gate       *Gate
	Expenses   *expenses.Reconciler
	mu         sync.Mutex
	display    string
	addPending bool
}

func (c *Context) DisplayCurrency() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.display
}

func (c *Context) SetDisplayCurrency(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.display = code
}

// BeginAdd marks an insert as in flight. It reports false if one already is,
// in which case the caller must not submit another.
func (c *Context) BeginAdd() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.addPending {
		return false
	}
	c.addPending = true
	return true
}

func (c *Context) EndAdd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addPending = false
}

// Manager owns one Context per client key (a chat id).
type Manager struct {
	store           expenses.Store
	feed            Feed
	defaultCurrency string

	mu       sync.Mutex
	sessions map[int64]*Context
}

func NewManager(store expenses.Store, feed Feed, defaultCurrency string) *Manager {
	if !currency.Valid(defaultCurrency) {
		defaultCurrency = currency.Base
	}
	return &Manager{
		store:           store,
		feed:            feed,
		defaultCurrency: defaultCurrency,
		sessions:        make(map[int64]*Context),
	}
}

// Get returns the session for key, creating a signed-out one if needed.
func (m *Manager) Get(key int64) *Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[key]; ok {
		return s
	}
	r := expenses.NewReconciler(m.store)
	s := &Context{
		Gate:     NewGate(r, m.feed),
		Expenses: r,
		display:  m.defaultCurrency,
	}
	m.sessions[key] = s
	return s
}

// OnIdentityChange is the identity listener for key.
func (m *Manager) OnIdentityChange(ctx context.Context, key int64, ident user.Identity) error {
	return m.Get(key).Gate.HandleIdentityChange(ctx, ident)
}

// Close tears down every session.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, s := range m.sessions {
		s.Gate.Close()
		delete(m.sessions, key)
	}
}
