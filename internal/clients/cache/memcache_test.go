package cache

import (
	"sync"
	"testing"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/user"
)

type fakeItems struct {
	mu    sync.Mutex
	items map[string]*memcache.Item
}

func newFakeItems() *fakeItems {
	return &fakeItems{items: make(map[string]*memcache.Item)}
}

func (f *fakeItems) Get(key string) (*memcache.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[key]
	if !ok {
		return nil, memcache.ErrCacheMiss
	}
	return item, nil
}

func (f *fakeItems) Set(item *memcache.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.Key] = item
	return nil
}

func (f *fakeItems) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[key]; !ok {
		return memcache.ErrCacheMiss
	}
	delete(f.items, key)
	return nil
}

func (f *fakeItems) Ping() error {
	return nil
}

func Test_OnSavedIdentity_ShouldLoadItBack(t *testing.T) {
	items := newFakeItems()
	mc := &MemcacheClient{client: items}
	ident := user.Identity{OwnerID: "u1", Email: "a@b.c", IDToken: "tok"}

	require.NoError(t, mc.SaveIdentity(42, ident))
	got, err := mc.LoadIdentity(42)

	require.NoError(t, err)
	assert.Equal(t, ident, got)
	assert.Contains(t, items.items, "identity:42")
	assert.Equal(t, int32(identityTTLSeconds), items.items["identity:42"].Expiration)
}

func Test_OnMissingIdentity_ShouldReturnErrNoIdentity(t *testing.T) {
	mc := &MemcacheClient{client: newFakeItems()}

	_, err := mc.LoadIdentity(7)

	assert.ErrorIs(t, err, ErrNoIdentity)
}

func Test_OnDelete_ShouldIgnoreMisses(t *testing.T) {
	mc := &MemcacheClient{client: newFakeItems()}
	require.NoError(t, mc.SaveIdentity(1, user.Identity{OwnerID: "u"}))

	assert.NoError(t, mc.DeleteIdentity(1))
	assert.NoError(t, mc.DeleteIdentity(1))

	_, err := mc.LoadIdentity(1)
	assert.ErrorIs(t, err, ErrNoIdentity)
}
