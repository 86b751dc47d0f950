package cache

import (
	"encoding/json"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	defaultBase = 10
	keyPrefix   = "identity:"
	// identities outlive a bot restart but not a forgotten chat
	identityTTLSeconds = 30 * 24 * 60 * 60
)

var ErrNoIdentity = errors.New("no cached identity")

type itemClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Delete(key string) error
	Ping() error
}

type config interface {
	Hosts() []string
}

// MemcacheClient keeps the signed-in identity of each chat so sessions
// survive restarts.
type MemcacheClient struct {
	client itemClient
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func (mc *MemcacheClient) Ping() error {
	return mc.client.Ping()
}

func formatKey(chatID int64) string {
	return keyPrefix + strconv.FormatInt(chatID, defaultBase)
}

func (mc *MemcacheClient) SaveIdentity(chatID int64, ident user.Identity) error {
	logger.Debug("cache identity", zap.Int64("chatID", chatID), zap.String("owner", ident.OwnerID))
	value, err := json.Marshal(ident)
	if err != nil {
		return errors.Wrap(err, "marshal identity")
	}
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(chatID),
		Value:      value,
		Expiration: identityTTLSeconds,
	})
}

func (mc *MemcacheClient) LoadIdentity(chatID int64) (user.Identity, error) {
	item, err := mc.client.Get(formatKey(chatID))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return user.Identity{}, ErrNoIdentity
	}
	if err != nil {
		return user.Identity{}, errors.Wrap(err, "get identity")
	}
	var ident user.Identity
	if err = json.Unmarshal(item.Value, &ident); err != nil {
		return user.Identity{}, errors.Wrap(err, "unmarshal identity")
	}
	return ident, nil
}

func (mc *MemcacheClient) DeleteIdentity(chatID int64) error {
	logger.Debug("drop cached identity", zap.Int64("chatID", chatID))
	err := mc.client.Delete(formatKey(chatID))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return err
	}
	return nil
}
