// Package auth signs chats in and out through the identity provider and
// notifies a listener whenever the identity of a chat changes.
package auth

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/logger"
)

// ErrCanceled is returned when the user dismisses federated sign-in.
// Callers treat it as a no-op.
var ErrCanceled = errors.New("sign-in canceled")

const cancelCode = "cancel"

type provider interface {
	SignInWithPassword(ctx context.Context, email, password string) (user.Identity, error)
	SignUp(ctx context.Context, email, password string) (user.Identity, error)
	SignInWithGoogle(ctx context.Context, googleIDToken, requestURI string) (user.Identity, error)
}

type federation interface {
	AuthURL(state string) string
	RedirectURL() string
	ExchangeIDToken(ctx context.Context, code string) (string, error)
}

type identityCache interface {
	SaveIdentity(chatID int64, ident user.Identity) error
	LoadIdentity(chatID int64) (user.Identity, error)
	DeleteIdentity(chatID int64) error
}

// Listener receives every identity change of a chat. The zero identity
// means signed out.
type Listener func(ctx context.Context, chatID int64, ident user.Identity) error

type Service struct {
	provider   provider
	federation federation
	cache      identityCache
	listener   Listener

	mu       sync.Mutex
	current  map[int64]user.Identity
	restored map[int64]bool
	// chats serializes identity changes of one chat so that a slow cache
	// restore cannot overwrite a sign-in that finished meanwhile.
	chats map[int64]*sync.Mutex
}

func NewService(provider provider, federation federation, cache identityCache, listener Listener) *Service {
	return &Service{
		provider:   provider,
		federation: federation,
		cache:      cache,
		listener:   listener,
		current:    make(map[int64]user.Identity),
		restored:   make(map[int64]bool),
		chats:      make(map[int64]*sync.Mutex),
	}
}

func (s *Service) SignIn(ctx context.Context, chatID int64, email, password string) (user.Identity, error) {
	ident, err := s.provider.SignInWithPassword(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return user.Identity{}, mapError(err)
	}
	return ident, s.setIdentity(ctx, chatID, ident)
}

func (s *Service) SignUp(ctx context.Context, chatID int64, email, password string) (user.Identity, error) {
	ident, err := s.provider.SignUp(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return user.Identity{}, mapError(err)
	}
	return ident, s.setIdentity(ctx, chatID, ident)
}

// FederatedURL is the Google consent page for chatID.
func (s *Service) FederatedURL(chatID int64) string {
	return s.federation.AuthURL(strconv.FormatInt(chatID, 10))
}

// SignInWithFederated completes Google sign-in with the authorization code
// the user brought back. An empty code or "cancel" returns ErrCanceled.
func (s *Service) SignInWithFederated(ctx context.Context, chatID int64, code string) (user.Identity, error) {
	code = strings.TrimSpace(code)
	if code == "" || strings.EqualFold(code, cancelCode) {
		return user.Identity{}, ErrCanceled
	}
	idToken, err := s.federation.ExchangeIDToken(ctx, code)
	if err != nil {
		return user.Identity{}, errors.Wrap(err, "federated sign-in")
	}
	ident, err := s.provider.SignInWithGoogle(ctx, idToken, s.federation.RedirectURL())
	if err != nil {
		return user.Identity{}, mapError(err)
	}
	return ident, s.setIdentity(ctx, chatID, ident)
}

// SignOut is local: the provider keeps no server-side session for us.
func (s *Service) SignOut(ctx context.Context, chatID int64) error {
	lock := s.chatLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.cache.DeleteIdentity(chatID); err != nil {
		logger.Warn("cannot drop cached identity", zap.Int64("chatID", chatID), zap.Error(err))
	}
	return s.notify(ctx, chatID, user.Identity{})
}

// Current is the identity chatID is signed in with, if any.
func (s *Service) Current(chatID int64) (user.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ident := s.current[chatID]
	return ident, ident.Present()
}

// Restore brings back an identity cached by a previous run. It only
// consults the cache the first time a chat is seen.
func (s *Service) Restore(ctx context.Context, chatID int64) error {
	lock := s.chatLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	if s.restored[chatID] {
		s.mu.Unlock()
		return nil
	}
	s.restored[chatID] = true
	s.mu.Unlock()

	ident, err := s.cache.LoadIdentity(chatID)
	if err != nil {
		logger.Debug("no identity to restore", zap.Int64("chatID", chatID), zap.Error(err))
		return nil
	}
	if !ident.Present() {
		return nil
	}
	logger.Info("identity restored", zap.Int64("chatID", chatID), zap.String("owner", ident.OwnerID))
	return s.notify(ctx, chatID, ident)
}

func (s *Service) setIdentity(ctx context.Context, chatID int64, ident user.Identity) error {
	lock := s.chatLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.cache.SaveIdentity(chatID, ident); err != nil {
		logger.Warn("cannot cache identity", zap.Int64("chatID", chatID), zap.Error(err))
	}
	return s.notify(ctx, chatID, ident)
}

func (s *Service) chatLock(chatID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.chats[chatID]
	if !ok {
		lock = &sync.Mutex{}
		s.chats[chatID] = lock
	}
	return lock
}

// notify must be called with the chat lock held.
func (s *Service) notify(ctx context.Context, chatID int64, ident user.Identity) error {
	s.mu.Lock()
	s.current[chatID] = ident
	s.restored[chatID] = true
	s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener(ctx, chatID, ident)
}
