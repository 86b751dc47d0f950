package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/clients/identity"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/model/auth/mock"
)

const chat = int64(100)

var (
	alice = user.Identity{OwnerID: "alice", Email: "alice@example.com"}
	bob   = user.Identity{OwnerID: "bob", Email: "bob@example.com"}
)

type recorded struct {
	chatID int64
	ident  user.Identity
}

type fixture struct {
	provider   *mock.ProviderMock
	federation *mock.FederationMock
	cache      *mock.IdentityCacheMock
	changes    []recorded
	service    *Service
}

func newFixture(t *testing.T) *fixture {
	m := minimock.NewController(t)
	t.Cleanup(m.Finish)
	f := &fixture{
		provider:   mock.NewProviderMock(m),
		federation: mock.NewFederationMock(m),
		cache:      mock.NewIdentityCacheMock(m),
	}
	f.service = NewService(f.provider, f.federation, f.cache, func(_ context.Context, chatID int64, ident user.Identity) error {
		f.changes = append(f.changes, recorded{chatID, ident})
		return nil
	})
	return f
}

func expectCredentials(t *testing.T, wantEmail, wantPassword string) func(context.Context, string, string) {
	return func(_ context.Context, email, password string) {
		assert.Equal(t, wantEmail, email)
		assert.Equal(t, wantPassword, password)
	}
}

func Test_OnSignIn_ShouldCacheAndNotify(t *testing.T) {
	f := newFixture(t)
	f.provider.SignInWithPasswordMock.
		Inspect(expectCredentials(t, "alice@example.com", "pw")).
		Return(alice, nil)
	f.cache.SaveIdentityMock.Expect(chat, alice).Return(nil)

	ident, err := f.service.SignIn(context.Background(), chat, " alice@example.com ", "pw")

	require.NoError(t, err)
	assert.Equal(t, alice, ident)
	assert.Equal(t, []recorded{{chat, alice}}, f.changes)
	current, ok := f.service.Current(chat)
	assert.True(t, ok)
	assert.Equal(t, alice, current)
}

func Test_OnCacheFailure_ShouldStillSignIn(t *testing.T) {
	f := newFixture(t)
	f.provider.SignUpMock.
		Inspect(expectCredentials(t, "alice@example.com", "pw")).
		Return(alice, nil)
	f.cache.SaveIdentityMock.Expect(chat, alice).Return(errors.New("memcache down"))

	_, err := f.service.SignUp(context.Background(), chat, "alice@example.com", "pw")

	require.NoError(t, err)
	assert.Len(t, f.changes, 1)
}

func Test_OnProviderCodes_ShouldMapToMessages(t *testing.T) {
	cases := map[string]string{
		"EMAIL_EXISTS":                "This email is already registered. Try logging in instead.",
		"INVALID_PASSWORD":            "Incorrect password.",
		"EMAIL_NOT_FOUND":             "No account found with this email.",
		"INVALID_LOGIN_CREDENTIALS":   "Invalid email or password.",
		"WEAK_PASSWORD":               "Password should be at least 6 characters.",
		"INVALID_EMAIL":               "Please enter a valid email address.",
		"TOO_MANY_ATTEMPTS_TRY_LATER": "Too many failed attempts. Please try again later.",
		"USER_DISABLED":               "This account has been disabled.",
		"SOMETHING_NEW":               defaultMessage,
	}
	for code, want := range cases {
		t.Run(code, func(t *testing.T) {
			f := newFixture(t)
			f.provider.SignInWithPasswordMock.
				Inspect(expectCredentials(t, "a@b.c", "pw")).
				Return(user.Identity{}, &identity.Error{Code: code})

			_, err := f.service.SignIn(context.Background(), chat, "a@b.c", "pw")

			var authErr *Error
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, code, authErr.Code)
			assert.Equal(t, want, authErr.Message)
			assert.Empty(t, f.changes)
		})
	}
}

func Test_OnTransportFailure_ShouldNotBeAuthError(t *testing.T) {
	f := newFixture(t)
	f.provider.SignInWithPasswordMock.Return(user.Identity{}, errors.New("timeout"))

	_, err := f.service.SignIn(context.Background(), chat, "a@b.c", "pw")

	var authErr *Error
	assert.Error(t, err)
	assert.False(t, errors.As(err, &authErr))
}

func Test_OnFederatedCancel_ShouldBeSilentNoop(t *testing.T) {
	f := newFixture(t)

	for _, code := range []string{"", "  ", "cancel", "CANCEL"} {
		_, err := f.service.SignInWithFederated(context.Background(), chat, code)
		assert.ErrorIs(t, err, ErrCanceled)
	}
	assert.Empty(t, f.changes)
	assert.Equal(t, uint64(0), f.federation.ExchangeIDTokenBeforeCounter())
}

func Test_OnFederatedCode_ShouldExchangeAndSignIn(t *testing.T) {
	f := newFixture(t)
	f.federation.
		ExchangeIDTokenMock.
		Inspect(func(_ context.Context, code string) {
			assert.Equal(t, "the-code", code)
		}).
		Return("gid", nil).
		RedirectURLMock.Return("http://localhost")
	f.provider.SignInWithGoogleMock.
		Inspect(func(_ context.Context, idToken, requestURI string) {
			assert.Equal(t, "gid", idToken)
			assert.Equal(t, "http://localhost", requestURI)
		}).
		Return(alice, nil)
	f.cache.SaveIdentityMock.Expect(chat, alice).Return(nil)

	ident, err := f.service.SignInWithFederated(context.Background(), chat, "the-code")

	require.NoError(t, err)
	assert.Equal(t, alice, ident)
	assert.Equal(t, []recorded{{chat, alice}}, f.changes)
}

func Test_OnFederatedURL_ShouldUseChatAsState(t *testing.T) {
	f := newFixture(t)
	f.federation.AuthURLMock.Expect("100").Return("https://accounts.google.com/x")

	assert.Equal(t, "https://accounts.google.com/x", f.service.FederatedURL(chat))
}

func Test_OnSignOut_ShouldNotifyEmptyIdentity(t *testing.T) {
	f := newFixture(t)
	f.provider.SignInWithPasswordMock.Return(alice, nil)
	f.cache.
		SaveIdentityMock.Expect(chat, alice).Return(nil).
		DeleteIdentityMock.Expect(chat).Return(nil)
	_, err := f.service.SignIn(context.Background(), chat, "a@b.c", "pw")
	require.NoError(t, err)

	require.NoError(t, f.service.SignOut(context.Background(), chat))

	assert.Equal(t, []recorded{{chat, alice}, {chat, user.Identity{}}}, f.changes)
	_, ok := f.service.Current(chat)
	assert.False(t, ok)
}

func Test_OnRestore_ShouldConsultCacheOnce(t *testing.T) {
	f := newFixture(t)
	f.cache.LoadIdentityMock.Expect(chat).Return(alice, nil)

	require.NoError(t, f.service.Restore(context.Background(), chat))
	require.NoError(t, f.service.Restore(context.Background(), chat))

	assert.Equal(t, []recorded{{chat, alice}}, f.changes)
	assert.Equal(t, uint64(1), f.cache.LoadIdentityAfterCounter())
}

func Test_OnRestoreMiss_ShouldStaySignedOut(t *testing.T) {
	f := newFixture(t)
	f.cache.LoadIdentityMock.Expect(chat).Return(user.Identity{}, errors.New("miss"))

	require.NoError(t, f.service.Restore(context.Background(), chat))

	assert.Empty(t, f.changes)
	_, ok := f.service.Current(chat)
	assert.False(t, ok)
}

func Test_OnSignInDuringSlowRestore_ShouldKeepNewerIdentity(t *testing.T) {
	f := newFixture(t)
	loading := make(chan struct{})
	release := make(chan struct{})
	signingIn := make(chan struct{})
	f.cache.
		LoadIdentityMock.Set(func(int64) (user.Identity, error) {
			close(loading)
			<-release
			return alice, nil
		}).
		SaveIdentityMock.Expect(chat, bob).Return(nil)
	f.provider.SignInWithPasswordMock.
		Inspect(func(context.Context, string, string) { close(signingIn) }).
		Return(bob, nil)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, f.service.Restore(context.Background(), chat))
	}()
	<-loading
	go func() {
		defer wg.Done()
		_, err := f.service.SignIn(context.Background(), chat, "bob@example.com", "pw")
		assert.NoError(t, err)
	}()
	<-signingIn
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	current, ok := f.service.Current(chat)
	assert.True(t, ok)
	assert.Equal(t, bob, current)
	assert.Equal(t, []recorded{{chat, alice}, {chat, bob}}, f.changes)
}
