package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/user"
)

type testConfig struct {
	endpoint string
}

func (c testConfig) APIKey() string   { return "secret" }
func (c testConfig) Endpoint() string { return c.endpoint }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(testConfig{endpoint: srv.URL + "/"})
}

func Test_OnSignIn_ShouldPostCredentialsAndReturnIdentity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, signInPath, r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get(keyParam))

		var req passwordRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, passwordRequest{Email: "a@b.c", Password: "pw123456", ReturnSecureToken: true}, req)

		_, _ = w.Write([]byte(`{"localId":"uid-1","email":"a@b.c","displayName":"Ann","idToken":"tok","refreshToken":"ref"}`))
	})

	ident, err := client.SignInWithPassword(context.Background(), "a@b.c", "pw123456")

	require.NoError(t, err)
	assert.Equal(t, user.Identity{OwnerID: "uid-1", Email: "a@b.c", DisplayName: "Ann", IDToken: "tok", RefreshToken: "ref"}, ident)
}

func Test_OnSignUpRejected_ShouldReturnProviderCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, signUpPath, r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"WEAK_PASSWORD : Password should be at least 6 characters"}}`))
	})

	_, err := client.SignUp(context.Background(), "a@b.c", "123")

	var providerErr *Error
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "WEAK_PASSWORD", providerErr.Code)
	assert.Equal(t, "Password should be at least 6 characters", providerErr.Detail)
}

func Test_OnUnparseableError_ShouldFallBackToStatusText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.SignInWithPassword(context.Background(), "a@b.c", "x")

	var providerErr *Error
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), providerErr.Code)
}

func Test_OnGoogleSignIn_ShouldSendIdpPostBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, signInIdpPath, r.URL.Path)
		var req idpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		body, err := url.ParseQuery(req.PostBody)
		require.NoError(t, err)
		assert.Equal(t, "google-token", body.Get("id_token"))
		assert.Equal(t, googleProvider, body.Get("providerId"))
		assert.Equal(t, "http://localhost", req.RequestURI)

		_, _ = w.Write([]byte(`{"localId":"uid-2","email":"g@gmail.com","photoUrl":"http://p"}`))
	})

	ident, err := client.SignInWithGoogle(context.Background(), "google-token", "http://localhost")

	require.NoError(t, err)
	assert.Equal(t, "uid-2", ident.OwnerID)
	assert.Equal(t, "http://p", ident.PhotoURL)
}

func Test_OnResponseWithoutUser_ShouldFail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.SignInWithPassword(context.Background(), "a@b.c", "x")

	assert.Error(t, err)
}

func Test_OnEmptyEndpoint_ShouldUseDefault(t *testing.T) {
	client := New(testConfig{})

	assert.Equal(t, DefaultEndpoint, client.endpoint)
}
