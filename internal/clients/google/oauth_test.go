package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type testConfig struct{}

func (testConfig) ClientID() string     { return "client" }
func (testConfig) ClientSecret() string { return "secret" }
func (testConfig) RedirectURL() string  { return "http://localhost/callback" }

func Test_OnAuthURL_ShouldCarryClientAndScopes(t *testing.T) {
	o := NewOAuth(testConfig{})

	u, err := url.Parse(o.AuthURL("chat-1"))
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "client", q.Get("client_id"))
	assert.Equal(t, "chat-1", q.Get("state"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
	assert.Equal(t, "http://localhost/callback", q.Get("redirect_uri"))
}

func newTokenServer(t *testing.T, body string) *OAuth {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return newOAuth(testConfig{}, oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	})
}

func Test_OnExchange_ShouldReturnIDToken(t *testing.T) {
	o := newTokenServer(t, `{"access_token":"at","token_type":"Bearer","id_token":"google-id"}`)

	idToken, err := o.ExchangeIDToken(context.Background(), "the-code")

	require.NoError(t, err)
	assert.Equal(t, "google-id", idToken)
}

func Test_OnExchangeWithoutIDToken_ShouldFail(t *testing.T) {
	o := newTokenServer(t, `{"access_token":"at","token_type":"Bearer"}`)

	_, err := o.ExchangeIDToken(context.Background(), "the-code")

	assert.Error(t, err)
}
