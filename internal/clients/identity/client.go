package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	DefaultEndpoint = "https://identitytoolkit.googleapis.com/v1"

	signInPath    = "/accounts:signInWithPassword"
	signUpPath    = "/accounts:signUp"
	signInIdpPath = "/accounts:signInWithIdp"

	keyParam       = "key"
	googleProvider = "google.com"
	requestTimeout = 10 * time.Second
)

// Error is a failure reported by the identity provider. Code is the
// provider's machine-readable code, e.g. EMAIL_EXISTS.
type Error struct {
	Code   string
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return "identity provider: " + e.Code
	}
	return "identity provider: " + e.Code + ": " + e.Detail
}

type config interface {
	APIKey() string
	Endpoint() string
}

type Client struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

func New(cfg config) *Client {
	endpoint := strings.TrimRight(cfg.Endpoint(), "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		apiKey:   cfg.APIKey(),
		endpoint: endpoint,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

type passwordRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type idpRequest struct {
	PostBody            string `json:"postBody"`
	RequestURI          string `json:"requestUri"`
	ReturnSecureToken   bool   `json:"returnSecureToken"`
	ReturnIdpCredential bool   `json:"returnIdpCredential"`
}

type authResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	PhotoURL     string `json:"photoUrl"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (user.Identity, error) {
	return c.call(ctx, "signInWithPassword", signInPath, passwordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
}

func (c *Client) SignUp(ctx context.Context, email, password string) (user.Identity, error) {
	return c.call(ctx, "signUp", signUpPath, passwordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
}

// SignInWithGoogle exchanges a Google ID token for a provider session.
func (c *Client) SignInWithGoogle(ctx context.Context, googleIDToken, requestURI string) (user.Identity, error) {
	body := url.Values{}
	body.Set("id_token", googleIDToken)
	body.Set("providerId", googleProvider)
	return c.call(ctx, "signInWithIdp", signInIdpPath, idpRequest{
		PostBody:            body.Encode(),
		RequestURI:          requestURI,
		ReturnSecureToken:   true,
		ReturnIdpCredential: true,
	})
}

func (c *Client) call(ctx context.Context, op, path string, payload interface{}) (user.Identity, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	ident, err := c.post(ctx, path, payload)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Warn("identity request failed", zap.String("op", op), zap.Error(err))
		return user.Identity{}, err
	}
	logger.Info("identity request succeeded", zap.String("op", op), zap.String("owner", ident.OwnerID))
	return ident, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (user.Identity, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return user.Identity{}, errors.Wrap(err, "marshalling request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(raw))
	if err != nil {
		return user.Identity{}, errors.Wrap(err, "creating request")
	}
	req.Header.Set("Content-Type", "application/json")
	q := req.URL.Query()
	q.Add(keyParam, c.apiKey)
	req.URL.RawQuery = q.Encode()

	res, err := c.http.Do(req)
	if err != nil {
		return user.Identity{}, errors.Wrap(err, "sending request")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return user.Identity{}, errors.Wrap(err, "reading response")
	}

	if res.StatusCode != http.StatusOK {
		return user.Identity{}, parseError(res.StatusCode, body)
	}

	auth := authResponse{}
	if err = json.Unmarshal(body, &auth); err != nil {
		return user.Identity{}, errors.Wrap(err, "unmarshalling response")
	}
	if auth.LocalID == "" {
		return user.Identity{}, errors.New("identity response without user id")
	}
	return user.Identity{
		OwnerID:      auth.LocalID,
		Email:        auth.Email,
		DisplayName:  auth.DisplayName,
		PhotoURL:     auth.PhotoURL,
		IDToken:      auth.IDToken,
		RefreshToken: auth.RefreshToken,
	}, nil
}

// parseError splits messages like "WEAK_PASSWORD : Password should be at
// least 6 characters" into code and detail.
func parseError(status int, body []byte) error {
	resp := errorResponse{}
	if err := json.Unmarshal(body, &resp); err != nil || resp.Error.Message == "" {
		return &Error{Code: http.StatusText(status)}
	}
	code, detail, _ := strings.Cut(resp.Error.Message, ":")
	return &Error{
		Code:   strings.TrimSpace(code),
		Detail: strings.TrimSpace(detail),
	}
}
