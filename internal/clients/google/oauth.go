package google

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

var scopes = []string{"openid", "email", "profile"}

type config interface {
	ClientID() string
	ClientSecret() string
	RedirectURL() string
}

// OAuth runs the authorization-code flow for "Sign in with Google". The
// user opens AuthURL, approves, and pastes the code back to the bot.
type OAuth struct {
	config *oauth2.Config
}

func NewOAuth(cfg config) *OAuth {
	return newOAuth(cfg, googleoauth.Endpoint)
}

func newOAuth(cfg config, endpoint oauth2.Endpoint) *OAuth {
	return &OAuth{config: &oauth2.Config{
		ClientID:     cfg.ClientID(),
		ClientSecret: cfg.ClientSecret(),
		RedirectURL:  cfg.RedirectURL(),
		Endpoint:     endpoint,
		Scopes:       scopes,
	}}
}

func (o *OAuth) AuthURL(state string) string {
	return o.config.AuthCodeURL(state, oauth2.AccessTypeOnline, oauth2.SetAuthURLParam("prompt", "select_account"))
}

func (o *OAuth) RedirectURL() string {
	return o.config.RedirectURL
}

// ExchangeIDToken trades an authorization code for Google's ID token.
func (o *OAuth) ExchangeIDToken(ctx context.Context, code string) (string, error) {
	tok, err := o.config.Exchange(ctx, code)
	if err != nil {
		return "", errors.Wrap(err, "exchange authorization code")
	}
	idToken, ok := tok.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", errors.New("token response without id_token")
	}
	return idToken, nil
}
