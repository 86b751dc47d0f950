package auth

import (
	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/clients/identity"
)

const defaultMessage = "Authentication failed. Please try again."

var messages = map[string]string{
	"EMAIL_EXISTS":                "This email is already registered. Try logging in instead.",
	"INVALID_PASSWORD":            "Incorrect password.",
	"EMAIL_NOT_FOUND":             "No account found with this email.",
	"INVALID_LOGIN_CREDENTIALS":   "Invalid email or password.",
	"WEAK_PASSWORD":               "Password should be at least 6 characters.",
	"INVALID_EMAIL":               "Please enter a valid email address.",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "Too many failed attempts. Please try again later.",
	"USER_DISABLED":               "This account has been disabled.",
}

// Error is a sign-in or sign-up failure with a message fit for the user.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// mapError turns provider errors into *Error and leaves transport
// failures as they are.
func mapError(err error) error {
	var providerErr *identity.Error
	if !errors.As(err, &providerErr) {
		return errors.Wrap(err, "identity provider")
	}
	msg, ok := messages[providerErr.Code]
	if !ok {
		msg = defaultMessage
	}
	return &Error{Code: providerErr.Code, Message: msg}
}
