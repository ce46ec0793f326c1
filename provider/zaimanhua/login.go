package zaimanhua

import (
	"errors"

	"github.com/zaisan-cli/zaisan/auth"
)

// ErrBadCredentials is returned when the service rejects a login attempt.
var ErrBadCredentials = errors.New("invalid username or password")

// Login authenticates against the account API and persists both the issued
// token and the credentials, so expired tokens can be refreshed silently.
func (z *Zaimanhua) Login(username, password string) error {
	token, err := z.client.Login(username, password)
	if err != nil {
		return err
	}
	if token == "" {
		return ErrBadCredentials
	}

	if err := auth.SetToken(token); err != nil {
		return err
	}
	return auth.SetCredentials(username, password)
}

// Logout drops the stored token and credentials along with the
// account-scoped state: the hidden-content cache and the check-in marker.
func Logout() error {
	if err := auth.DeleteToken(); err != nil {
		return err
	}
	if err := auth.DeleteCredentials(); err != nil {
		return err
	}
	if err := newHiddenCache().Set(hiddenListing{}); err != nil {
		return err
	}
	return checkinMarker.Set("")
}

// LoggedIn reports whether a session token is stored.
func LoggedIn() bool {
	return auth.Token().IsPresent()
}
