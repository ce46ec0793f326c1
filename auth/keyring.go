// Package auth provides a high-level API for persisting and retrieving account credentials from the system keyring.
package auth

import (
	"strings"

	"github.com/samber/mo"
	"github.com/zalando/go-keyring"
)

const (
	service        = "zaisan"
	tokenUser      = "zaimanhua-token"
	credentialUser = "zaimanhua-credentials"
)

// SetToken persists the Zaimanhua JWT to the system keyring.
func SetToken(token string) error {
	return keyring.Set(service, tokenUser, token)
}

// Token retrieves the Zaimanhua JWT from the system keyring.
// Absence of a stored token is not an error.
func Token() mo.Option[string] {
	token, err := keyring.Get(service, tokenUser)
	if err != nil || token == "" {
		return mo.None[string]()
	}
	return mo.Some(token)
}

// DeleteToken removes the Zaimanhua JWT from the system keyring.
func DeleteToken() error {
	err := keyring.Delete(service, tokenUser)
	if err == keyring.ErrNotFound {
		return nil
	}
	return err
}

// SetCredentials stores the username/password pair used to mint fresh tokens
// when the current one expires mid-session.
func SetCredentials(username, password string) error {
	return keyring.Set(service, credentialUser, username+"\n"+password)
}

// Credentials retrieves the stored username/password pair.
func Credentials() mo.Option[[2]string] {
	stored, err := keyring.Get(service, credentialUser)
	if err != nil {
		return mo.None[[2]string]()
	}

	username, password, found := strings.Cut(stored, "\n")
	if !found || username == "" {
		return mo.None[[2]string]()
	}
	return mo.Some([2]string{username, password})
}

// DeleteCredentials removes the stored username/password pair.
func DeleteCredentials() error {
	err := keyring.Delete(service, credentialUser)
	if err == keyring.ErrNotFound {
		return nil
	}
	return err
}
