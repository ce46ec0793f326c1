// Package api provides a typed client for the Zaimanhua v4 application API.
package api

import (
	"fmt"
	"net/http"

	"github.com/samber/mo"
	"github.com/zaisan-cli/zaisan/constant"
	"github.com/zaisan-cli/zaisan/network"
)

// Endpoint families exposed by the service.
const (
	V4APIURL      = "https://v4api.zaimanhua.com/app/v1"
	AccountAPIURL = "https://account-api.zaimanhua.com/v1"
	SignAPIURL    = "https://i.zaimanhua.com/lpi/v1"
	BaseWebURL    = "https://www.zaimanhua.com"
	DetailsWebURL = "https://manhua.zaimanhua.com"
)

// errnoTokenInvalid is the semantic error code the API returns when a bearer
// token is rejected or has expired.
const errnoTokenInvalid = 2

// TokenSource supplies an optional bearer token for API requests.
//
// Token returns the token to attach, if any; implementations are expected to
// gate it behind their own policy (enhanced mode, login state). Refresh
// obtains a fresh token after the API rejected the current one, returning
// None when re-authentication is impossible.
type TokenSource interface {
	Token() mo.Option[string]
	Refresh() mo.Option[string]
}

// Client issues typed requests against the Zaimanhua API.
// The zero BaseURL falls back to the production endpoints.
type Client struct {
	BaseURL    string
	AccountURL string
	SignURL    string
	HTTP       *http.Client
	Tokens     TokenSource
}

// NewClient returns a client wired to the production API through the
// fingerprint-spoofing shared transport.
func NewClient(tokens TokenSource) *Client {
	return &Client{
		BaseURL:    V4APIURL,
		AccountURL: AccountAPIURL,
		SignURL:    SignAPIURL,
		HTTP:       network.TLSClient,
		Tokens:     tokens,
	}
}

func (c *Client) http() *http.Client {
	if c.HTTP == nil {
		return network.Client
	}
	return c.HTTP
}

// Request builds a GET request with the browser User-Agent and no authorization.
func (c *Client) Request(url string) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	return req, nil
}

// AuthRequest builds a GET request carrying the given bearer token.
func (c *Client) AuthRequest(url, token string) (*http.Request, error) {
	req, err := c.Request(url)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req, nil
}

// APIRequest builds a GET request, attaching the token-source bearer token
// when one is available. Absence of a token degrades to an unauthenticated
// request rather than failing.
func (c *Client) APIRequest(url string) (*http.Request, error) {
	if c.Tokens != nil {
		if token, ok := c.Tokens.Token().Get(); ok {
			return c.AuthRequest(url, token)
		}
	}
	return c.Request(url)
}
