package api

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/zaisan-cli/zaisan/constant"
	"github.com/zaisan-cli/zaisan/log"
)

// md5Hex returns the lowercase hex MD5 digest of the input.
// The login endpoint expects the password pre-hashed this way.
func md5Hex(input string) string {
	digest := md5.Sum([]byte(input))
	return hex.EncodeToString(digest[:])
}

// Login authenticates with username and password, returning the issued JWT.
// A rejected credential pair yields an empty token and a nil error.
func (c *Client) Login(username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("passwd", md5Hex(password))

	req, err := http.NewRequest(http.MethodPost, c.AccountURL+"/login/passwd", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := do(c, req)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	data, err := Decode[LoginData](resp)
	if err != nil {
		if _, semantic := err.(*Error); semantic {
			log.Infof("login rejected: %v", err)
			return "", nil
		}
		return "", err
	}

	if data.User == nil || data.User.Token == "" {
		return "", nil
	}
	return data.User.Token, nil
}

// CheckIn performs the daily check-in for the given token.
// Reports whether the service accepted it.
func (c *Client) CheckIn(token string) (bool, error) {
	req, err := http.NewRequest(http.MethodPost, c.SignURL+"/task/sign_in", nil)
	if err != nil {
		return false, fmt.Errorf("create check-in request: %w", err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := do(c, req)
	if err != nil {
		return false, fmt.Errorf("check-in: %w", err)
	}
	defer resp.Body.Close()

	// The check-in payload carries no data; only the error code matters.
	var envelope Envelope[struct{}]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return false, fmt.Errorf("decode check-in response: %w", err)
	}
	return envelope.Errno == 0, nil
}

// AccountInfo fetches the profile of the authenticated account.
func (c *Client) AccountInfo(token string) (*UserInfo, error) {
	req, err := c.AuthRequest(c.SignURL+"/userInfo/get", token)
	if err != nil {
		return nil, err
	}

	data, err := fetch[UserInfoData](c, req)
	if err != nil {
		return nil, err
	}
	if data.UserInfo == nil {
		return nil, &Error{Code: -1, Message: "missing user info"}
	}
	return data.UserInfo, nil
}
