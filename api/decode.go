package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Error is a semantic API failure: the service answered, but with a non-zero
// error code.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "api error " + strconv.Itoa(e.Code)
	}
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// IsAuthError reports whether err is the API's token-rejected error.
func IsAuthError(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Code == errnoTokenInvalid
}

// Decode consumes and closes an HTTP response, unwrapping the API envelope
// into its typed payload. A non-200 status, a malformed body, a non-zero
// error code, and a missing data field all surface as errors so that callers
// can uniformly treat any of them as an empty contribution.
func Decode[T any](resp *http.Response) (*T, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var envelope Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if envelope.Errno != 0 {
		return nil, &Error{Code: envelope.Errno, Message: envelope.Errmsg}
	}

	if envelope.Data == nil {
		return nil, &Error{Code: -1, Message: "missing data"}
	}

	return envelope.Data, nil
}

// fetch performs a single GET request and decodes the enveloped payload.
func fetch[T any](c *Client, req *http.Request) (*T, error) {
	resp, err := do(c, req)
	if err != nil {
		return nil, err
	}
	return Decode[T](resp)
}
