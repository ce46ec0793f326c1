// Package network provides a pre-configured, optimized HTTP client for concurrent API communication.
package network

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client is the singleton HTTP client shared across the application for efficient resource utilization.
// It is configured with increased concurrency limits and reasonable timeouts tailored for bulk fan-out workflows.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// limiter throttles outbound requests so that tag fan-out and hidden-content
// crawls stay below the API's abuse threshold.
var limiter = rate.NewLimiter(rate.Limit(20), 40)

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

// Do executes an HTTP request through the given client after acquiring a rate-limit slot.
func Do(client *http.Client, req *http.Request) (*http.Response, error) {
	if err := limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return client.Do(req)
}
