// Package network provides a pre-configured, optimized HTTP client for concurrent API communication.
package network

import (
	"net/http"
	"sync"
)

// Result holds the outcome of a single request within a batch.
// Exactly one of Response and Err is set.
type Result struct {
	Response *http.Response
	Err      error
}

// SendAll dispatches all requests concurrently through the given client and
// blocks until every request has completed. Output slot i corresponds to
// input slot i, so callers can correlate responses positionally. An
// individual request's failure is confined to its own slot and never affects
// sibling requests.
func SendAll(client *http.Client, requests []*http.Request) []Result {
	results := make([]Result, len(requests))

	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req *http.Request) {
			defer wg.Done()
			resp, err := Do(client, req)
			results[i] = Result{Response: resp, Err: err}
		}(i, req)
	}
	wg.Wait()

	return results
}
