package zaimanhua

import (
	"net/http"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/zaisan-cli/zaisan/api"
	"github.com/zaisan-cli/zaisan/filesystem"
	"github.com/zaisan-cli/zaisan/log"
	"github.com/zaisan-cli/zaisan/network"
	"github.com/zaisan-cli/zaisan/where"
)

const (
	// hiddenBatchPages is how many listing pages one scan batch fetches in parallel.
	hiddenBatchPages = 3

	// hiddenMaxPages bounds a single crawl so an unproductive scan cannot
	// walk the entire catalog.
	hiddenMaxPages = 15

	hiddenPageSize = 100
	hiddenLifetime = time.Hour
)

// hiddenEntry is one manga discovered on the default-sorted listing. Entries
// there that never surface through keyword search are the hidden content the
// scanner is after.
type hiddenEntry struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Authors string `json:"authors"`
}

// hiddenListing is one cached crawl of the default-sorted listing. Complete
// marks a crawl that walked the listing to its end; a crawl stopped early at
// a productive batch holds only the pages walked so far.
type hiddenListing struct {
	Entries  []hiddenEntry `json:"entries"`
	Complete bool          `json:"complete"`
}

// hiddenStore crawls and caches the hidden-content listing.
//
// Crawls are expensive, so results are cached for an hour and every scan
// consults the cache first. A crawl fetches pages in parallel batches and
// stops at the first batch that yields a match. A truncated crawl answers a
// later scan only when it already holds a match for it; otherwise the scan
// crawls the listing again.
type hiddenStore struct {
	client *api.Client
	cache  *gache.Cache[hiddenListing]
}

func newHiddenCache() *gache.Cache[hiddenListing] {
	return gache.New[hiddenListing](&gache.Options{
		Path:       where.HiddenCache(),
		Lifetime:   hiddenLifetime,
		FileSystem: &filesystem.GacheFs{},
	})
}

func newHiddenStore(client *api.Client) *hiddenStore {
	return &hiddenStore{
		client: client,
		cache:  newHiddenCache(),
	}
}

// Scan returns the hidden entries accepted by match, crawling the listing
// when the cache cannot answer.
func (h *hiddenStore) Scan(match func(hiddenEntry) bool) []hiddenEntry {
	if listing, ok := h.cached(); ok {
		matches := filterHidden(listing.Entries, match)
		if len(matches) > 0 || listing.Complete {
			return matches
		}
	}
	return filterHidden(h.crawl(match).Entries, match)
}

// Clear drops the cached crawl results.
func (h *hiddenStore) Clear() error {
	return h.cache.Set(hiddenListing{})
}

func (h *hiddenStore) cached() (hiddenListing, bool) {
	listing, expired, err := h.cache.Get()
	if err != nil || expired || len(listing.Entries) == 0 {
		return hiddenListing{}, false
	}
	return listing, true
}

func (h *hiddenStore) crawl(match func(hiddenEntry) bool) hiddenListing {
	var listing hiddenListing

	for page := 1; page <= hiddenMaxPages; page += hiddenBatchPages {
		batch := h.fetchBatch(page)
		if len(batch) == 0 {
			listing.Complete = true
			break
		}
		listing.Entries = append(listing.Entries, batch...)

		productive := false
		for _, entry := range batch {
			if match(entry) {
				productive = true
				break
			}
		}
		if productive {
			break
		}
	}

	if len(listing.Entries) > 0 {
		if err := h.cache.Set(listing); err != nil {
			log.Warnf("failed to cache hidden content listing: %v", err)
		}
	}
	return listing
}

func filterHidden(entries []hiddenEntry, match func(hiddenEntry) bool) []hiddenEntry {
	var matches []hiddenEntry
	for _, entry := range entries {
		if match(entry) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// fetchBatch requests hiddenBatchPages consecutive listing pages in parallel
// and flattens the results in page order. A failed page is skipped rather
// than failing the batch.
func (h *hiddenStore) fetchBatch(startPage int) []hiddenEntry {
	requests := make([]*http.Request, 0, hiddenBatchPages)
	for offset := 0; offset < hiddenBatchPages; offset++ {
		req, err := h.client.APIRequest(h.client.HiddenListURL(startPage+offset, hiddenPageSize))
		if err != nil {
			continue
		}
		requests = append(requests, req)
	}

	var entries []hiddenEntry
	for _, result := range network.SendAll(h.client.HTTP, requests) {
		if result.Err != nil {
			log.Debugf("hidden listing page failed: %v", result.Err)
			continue
		}

		data, err := api.Decode[api.FilterData](result.Response)
		if err != nil {
			log.Debugf("hidden listing page undecodable: %v", err)
			continue
		}

		for _, item := range data.ComicList {
			entries = append(entries, hiddenEntry{
				ID:      item.ID,
				Name:    item.Name,
				Authors: item.Authors,
			})
		}
	}
	return entries
}

// authorMatcher accepts hidden entries credited to the target author.
//
// Hidden listing entries delimit authors with commas rather than slashes, so
// strict mode compares comma-split tokens for exact equality. Loose mode
// reuses the substring rule of the main pipeline's matcher.
func authorMatcher(author string, strict bool) func(hiddenEntry) bool {
	return func(entry hiddenEntry) bool {
		if strict {
			for _, token := range strings.Split(entry.Authors, ",") {
				if strings.TrimSpace(token) == author {
					return true
				}
			}
			return false
		}
		return classify(entry.Authors, author) != matchNone
	}
}

// keywordMatcher accepts hidden entries whose title or author field contains
// the query, case-insensitively.
func keywordMatcher(query string) func(hiddenEntry) bool {
	query = strings.ToLower(query)
	return func(entry hiddenEntry) bool {
		return strings.Contains(strings.ToLower(entry.Name), query) ||
			strings.Contains(strings.ToLower(entry.Authors), query)
	}
}
