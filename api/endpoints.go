package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/zaisan-cli/zaisan/network"
)

// Fixed page sizes used by the respective endpoint families.
const (
	SearchPageSize = 20
	TagPageSize    = 100
)

func do(c *Client, req *http.Request) (*http.Response, error) {
	return network.Do(c.http(), req)
}

// SearchURL builds the keyword search endpoint URL.
func (c *Client) SearchURL(keyword string, page, size int) string {
	return fmt.Sprintf(
		"%s/search/index?keyword=%s&source=0&page=%d&size=%d",
		c.BaseURL, url.QueryEscape(keyword), page, size,
	)
}

// FilterURL builds the filter/list endpoint URL from raw query parameters.
func (c *Client) FilterURL(params url.Values, page, size int) string {
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))
	return c.BaseURL + "/comic/filter/list?" + params.Encode()
}

// ThemeURL builds the filter endpoint URL for one author tag's complete works.
func (c *Client) ThemeURL(tagID int64, page int) string {
	return fmt.Sprintf(
		"%s/comic/filter/list?theme=%d&page=%d&size=%d",
		c.BaseURL, tagID, page, TagPageSize,
	)
}

// HiddenListURL builds the filter endpoint URL used for hidden-content scans.
func (c *Client) HiddenListURL(page, size int) string {
	return fmt.Sprintf(
		"%s/comic/filter/list?sortType=1&page=%d&size=%d",
		c.BaseURL, page, size,
	)
}

// RankURL builds the rank listing URL. byTime selects the ranking window
// (0 total, 1 daily, 2 monthly, 3 yearly).
func (c *Client) RankURL(byTime, page int) string {
	return fmt.Sprintf(
		"%s/comic/rank/list?rank_type=0&by_time=%d&page=%d&size=%d",
		c.BaseURL, byTime, page, SearchPageSize,
	)
}

// DetailURL builds the manga detail endpoint URL.
func (c *Client) DetailURL(mangaID int64) string {
	return fmt.Sprintf("%s/comic/detail/%d?channel=android", c.BaseURL, mangaID)
}

type searchRetryState int

const (
	searchAttempt searchRetryState = iota
	searchRefresh
	searchDone
)

// SearchIndex performs a keyword search.
//
// This is the one retryable stage: when the API rejects the attached token,
// the token source is asked to refresh exactly once and the request is
// resent; any further auth failure propagates as a normal error.
func (c *Client) SearchIndex(keyword string, page, size int) (*SearchData, error) {
	var (
		data      *SearchData
		err       error
		refreshed bool
	)

	for state := searchAttempt; state != searchDone; {
		switch state {
		case searchAttempt:
			var req *http.Request
			req, err = c.APIRequest(c.SearchURL(keyword, page, size))
			if err != nil {
				return nil, err
			}

			data, err = fetch[SearchData](c, req)
			if err != nil && IsAuthError(err) && !refreshed && c.Tokens != nil {
				state = searchRefresh
				continue
			}
			state = searchDone

		case searchRefresh:
			refreshed = true
			if c.Tokens.Refresh().IsPresent() {
				state = searchAttempt
			} else {
				state = searchDone
			}
		}
	}

	return data, err
}

// Filter fetches one page of the filter/list endpoint.
func (c *Client) Filter(params url.Values, page, size int) (*FilterData, error) {
	req, err := c.APIRequest(c.FilterURL(params, page, size))
	if err != nil {
		return nil, err
	}
	return fetch[FilterData](c, req)
}

// Rank fetches one page of the rank listing.
func (c *Client) Rank(byTime, page int) ([]RankItem, error) {
	req, err := c.APIRequest(c.RankURL(byTime, page))
	if err != nil {
		return nil, err
	}
	items, err := fetch[[]RankItem](c, req)
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// Detail fetches the full record of a single manga.
func (c *Client) Detail(mangaID int64) (*MangaDetail, error) {
	req, err := c.APIRequest(c.DetailURL(mangaID))
	if err != nil {
		return nil, err
	}

	data, err := fetch[DetailData](c, req)
	if err != nil {
		return nil, err
	}
	if data.Data == nil {
		return nil, &Error{Code: -1, Message: "missing nested data"}
	}
	return data.Data, nil
}

// ChapterPages fetches the page image URLs of one chapter.
func (c *Client) ChapterPages(comicID, chapterID string) (*ChapterPages, error) {
	u := fmt.Sprintf("%s/comic/chapter/%s/%s", c.BaseURL, comicID, chapterID)
	req, err := c.APIRequest(u)
	if err != nil {
		return nil, err
	}

	data, err := fetch[ChapterData](c, req)
	if err != nil {
		return nil, err
	}
	return &data.Data, nil
}

// Subscriptions fetches one page of the account's subscription list.
// Unlike the search paths, the token is mandatory here.
func (c *Client) Subscriptions(token string, page int) ([]SubscribeItem, error) {
	u := fmt.Sprintf("%s/comic/sub/list?status=0&firstLetter=&page=%d&size=50", c.BaseURL, page)
	req, err := c.AuthRequest(u, token)
	if err != nil {
		return nil, err
	}

	data, err := fetch[SubscribeData](c, req)
	if err != nil {
		return nil, err
	}
	return data.SubList, nil
}
