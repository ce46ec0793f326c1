package zaimanhua

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/samber/lo"
	"github.com/zaisan-cli/zaisan/api"
	"github.com/zaisan-cli/zaisan/auth"
	"github.com/zaisan-cli/zaisan/source"
)

// listing describes one named browse listing in terms of filter parameters,
// or a special mode when the listing is not filter-backed.
type listing struct {
	params  url.Values
	rank    int
	sub     bool
	hasRank bool
}

// Curated listings. Status and category values are the service's fixed
// taxonomy IDs.
var listings = map[string]listing{
	"latest":    {params: url.Values{"sortType": {"1"}}},
	"popular":   {params: url.Values{"sortType": {"0"}}},
	"ongoing":   {params: url.Values{"status": {"2309"}}},
	"completed": {params: url.Values{"status": {"2310"}}},
	"short":     {params: url.Values{"cate": {"29205"}}},
	"shounen":   {params: url.Values{"cate": {"3262"}}},
	"shoujo":    {params: url.Values{"cate": {"3263"}}},
	"seinen":    {params: url.Values{"cate": {"3264"}}},
	"josei":     {params: url.Values{"cate": {"13626"}}},
	"rank":      {rank: 2, hasRank: true},
	"subscribed": {
		sub: true,
	},
}

// Listings returns the names of all supported browse listings, sorted.
func Listings() []string {
	names := lo.Keys(listings)
	sort.Strings(names)
	return names
}

// Listing retrieves one page of a named browse listing.
func (z *Zaimanhua) Listing(name string, page int) (*source.PageResult, error) {
	entry, ok := listings[name]
	if !ok {
		return nil, fmt.Errorf("unknown listing %q", name)
	}

	switch {
	case entry.hasRank:
		return z.rankListing(entry.rank, page)
	case entry.sub:
		return z.subscribedListing(page)
	default:
		return z.filterListing(entry.params, page)
	}
}

func (z *Zaimanhua) filterListing(params url.Values, page int) (*source.PageResult, error) {
	merged := url.Values{}
	for k, v := range params {
		merged[k] = v
	}

	data, err := z.client.Filter(merged, page, api.TagPageSize)
	if err != nil {
		return nil, err
	}

	entries := lo.Map(data.ComicList, func(item api.FilterItem, _ int) *source.Manga {
		return z.filterItemManga(item)
	})
	return &source.PageResult{
		Entries:     entries,
		HasNextPage: len(entries) >= api.TagPageSize,
	}, nil
}

func (z *Zaimanhua) rankListing(byTime, page int) (*source.PageResult, error) {
	items, err := z.client.Rank(byTime, page)
	if err != nil {
		return nil, err
	}

	entries := lo.Map(items, func(item api.RankItem, _ int) *source.Manga {
		return z.rankItemManga(item)
	})
	return &source.PageResult{
		Entries:     entries,
		HasNextPage: len(entries) >= api.SearchPageSize,
	}, nil
}

func (z *Zaimanhua) subscribedListing(page int) (*source.PageResult, error) {
	token, ok := auth.Token().Get()
	if !ok {
		return nil, fmt.Errorf("the subscribed listing requires a logged-in account")
	}

	items, err := z.client.Subscriptions(token, page)
	if err != nil {
		return nil, err
	}

	entries := lo.Map(items, func(item api.SubscribeItem, _ int) *source.Manga {
		return z.subscribeItemManga(item)
	})
	return &source.PageResult{
		Entries:     entries,
		HasNextPage: len(entries) >= 50,
	}, nil
}
