package zaimanhua

import (
	"strings"

	"github.com/zaisan-cli/zaisan/api"
	"github.com/zaisan-cli/zaisan/source"
)

// Search executes a keyword search, one page at a time. On the first page,
// matching hidden-content entries are appended behind the regular hits when
// hidden content is enabled.
func (z *Zaimanhua) Search(query string, page int) (*source.PageResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return source.EmptyPage(), nil
	}

	data, err := z.client.SearchIndex(query, page, api.SearchPageSize)
	if err != nil {
		return nil, err
	}

	merger := newMerger()
	for _, item := range data.List {
		merger.Add(z.searchItemManga(item))
	}

	if z.showHidden() && page == 1 {
		for _, entry := range z.hidden.Scan(keywordMatcher(query)) {
			merger.Add(z.hiddenEntryManga(entry))
		}
	}

	entries := merger.Finish()
	if len(entries) == 0 {
		return source.EmptyPage(), nil
	}

	return &source.PageResult{
		Entries:     entries,
		HasNextPage: page*api.SearchPageSize < data.Total,
	}, nil
}
