package zaimanhua

import (
	"net/http"
	"strings"

	"github.com/zaisan-cli/zaisan/api"
	"github.com/zaisan-cli/zaisan/log"
	"github.com/zaisan-cli/zaisan/network"
	"github.com/zaisan-cli/zaisan/source"
	"github.com/zaisan-cli/zaisan/util"
)

// Page sizes of the individual author-search stages.
const (
	directSearchSize = 50
	fuzzySearchSize  = 30
)

// fuzzyMarkers are the decorative prefixes pen names carry on the service.
const fuzzyMarkers = "◎@◯"

// SearchByAuthor aggregates every known work of one credited author.
//
// The pipeline runs a keyword search over the author name, collects the
// canonical author tags from the detail records of matching candidates,
// fans out over those tags to pull the author's complete tagged works, and
// merges the stages into one deduplicated list. When the initial search
// yields nothing usable, progressively relaxed name variants are retried
// before giving up. Secondary stage failures degrade the result instead of
// failing the whole search.
func (z *Zaimanhua) SearchByAuthor(author string, page int) (*source.PageResult, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		return source.EmptyPage(), nil
	}

	search := &authorSearch{
		source:      z,
		author:      author,
		seenAuthors: make(map[string]struct{}),
		seenTags:    make(map[int64]struct{}),
	}
	return search.run(page), nil
}

// authorSearch carries the accumulated state of one author-search pipeline run.
type authorSearch struct {
	source *Zaimanhua
	author string

	// seenAuthors dedups detail fetches across candidates sharing an author field.
	seenAuthors map[string]struct{}
	seenTags    map[int64]struct{}

	strictTags  []int64
	partialTags []int64

	strictCandidates  []api.SearchItem
	matchedCandidates []api.SearchItem
}

func (s *authorSearch) run(page int) *source.PageResult {
	s.directStage(s.author, directSearchSize)

	if len(s.strictTags) == 0 && len(s.partialTags) == 0 && len(s.matchedCandidates) == 0 {
		s.fuzzyStage()
	}

	// Strict evidence anywhere narrows the whole result to exact matches.
	exactMatchFound := len(s.strictTags) > 0
	tags := s.partialTags
	if exactMatchFound {
		tags = s.strictTags
	}

	tagEntries, tagTotal := s.tagStage(tags, page)

	merger := newMerger()

	if s.source.showHidden() && page == 1 {
		for _, entry := range s.source.hidden.Scan(authorMatcher(s.author, exactMatchFound)) {
			merger.Add(s.source.hiddenEntryManga(entry))
		}
	}

	merger.Extend(tagEntries)

	candidates := s.matchedCandidates
	if exactMatchFound {
		candidates = s.strictCandidates
	}
	for _, item := range candidates {
		merger.Add(s.source.searchItemManga(item))
	}

	entries := merger.Finish()
	if len(entries) == 0 {
		return source.EmptyPage()
	}

	hasNext := (tagTotal > 0 && tagTotal >= api.TagPageSize) || len(entries) >= api.TagPageSize
	return &source.PageResult{Entries: entries, HasNextPage: hasNext}
}

// directStage searches the given term and folds matching hits into the
// candidate and tag accumulators. The match target stays the original author
// even when the term is a relaxed variant. Failures yield an empty stage.
func (s *authorSearch) directStage(term string, size int) {
	data, err := s.source.client.SearchIndex(term, 1, size)
	if err != nil {
		log.Warnf("author search for %q failed: %v", term, err)
		return
	}

	for _, item := range data.List {
		result := classify(item.Authors, s.author)
		if result == matchNone {
			continue
		}

		s.matchedCandidates = append(s.matchedCandidates, item)
		if result == matchStrict {
			s.strictCandidates = append(s.strictCandidates, item)
		}

		if _, ok := s.seenAuthors[item.Authors]; ok {
			continue
		}
		s.seenAuthors[item.Authors] = struct{}{}
		s.collectTags(item.ID)
	}
}

// collectTags pulls the canonical author tags from one candidate's detail
// record. A failed detail fetch only costs this candidate's tags.
func (s *authorSearch) collectTags(mangaID int64) {
	detail, err := s.source.client.Detail(mangaID)
	if err != nil {
		log.Debugf("detail fetch for candidate %d failed: %v", mangaID, err)
		return
	}

	for _, tag := range detail.Authors {
		if tag.TagID <= 0 {
			continue
		}
		if _, ok := s.seenTags[tag.TagID]; ok {
			continue
		}

		switch classify(tag.TagName, s.author) {
		case matchStrict:
			s.seenTags[tag.TagID] = struct{}{}
			s.strictTags = append(s.strictTags, tag.TagID)
		case matchPartial:
			s.seenTags[tag.TagID] = struct{}{}
			s.partialTags = append(s.partialTags, tag.TagID)
		}
	}
}

// fuzzyStage retries the search with progressively relaxed name variants:
// first the name stripped of decorative markers, then its first two runes
// when the stripped form is long enough to make the prefix meaningful.
// Attempts stop as soon as one yields author tags.
func (s *authorSearch) fuzzyStage() {
	core := strings.TrimLeft(s.author, fuzzyMarkers)

	shortCore := core
	if runes := []rune(core); len(runes) >= 4 {
		shortCore = string(runes[:2])
	}

	attempted := map[string]struct{}{s.author: {}}
	for _, term := range []string{core, shortCore} {
		if len(s.strictTags) > 0 || len(s.partialTags) > 0 {
			break
		}
		if _, ok := attempted[term]; term == "" || ok {
			continue
		}
		attempted[term] = struct{}{}
		s.directStage(term, fuzzySearchSize)
	}
}

// tagStage fans out over the collected author tags in parallel, one filter
// request per tag, and flattens the results. tagTotal reports the largest
// single-tag item count, which drives pagination.
func (s *authorSearch) tagStage(tags []int64, page int) ([]*source.Manga, int) {
	if len(tags) == 0 {
		return nil, 0
	}

	requests := make([]*http.Request, 0, len(tags))
	for _, tagID := range tags {
		req, err := s.source.client.Request(s.source.client.ThemeURL(tagID, page))
		if err != nil {
			continue
		}
		requests = append(requests, req)
	}

	var (
		entries  []*source.Manga
		tagTotal int
	)
	for _, result := range network.SendAll(s.source.client.HTTP, requests) {
		if result.Err != nil {
			log.Debugf("author tag fetch failed: %v", result.Err)
			continue
		}

		data, err := api.Decode[api.FilterData](result.Response)
		if err != nil {
			log.Debugf("author tag response undecodable: %v", err)
			continue
		}

		tagTotal = util.Max(tagTotal, len(data.ComicList))
		for _, item := range data.ComicList {
			entries = append(entries, s.source.filterItemManga(item))
		}
	}
	return entries, tagTotal
}
