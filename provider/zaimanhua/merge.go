package zaimanhua

import (
	"strconv"

	"github.com/zaisan-cli/zaisan/source"
)

// mangaMerger accumulates manga from multiple search stages, deduplicating
// by numeric ID while preserving insertion order. Entries whose ID is not a
// positive integer are dropped; first occurrence wins.
type mangaMerger struct {
	seen    map[int64]struct{}
	entries []*source.Manga
}

func newMerger() *mangaMerger {
	return &mangaMerger{seen: make(map[int64]struct{})}
}

func (m *mangaMerger) Add(manga *source.Manga) {
	id, err := strconv.ParseInt(manga.ID, 10, 64)
	if err != nil || id <= 0 {
		return
	}

	if _, ok := m.seen[id]; ok {
		return
	}

	m.seen[id] = struct{}{}
	m.entries = append(m.entries, manga)
}

func (m *mangaMerger) Extend(entries []*source.Manga) {
	for _, entry := range entries {
		m.Add(entry)
	}
}

func (m *mangaMerger) Len() int {
	return len(m.entries)
}

func (m *mangaMerger) Finish() []*source.Manga {
	return m.entries
}
