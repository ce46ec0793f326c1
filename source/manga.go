// Package source defines the domain models and interfaces for manga discovery and retrieval.
package source

import (
	"encoding/json"
	"strings"
)

// Status describes the publication state of a manga.
type Status string

const (
	StatusUnknown   Status = "unknown"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusHiatus    Status = "hiatus"
)

// Viewer describes the intended page reading direction.
type Viewer string

const (
	ViewerRightToLeft Viewer = "rtl"
	ViewerLeftToRight Viewer = "ltr"
	ViewerWebtoon     Viewer = "webtoon"
)

// Manga represents a manga entity discovered through a provider search or listing.
type Manga struct {
	// ID is the provider-scoped identifier (a decimal integer for Zaimanhua).
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Cover       string   `json:"cover,omitempty"`
	Authors     []string `json:"authors,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Status      Status   `json:"status,omitempty"`
	NSFW        bool     `json:"nsfw,omitempty"`
	Viewer      Viewer   `json:"viewer,omitempty"`
	URL         string   `json:"url,omitempty"`

	Source Source `json:"-"`

	Chapters []*Chapter `json:"chapters,omitempty"`
}

func (m *Manga) String() string {
	return m.Title
}

// AuthorField flattens the author list back into the service's "/"-delimited
// form, the shape search payloads deliver it in.
func (m *Manga) AuthorField() string {
	return strings.Join(m.Authors, "/")
}

// JSON returns the JSON representation of the manga.
func (m *Manga) JSON() []byte {
	b, _ := json.Marshal(m)
	return b
}

// PageResult is one page of search or listing output.
type PageResult struct {
	Entries     []*Manga `json:"entries"`
	HasNextPage bool     `json:"hasNextPage"`
}

// EmptyPage returns a terminal empty page.
func EmptyPage() *PageResult {
	return &PageResult{Entries: []*Manga{}, HasNextPage: false}
}
