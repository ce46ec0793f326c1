// Package source defines the domain models and interfaces for manga discovery and retrieval.
package source

// Page is a single image of a chapter.
type Page struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
}
