// Package source defines the domain models and interfaces for manga discovery and retrieval.
package source

// Chapter represents a discrete chapter within a manga series.
type Chapter struct {
	// ID is the provider-scoped identifier, "{manga_id}/{chapter_id}" for Zaimanhua.
	ID string `json:"id"`

	Title string `json:"title"`

	// Group is the chapter group this entry belongs to (main story, extras, ...).
	Group string `json:"group,omitempty"`

	// Number is the 1-based position counted from the newest chapter downwards.
	Number float32 `json:"number"`

	// UploadedAt is the unix timestamp of the last update, zero when unknown.
	UploadedAt int64 `json:"uploadedAt,omitempty"`

	URL string `json:"url,omitempty"`
}

func (c *Chapter) String() string {
	return c.Title
}
