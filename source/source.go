// Package source defines the domain models and interfaces for manga discovery and retrieval.
package source

// Source defines the required capabilities of a manga content provider.
type Source interface {
	// Name returns the unique identifier for the provider.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// Search executes a keyword query against the provider.
	Search(query string, page int) (*PageResult, error)

	// SearchByAuthor aggregates a manga list for one credited author,
	// combining keyword hits with the author's complete tagged works.
	SearchByAuthor(author string, page int) (*PageResult, error)

	// Listing retrieves a named browse listing (latest, completed, rank, ...).
	Listing(name string, page int) (*PageResult, error)

	// MangaOf retrieves the full details for a manga ID.
	MangaOf(id string) (*Manga, error)

	// ChaptersOf retrieves the complete chapter list for a manga.
	ChaptersOf(manga *Manga) ([]*Chapter, error)

	// PagesOf retrieves the page images of a chapter.
	PagesOf(chapter *Chapter) ([]*Page, error)
}
