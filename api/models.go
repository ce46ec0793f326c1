package api

// Envelope is the uniform response wrapper of the v4 API: a semantic error
// code, a human-readable message, and an optional typed payload.
type Envelope[T any] struct {
	Errno  int    `json:"errno"`
	Errmsg string `json:"errmsg"`
	Data   *T     `json:"data"`
}

// SearchData is the payload of the keyword search endpoint.
type SearchData struct {
	List  []SearchItem `json:"list"`
	Total int          `json:"total"`
}

// SearchItem is a single keyword search hit.
// The id field is the primary key; comic_id is always zero in search payloads.
type SearchItem struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Cover   string `json:"cover"`
	Authors string `json:"authors"`
	Status  string `json:"status"`
}

// FilterData is the payload of the filter/list endpoint.
type FilterData struct {
	ComicList []FilterItem `json:"comicList"`
}

// FilterItem is a single entry of a filter or listing response.
type FilterItem struct {
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	Cover                 string `json:"cover"`
	Authors               string `json:"authors"`
	Status                string `json:"status"`
	LastUpdateChapterName string `json:"last_update_chapter_name"`
	LastUpdateChapterID   int64  `json:"last_update_chapter_id"`
	LastUpdateTime        int64  `json:"last_updatetime"`
}

// RankItem is a single entry of the rank/list endpoint, which uses different
// field names than the filter endpoint.
type RankItem struct {
	ComicID int64  `json:"comic_id"`
	Title   string `json:"title"`
	Cover   string `json:"cover"`
	Authors string `json:"authors"`
	Status  string `json:"status"`
	Num     int64  `json:"num"`
}

// DetailData wraps the doubly-nested manga detail payload.
type DetailData struct {
	Data *MangaDetail `json:"data"`
}

// MangaDetail is the full manga record returned by the detail endpoint.
type MangaDetail struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Cover       string         `json:"cover"`
	Description string         `json:"description"`
	Authors     []AuthorTag    `json:"authors"`
	Themes      []NamedTag     `json:"types"`
	Status      []NamedTag     `json:"status"`
	Chapters    []ChapterGroup `json:"chapters"`
	Direction   int            `json:"direction"`
	IsLong      int            `json:"islong"`
	ComicPy     string         `json:"comic_py"`
}

// AuthorTag couples a credited author name with the canonical tag grouping
// all works by that author on the service.
type AuthorTag struct {
	TagID   int64  `json:"tag_id"`
	TagName string `json:"tag_name"`
}

// NamedTag is a bare tag name as used for themes and status markers.
type NamedTag struct {
	TagName string `json:"tag_name"`
}

// ChapterGroup is a titled group of chapters (main story, extras, ...).
type ChapterGroup struct {
	Title string        `json:"title"`
	Data  []ChapterItem `json:"data"`
}

// ChapterItem is a single chapter entry within a group.
type ChapterItem struct {
	ChapterID    int64  `json:"chapter_id"`
	ChapterTitle string `json:"chapter_title"`
	UpdateTime   int64  `json:"updatetime"`
}

// ChapterData wraps the nested page-list payload of the chapter endpoint.
type ChapterData struct {
	Data ChapterPages `json:"data"`
}

// ChapterPages carries the page image URLs, with an optional HD variant.
type ChapterPages struct {
	PageURL   []string `json:"page_url"`
	PageURLHD []string `json:"page_url_hd"`
}

// SubscribeData is the payload of the authenticated subscription listing.
type SubscribeData struct {
	SubList []SubscribeItem `json:"subList"`
}

// SubscribeItem is a single subscribed manga.
type SubscribeItem struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Cover   string `json:"cover"`
	Authors string `json:"authors"`
}

// LoginData is the payload of the password login endpoint.
type LoginData struct {
	User *UserToken `json:"user"`
}

// UserToken carries the JWT issued on login.
type UserToken struct {
	Token string `json:"token"`
}

// UserInfoData wraps the account info payload.
type UserInfoData struct {
	UserInfo *UserInfo `json:"userInfo"`
}

// UserInfo describes the authenticated account.
type UserInfo struct {
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Level    int64  `json:"user_level"`
	IsSign   bool   `json:"is_sign"`
}
