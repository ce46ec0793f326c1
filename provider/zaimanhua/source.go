package zaimanhua

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/zaisan-cli/zaisan/api"
	"github.com/zaisan-cli/zaisan/auth"
	"github.com/zaisan-cli/zaisan/filesystem"
	"github.com/zaisan-cli/zaisan/internal/cache"
	"github.com/zaisan-cli/zaisan/key"
	"github.com/zaisan-cli/zaisan/log"
	"github.com/zaisan-cli/zaisan/source"
	"github.com/zaisan-cli/zaisan/where"
)

const (
	// Name is the canonical provider name.
	Name = "zaimanhua"

	// SourceID uniquely identifies this source.
	SourceID = "zh.zaimanhua"
)

// Options fix the search behavior of one source instance. They are resolved
// from the ambient configuration once at construction time, so a search call
// never consults mutable global state mid-flight.
type Options struct {
	// ShowHidden enables the hidden-content scanner on first result pages.
	ShowHidden bool

	// AutoCheckIn runs the daily account check-in on construction.
	AutoCheckIn bool
}

// OptionsFromConfig resolves the search options from the application
// configuration and login state. Hidden content requires enhanced mode and a
// logged-in account, since the listing behind it only responds meaningfully
// to authenticated requests.
func OptionsFromConfig() Options {
	enhanced := viper.GetBool(key.AccountEnhancedMode) && auth.Token().IsPresent()
	return Options{
		ShowHidden:  enhanced && viper.GetBool(key.AccountShowHidden),
		AutoCheckIn: viper.GetBool(key.AccountAutoCheckin),
	}
}

// Zaimanhua is the content source backed by the Zaimanhua service.
type Zaimanhua struct {
	client *api.Client
	hidden *hiddenStore
	opts   Options
}

// New constructs the source wired to the production API with options taken
// from the application configuration.
func New() *Zaimanhua {
	return NewWithOptions(OptionsFromConfig())
}

// NewWithOptions constructs the source wired to the production API. When
// automatic check-in is requested and an account is logged in, the daily
// check-in runs once per day as a side effect.
func NewWithOptions(opts Options) *Zaimanhua {
	tokens := &accountTokens{}
	client := api.NewClient(tokens)
	tokens.client = client

	z := &Zaimanhua{
		client: client,
		hidden: newHiddenStore(client),
		opts:   opts,
	}

	if opts.AutoCheckIn {
		z.autoCheckIn()
	}
	return z
}

func (z *Zaimanhua) Name() string {
	return Name
}

func (z *Zaimanhua) ID() string {
	return SourceID
}

func (z *Zaimanhua) showHidden() bool {
	return z.opts.ShowHidden
}

// MangaOf retrieves the full record of a manga by its decimal ID.
func (z *Zaimanhua) MangaOf(id string) (*source.Manga, error) {
	detail, err := z.cachedDetail(id)
	if err != nil {
		return nil, err
	}
	return z.detailManga(detail), nil
}

// ChaptersOf retrieves the complete chapter list of a manga.
func (z *Zaimanhua) ChaptersOf(manga *source.Manga) ([]*source.Chapter, error) {
	detail, err := z.cachedDetail(manga.ID)
	if err != nil {
		return nil, err
	}
	return detailChapters(detail), nil
}

// PagesOf retrieves the page images of a chapter, preferring the HD variant
// when the service provides one.
func (z *Zaimanhua) PagesOf(chapter *source.Chapter) ([]*source.Page, error) {
	mangaID, chapterID, found := strings.Cut(chapter.ID, "/")
	if !found {
		return nil, fmt.Errorf("malformed chapter id %q", chapter.ID)
	}

	pages, err := z.client.ChapterPages(mangaID, chapterID)
	if err != nil {
		return nil, err
	}

	urls := pages.PageURL
	if len(pages.PageURLHD) == len(urls) && len(urls) > 0 {
		urls = pages.PageURLHD
	}

	return lo.Map(urls, func(u string, index int) *source.Page {
		return &source.Page{Index: index, URL: u}
	}), nil
}

// cachedDetail fetches a manga detail record through the on-disk cache.
func (z *Zaimanhua) cachedDetail(id string) (*api.MangaDetail, error) {
	mangaID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || mangaID <= 0 {
		return nil, fmt.Errorf("malformed manga id %q", id)
	}

	cacheKey := cache.GenerateKey(id, SourceID+"-detail")

	var detail api.MangaDetail
	if cache.Read(cacheKey, &detail) {
		return &detail, nil
	}

	fetched, err := z.client.Detail(mangaID)
	if err != nil {
		return nil, err
	}

	if err := cache.Write(cacheKey, fetched); err != nil {
		log.Warnf("failed to cache manga detail: %v", err)
	}
	return fetched, nil
}

// CheckIn performs the daily account check-in. It reports whether the
// check-in was accepted; an already-completed day counts as accepted.
func (z *Zaimanhua) CheckIn() (bool, error) {
	token, ok := auth.Token().Get()
	if !ok {
		return false, fmt.Errorf("check-in requires a logged-in account")
	}
	return z.client.CheckIn(token)
}

// AccountInfo retrieves the logged-in account's profile.
func (z *Zaimanhua) AccountInfo() (*api.UserInfo, error) {
	token, ok := auth.Token().Get()
	if !ok {
		return nil, fmt.Errorf("account info requires a logged-in account")
	}
	return z.client.AccountInfo(token)
}

// ClearHidden drops the cached hidden-content listing.
func (z *Zaimanhua) ClearHidden() error {
	return z.hidden.Clear()
}

var checkinMarker = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "checkin.json"),
	FileSystem: &filesystem.GacheFs{},
})

// autoCheckIn runs the daily check-in at most once per calendar day, keyed
// by a persisted marker so repeated CLI invocations stay cheap.
func (z *Zaimanhua) autoCheckIn() {
	if auth.Token().IsAbsent() {
		return
	}

	today := time.Now().Format(time.DateOnly)
	if last, _, err := checkinMarker.Get(); err == nil && last == today {
		return
	}

	if _, err := z.CheckIn(); err != nil {
		log.Debugf("automatic check-in failed: %v", err)
		return
	}

	if err := checkinMarker.Set(today); err != nil {
		log.Debugf("failed to persist check-in marker: %v", err)
	}
}
