package zaimanhua

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zaisan-cli/zaisan/api"
	"github.com/zaisan-cli/zaisan/filesystem"
	"github.com/zaisan-cli/zaisan/source"
)

func init() {
	filesystem.SetMemMapFs()
}

func newTestSource(handler http.Handler) (*Zaimanhua, func()) {
	server := httptest.NewServer(handler)
	client := &api.Client{
		BaseURL:    server.URL,
		AccountURL: server.URL,
		SignURL:    server.URL,
		HTTP:       server.Client(),
	}
	return &Zaimanhua{client: client, hidden: newHiddenStore(client)}, server.Close
}

func envelope(data any) string {
	b, _ := json.Marshal(map[string]any{"errno": 0, "errmsg": "", "data": data})
	return string(b)
}

func searchBody(total int, items ...map[string]any) string {
	if items == nil {
		items = []map[string]any{}
	}
	return envelope(map[string]any{"list": items, "total": total})
}

func searchItem(id int64, title, authors string) map[string]any {
	return map[string]any{"id": id, "title": title, "authors": authors, "status": "连载"}
}

func detailBody(id int64, authorTags ...map[string]any) string {
	return envelope(map[string]any{"data": map[string]any{
		"id":      id,
		"title":   fmt.Sprintf("detail-%d", id),
		"authors": authorTags,
	}})
}

func authorTag(tagID int64, name string) map[string]any {
	return map[string]any{"tag_id": tagID, "tag_name": name}
}

func filterBody(items ...map[string]any) string {
	if items == nil {
		items = []map[string]any{}
	}
	return envelope(map[string]any{"comicList": items})
}

func filterItem(id int64, name, authors string) map[string]any {
	return map[string]any{"id": id, "name": name, "authors": authors, "status": "连载"}
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

// recorder captures which endpoints a pipeline run actually hit.
// The tag fan-out is concurrent, so access is guarded.
type recorder struct {
	mu       sync.Mutex
	searches []string
	details  []string
	themes   []string
}

func (r *recorder) search(keyword string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searches = append(r.searches, keyword)
}

func (r *recorder) detail(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.details = append(r.details, id)
}

func (r *recorder) theme(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes = append(r.themes, id)
}

func resultIDs(result *source.PageResult) []string {
	ids := make([]string, 0, len(result.Entries))
	for _, entry := range result.Entries {
		ids = append(ids, entry.ID)
	}
	return ids
}

func TestSearchByAuthorExact(t *testing.T) {
	Convey("Given an author credited under their exact name", t, func() {
		rec := &recorder{}
		mux := http.NewServeMux()
		mux.HandleFunc("/search/index", func(w http.ResponseWriter, r *http.Request) {
			keyword := r.URL.Query().Get("keyword")
			rec.search(keyword)
			if keyword == "张三" {
				writeJSON(w, searchBody(1, searchItem(10, "甲作", "张三")))
				return
			}
			writeJSON(w, searchBody(0))
		})
		mux.HandleFunc("/comic/detail/", func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimPrefix(r.URL.Path, "/comic/detail/")
			rec.detail(id)
			writeJSON(w, detailBody(10, authorTag(77, "张三")))
		})
		mux.HandleFunc("/comic/filter/list", func(w http.ResponseWriter, r *http.Request) {
			rec.theme(r.URL.Query().Get("theme"))
			writeJSON(w, filterBody(
				filterItem(100, "作品A", "张三"),
				filterItem(101, "作品B", "张三/李四"),
				filterItem(10, "甲作", "张三"),
			))
		})

		z, closeServer := newTestSource(mux)
		defer closeServer()

		Convey("When searching by that author", func() {
			result, err := z.SearchByAuthor("张三", 1)
			So(err, ShouldBeNil)

			Convey("Tag works come first and the candidate is deduplicated", func() {
				So(resultIDs(result), ShouldResemble, []string{"100", "101", "10"})
				So(result.HasNextPage, ShouldBeFalse)
			})

			Convey("The fallback never runs and the tag is fetched once", func() {
				So(rec.searches, ShouldResemble, []string{"张三"})
				So(rec.details, ShouldResemble, []string{"10"})
				So(rec.themes, ShouldResemble, []string{"77"})
			})
		})
	})
}

func TestSearchByAuthorFuzzyFallback(t *testing.T) {
	Convey("Given an author only findable without their decorative prefix", t, func() {
		rec := &recorder{}
		mux := http.NewServeMux()
		mux.HandleFunc("/search/index", func(w http.ResponseWriter, r *http.Request) {
			keyword := r.URL.Query().Get("keyword")
			rec.search(keyword)
			if keyword == "李四" {
				writeJSON(w, searchBody(1, searchItem(20, "乙作", "李四")))
				return
			}
			writeJSON(w, searchBody(0))
		})
		mux.HandleFunc("/comic/detail/", func(w http.ResponseWriter, r *http.Request) {
			rec.detail(strings.TrimPrefix(r.URL.Path, "/comic/detail/"))
			writeJSON(w, detailBody(20, authorTag(88, "李四")))
		})
		mux.HandleFunc("/comic/filter/list", func(w http.ResponseWriter, r *http.Request) {
			rec.theme(r.URL.Query().Get("theme"))
			writeJSON(w, filterBody(filterItem(200, "丙作", "李四")))
		})

		z, closeServer := newTestSource(mux)
		defer closeServer()

		Convey("When searching with the prefixed name", func() {
			result, err := z.SearchByAuthor("◎李四", 1)
			So(err, ShouldBeNil)

			Convey("Exactly one relaxed attempt runs", func() {
				// The short variant equals the stripped name here and is
				// not retried.
				So(rec.searches, ShouldResemble, []string{"◎李四", "李四"})
			})

			Convey("The partial evidence still yields the author's works", func() {
				So(resultIDs(result), ShouldResemble, []string{"200", "20"})
				So(rec.themes, ShouldResemble, []string{"88"})
			})
		})
	})
}

func TestSearchByAuthorShortNameFallback(t *testing.T) {
	Convey("Given a long author name only findable by its first two runes", t, func() {
		rec := &recorder{}
		mux := http.NewServeMux()
		mux.HandleFunc("/search/index", func(w http.ResponseWriter, r *http.Request) {
			keyword := r.URL.Query().Get("keyword")
			rec.search(keyword)
			if keyword == "工藤" {
				writeJSON(w, searchBody(1, searchItem(40, "庚作", "工藤新一郎")))
				return
			}
			writeJSON(w, searchBody(0))
		})
		mux.HandleFunc("/comic/detail/", func(w http.ResponseWriter, r *http.Request) {
			rec.detail(strings.TrimPrefix(r.URL.Path, "/comic/detail/"))
			writeJSON(w, detailBody(40, authorTag(99, "工藤新一郎")))
		})
		mux.HandleFunc("/comic/filter/list", func(w http.ResponseWriter, r *http.Request) {
			rec.theme(r.URL.Query().Get("theme"))
			writeJSON(w, filterBody(filterItem(400, "辛作", "工藤新一郎")))
		})

		z, closeServer := newTestSource(mux)
		defer closeServer()

		Convey("When searching with the prefixed full name", func() {
			result, err := z.SearchByAuthor("◎工藤新一郎", 1)
			So(err, ShouldBeNil)

			Convey("The stripped name misses and the two-rune variant runs", func() {
				So(rec.searches, ShouldResemble, []string{"◎工藤新一郎", "工藤新一郎", "工藤"})
			})

			Convey("The short variant still yields the author's works", func() {
				So(resultIDs(result), ShouldResemble, []string{"400", "40"})
				So(rec.themes, ShouldResemble, []string{"99"})
			})
		})
	})
}

func TestSearchByAuthorStrictArbitration(t *testing.T) {
	Convey("Given candidates with both exact and loose author credits", t, func() {
		rec := &recorder{}
		mux := http.NewServeMux()
		mux.HandleFunc("/search/index", func(w http.ResponseWriter, r *http.Request) {
			rec.search(r.URL.Query().Get("keyword"))
			writeJSON(w, searchBody(2,
				searchItem(30, "丁作", "王五"),
				searchItem(31, "戊作", "王五老师"),
			))
		})
		mux.HandleFunc("/comic/detail/", func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimPrefix(r.URL.Path, "/comic/detail/")
			rec.detail(id)
			if id == "30" {
				writeJSON(w, detailBody(30, authorTag(1, "王五")))
				return
			}
			writeJSON(w, detailBody(31, authorTag(2, "王五老师")))
		})
		mux.HandleFunc("/comic/filter/list", func(w http.ResponseWriter, r *http.Request) {
			rec.theme(r.URL.Query().Get("theme"))
			writeJSON(w, filterBody(filterItem(300, "己作", "王五")))
		})

		z, closeServer := newTestSource(mux)
		defer closeServer()

		Convey("When searching by the exact name", func() {
			result, err := z.SearchByAuthor("王五", 1)
			So(err, ShouldBeNil)

			Convey("Strict evidence drops the partial tag and candidate", func() {
				So(rec.themes, ShouldResemble, []string{"1"})
				So(resultIDs(result), ShouldResemble, []string{"300", "30"})
			})

			Convey("Both candidates still had their tags collected", func() {
				So(rec.details, ShouldHaveLength, 2)
			})
		})
	})
}

func TestSearchByAuthorEmptyInput(t *testing.T) {
	Convey("Given a blank author", t, func() {
		requests := 0
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			writeJSON(w, searchBody(0))
		})

		z, closeServer := newTestSource(handler)
		defer closeServer()

		Convey("The search returns an empty terminal page without network traffic", func() {
			for _, author := range []string{"", "   "} {
				result, err := z.SearchByAuthor(author, 1)
				So(err, ShouldBeNil)
				So(result.Entries, ShouldBeEmpty)
				So(result.HasNextPage, ShouldBeFalse)
			}
			So(requests, ShouldEqual, 0)
		})
	})
}

func TestSearchByAuthorPagination(t *testing.T) {
	Convey("Given an author whose tag holds many works", t, func() {
		tagItems := 0
		mux := http.NewServeMux()
		mux.HandleFunc("/search/index", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, searchBody(1, searchItem(40, "庚作", "赵六")))
		})
		mux.HandleFunc("/comic/detail/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, detailBody(40, authorTag(9, "赵六")))
		})
		mux.HandleFunc("/comic/filter/list", func(w http.ResponseWriter, r *http.Request) {
			items := make([]map[string]any, tagItems)
			for i := range items {
				items[i] = filterItem(int64(1000+i), fmt.Sprintf("作品%d", i), "赵六")
			}
			writeJSON(w, filterBody(items...))
		})

		z, closeServer := newTestSource(mux)
		defer closeServer()

		Convey("A full tag page signals a next page", func() {
			tagItems = 100
			result, err := z.SearchByAuthor("赵六", 1)
			So(err, ShouldBeNil)
			So(result.Entries, ShouldHaveLength, 101)
			So(result.HasNextPage, ShouldBeTrue)
		})

		Convey("A short tag page is terminal", func() {
			tagItems = 37
			result, err := z.SearchByAuthor("赵六", 1)
			So(err, ShouldBeNil)
			So(result.Entries, ShouldHaveLength, 38)
			So(result.HasNextPage, ShouldBeFalse)
		})
	})
}

func TestSearchByAuthorHiddenMerge(t *testing.T) {
	Convey("Given hidden content enabled and a hidden work by the author", t, func() {
		filesystem.SetMemMapFs()

		mux := http.NewServeMux()
		mux.HandleFunc("/search/index", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, searchBody(1, searchItem(10, "甲作", "张三")))
		})
		mux.HandleFunc("/comic/detail/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, detailBody(10, authorTag(77, "张三")))
		})
		mux.HandleFunc("/comic/filter/list", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("sortType") == "1" {
				writeJSON(w, filterBody(filterItem(900, "隐藏作", "张三")))
				return
			}
			writeJSON(w, filterBody(filterItem(100, "作品A", "张三")))
		})

		z, closeServer := newTestSource(mux)
		defer closeServer()
		z.opts.ShowHidden = true

		Convey("Hidden survivors merge ahead of tag works and candidates", func() {
			result, err := z.SearchByAuthor("张三", 1)
			So(err, ShouldBeNil)
			So(resultIDs(result), ShouldResemble, []string{"900", "100", "10"})
		})

		Convey("Later pages skip the hidden scan", func() {
			result, err := z.SearchByAuthor("张三", 2)
			So(err, ShouldBeNil)
			So(resultIDs(result), ShouldNotContain, "900")
		})
	})
}

func TestSearchByAuthorDegradedStages(t *testing.T) {
	Convey("Given failing secondary stages", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/search/index", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, searchBody(1, searchItem(50, "辛作", "钱七")))
		})
		mux.HandleFunc("/comic/detail/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		z, closeServer := newTestSource(mux)
		defer closeServer()

		Convey("The candidate list still comes back", func() {
			result, err := z.SearchByAuthor("钱七", 1)
			So(err, ShouldBeNil)
			So(resultIDs(result), ShouldResemble, []string{"50"})
			So(result.HasNextPage, ShouldBeFalse)
		})
	})
}
