package zaimanhua

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zaisan-cli/zaisan/api"
	"github.com/zaisan-cli/zaisan/filesystem"
)

// hiddenServer serves the default-sorted listing with a configurable page
// holding the sought author.
type hiddenServer struct {
	mu         sync.Mutex
	pages      []int
	matchPage  int
	secondPage int
	totalPages int
}

func (h *hiddenServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		h.mu.Lock()
		h.pages = append(h.pages, page)
		h.mu.Unlock()

		if page > h.totalPages {
			writeJSON(w, filterBody())
			return
		}

		authors := "某人"
		switch page {
		case h.matchPage:
			authors = "目标作者"
		case h.secondPage:
			authors = "第二作者"
		}
		writeJSON(w, filterBody(
			filterItem(int64(page*10), "隐藏作品", authors),
			filterItem(int64(page*10+1), "普通作品", "某人"),
		))
	}
}

func (h *hiddenServer) requestedPages() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	pages := append([]int(nil), h.pages...)
	sort.Ints(pages)
	return pages
}

func newHiddenTestStore(handler http.Handler) (*hiddenStore, func()) {
	filesystem.SetMemMapFs()
	server := httptest.NewServer(handler)
	client := &api.Client{BaseURL: server.URL, HTTP: server.Client()}
	return newHiddenStore(client), server.Close
}

func TestHiddenScan(t *testing.T) {
	Convey("Given a hidden listing with the author on the fourth page", t, func() {
		server := &hiddenServer{matchPage: 4, totalPages: 20}
		store, closeServer := newHiddenTestStore(server.handler())
		defer closeServer()

		Convey("When scanning for the author", func() {
			matches := store.Scan(authorMatcher("目标作者", false))

			Convey("The crawl stops after the first productive batch", func() {
				So(server.requestedPages(), ShouldResemble, []int{1, 2, 3, 4, 5, 6})
			})

			Convey("Only the author's entry survives", func() {
				So(matches, ShouldHaveLength, 1)
				So(matches[0].ID, ShouldEqual, int64(40))
			})

			Convey("A second scan is served from the cache", func() {
				before := len(server.requestedPages())
				again := store.Scan(authorMatcher("目标作者", false))
				So(again, ShouldHaveLength, 1)
				So(server.requestedPages(), ShouldHaveLength, before)
			})
		})
	})
}

func TestHiddenScanTruncatedCache(t *testing.T) {
	Convey("Given a truncated crawl cached for one author", t, func() {
		server := &hiddenServer{matchPage: 4, secondPage: 10, totalPages: 20}
		store, closeServer := newHiddenTestStore(server.handler())
		defer closeServer()

		first := store.Scan(authorMatcher("目标作者", false))
		So(first, ShouldHaveLength, 1)
		So(server.requestedPages(), ShouldResemble, []int{1, 2, 3, 4, 5, 6})

		Convey("A scan for another author crawls past the cached pages", func() {
			second := store.Scan(authorMatcher("第二作者", false))

			So(second, ShouldHaveLength, 1)
			So(second[0].ID, ShouldEqual, int64(100))
			// The first six pages are walked again before reaching page 10.
			So(server.requestedPages(), ShouldHaveLength, 18)
		})

		Convey("A scan the cache already answers stays off the network", func() {
			before := len(server.requestedPages())
			again := store.Scan(authorMatcher("目标作者", false))
			So(again, ShouldHaveLength, 1)
			So(server.requestedPages(), ShouldHaveLength, before)
		})
	})
}

func TestHiddenScanExhausted(t *testing.T) {
	Convey("Given a short listing without the author", t, func() {
		server := &hiddenServer{matchPage: 0, totalPages: 4}
		store, closeServer := newHiddenTestStore(server.handler())
		defer closeServer()

		Convey("The crawl walks to the end and yields nothing", func() {
			matches := store.Scan(authorMatcher("目标作者", false))
			So(matches, ShouldBeEmpty)
			// Pages 7 to 9 come back empty, ending the crawl.
			So(server.requestedPages(), ShouldResemble, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
		})
	})
}

func TestHiddenMatchers(t *testing.T) {
	Convey("Given hidden entries", t, func() {
		exact := hiddenEntry{ID: 1, Name: "甲", Authors: "目标作者"}
		loose := hiddenEntry{ID: 2, Name: "乙", Authors: "目标作者老师"}
		other := hiddenEntry{ID: 3, Name: "丙", Authors: "某人"}

		Convey("The strict author matcher only accepts exact credits", func() {
			match := authorMatcher("目标作者", true)
			So(match(exact), ShouldBeTrue)
			So(match(loose), ShouldBeFalse)
			So(match(other), ShouldBeFalse)
		})

		Convey("The strict author matcher splits comma-delimited credits", func() {
			match := authorMatcher("目标作者", true)
			So(match(hiddenEntry{ID: 5, Authors: "某人, 目标作者"}), ShouldBeTrue)
			So(match(hiddenEntry{ID: 6, Authors: "某人/目标作者"}), ShouldBeFalse)
		})

		Convey("The loose author matcher accepts partial credits", func() {
			match := authorMatcher("目标作者", false)
			So(match(exact), ShouldBeTrue)
			So(match(loose), ShouldBeTrue)
			So(match(other), ShouldBeFalse)
		})

		Convey("The keyword matcher checks title and authors case-insensitively", func() {
			entry := hiddenEntry{ID: 4, Name: "Silent Hill", Authors: "某人"}
			So(keywordMatcher("silent")(entry), ShouldBeTrue)
			So(keywordMatcher("某人")(entry), ShouldBeTrue)
			So(keywordMatcher("missing")(entry), ShouldBeFalse)
		})
	})
}
