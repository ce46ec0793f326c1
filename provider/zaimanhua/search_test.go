package zaimanhua

import (
	"net/http"
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSearch(t *testing.T) {
	Convey("Given a keyword search endpoint", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/search/index", func(w http.ResponseWriter, r *http.Request) {
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			if page > 2 {
				writeJSON(w, searchBody(45))
				return
			}
			writeJSON(w, searchBody(45,
				searchItem(int64(page*100+1), "海贼王", "尾田"),
				searchItem(int64(page*100+2), "海贼王外传", "尾田"),
			))
		})

		z, closeServer := newTestSource(mux)
		defer closeServer()

		Convey("A mid-listing page signals a next page", func() {
			result, err := z.Search("海贼王", 1)
			So(err, ShouldBeNil)
			So(resultIDs(result), ShouldResemble, []string{"101", "102"})
			So(result.HasNextPage, ShouldBeTrue)
		})

		Convey("The final page is terminal", func() {
			result, err := z.Search("海贼王", 3)
			So(err, ShouldBeNil)
			So(result.Entries, ShouldBeEmpty)
			So(result.HasNextPage, ShouldBeFalse)
		})

		Convey("A blank query returns an empty page without a request", func() {
			result, err := z.Search("   ", 1)
			So(err, ShouldBeNil)
			So(result.Entries, ShouldBeEmpty)
			So(result.HasNextPage, ShouldBeFalse)
		})
	})
}
