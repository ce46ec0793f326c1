package network

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSendAll(t *testing.T) {
	Convey("SendAll", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, r.URL.Query().Get("n"))
		}))
		defer server.Close()

		Convey("Should preserve input order in the output", func() {
			var requests []*http.Request
			for i := 0; i < 5; i++ {
				url := fmt.Sprintf("%s/?n=%d", server.URL, i)
				requests = append(requests, lo.Must(http.NewRequest(http.MethodGet, url, nil)))
			}

			results := SendAll(server.Client(), requests)
			So(results, ShouldHaveLength, 5)

			for i, result := range results {
				So(result.Err, ShouldBeNil)
				body := lo.Must(io.ReadAll(result.Response.Body))
				result.Response.Body.Close()
				So(string(body), ShouldEqual, fmt.Sprint(i))
			}
		})

		Convey("Should confine a failure to its own slot", func() {
			good := lo.Must(http.NewRequest(http.MethodGet, server.URL, nil))
			bad := lo.Must(http.NewRequest(http.MethodGet, "http://127.0.0.1:0/unreachable", nil))

			results := SendAll(server.Client(), []*http.Request{good, bad, good})
			So(results[0].Err, ShouldBeNil)
			So(results[1].Err, ShouldNotBeNil)
			So(results[2].Err, ShouldBeNil)

			results[0].Response.Body.Close()
			results[2].Response.Body.Close()
		})

		Convey("Should handle an empty batch", func() {
			So(SendAll(server.Client(), nil), ShouldHaveLength, 0)
		})
	})
}
