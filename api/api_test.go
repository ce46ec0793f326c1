package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

// stubTokens is a scriptable TokenSource for exercising the refresh cycle.
type stubTokens struct {
	token     string
	next      string
	refreshes int
}

func (s *stubTokens) Token() mo.Option[string] {
	if s.token == "" {
		return mo.None[string]()
	}
	return mo.Some(s.token)
}

func (s *stubTokens) Refresh() mo.Option[string] {
	s.refreshes++
	if s.next == "" {
		return mo.None[string]()
	}
	s.token = s.next
	return mo.Some(s.next)
}

func testClient(server *httptest.Server, tokens TokenSource) *Client {
	return &Client{
		BaseURL:    server.URL,
		AccountURL: server.URL,
		SignURL:    server.URL,
		HTTP:       server.Client(),
		Tokens:     tokens,
	}
}

func TestSearchIndexRetry(t *testing.T) {
	Convey("SearchIndex", t, func() {
		Convey("Should refresh the token once on an auth error and resend", func() {
			var attempts int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				attempts++
				if r.Header.Get("Authorization") != "Bearer fresh" {
					fmt.Fprint(w, `{"errno": 2, "errmsg": "token expired"}`)
					return
				}
				fmt.Fprint(w, `{"errno": 0, "data": {"list": [{"id": 7, "title": "甲", "authors": "乙"}], "total": 1}}`)
			}))
			defer server.Close()

			tokens := &stubTokens{token: "stale", next: "fresh"}
			client := testClient(server, tokens)

			data, err := client.SearchIndex("甲", 1, SearchPageSize)
			So(err, ShouldBeNil)
			So(tokens.refreshes, ShouldEqual, 1)
			So(attempts, ShouldEqual, 2)
			So(data.List, ShouldHaveLength, 1)
			So(data.List[0].ID, ShouldEqual, 7)
		})

		Convey("Should give up after a single refresh", func() {
			var attempts int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				attempts++
				fmt.Fprint(w, `{"errno": 2, "errmsg": "token expired"}`)
			}))
			defer server.Close()

			tokens := &stubTokens{token: "stale", next: "still-bad"}
			client := testClient(server, tokens)

			_, err := client.SearchIndex("甲", 1, SearchPageSize)
			So(err, ShouldNotBeNil)
			So(IsAuthError(err), ShouldBeTrue)
			So(tokens.refreshes, ShouldEqual, 1)
			So(attempts, ShouldEqual, 2)
		})

		Convey("Should not refresh when re-authentication is impossible", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"errno": 2, "errmsg": "token expired"}`)
			}))
			defer server.Close()

			tokens := &stubTokens{token: "stale"}
			client := testClient(server, tokens)

			_, err := client.SearchIndex("甲", 1, SearchPageSize)
			So(IsAuthError(err), ShouldBeTrue)
			So(tokens.refreshes, ShouldEqual, 1)
		})
	})
}

func TestDecodeErrors(t *testing.T) {
	Convey("Decode", t, func() {
		Convey("Should surface a non-zero error code as an *Error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"errno": 42, "errmsg": "boom"}`)
			}))
			defer server.Close()

			client := testClient(server, nil)
			_, err := client.Detail(1)
			So(err, ShouldNotBeNil)

			apiErr, ok := err.(*Error)
			So(ok, ShouldBeTrue)
			So(apiErr.Code, ShouldEqual, 42)
			So(IsAuthError(err), ShouldBeFalse)
		})

		Convey("Should treat a missing data field as an error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"errno": 0}`)
			}))
			defer server.Close()

			client := testClient(server, nil)
			_, err := client.Detail(1)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLogin(t *testing.T) {
	Convey("Login", t, func() {
		Convey("Should send the md5-hashed password and return the issued token", func(c C) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.ParseForm(), ShouldBeNil)
				// md5("hunter2")
				c.So(r.Form.Get("passwd"), ShouldEqual, "2ab96390c7dbe3439de74d0c9b0b1767")
				fmt.Fprint(w, `{"errno": 0, "data": {"user": {"token": "jwt-token"}}}`)
			}))
			defer server.Close()

			client := testClient(server, nil)
			token, err := client.Login("reader", "hunter2")
			So(err, ShouldBeNil)
			So(token, ShouldEqual, "jwt-token")
		})

		Convey("Should return an empty token on rejected credentials", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"errno": 1, "errmsg": "wrong password"}`)
			}))
			defer server.Close()

			client := testClient(server, nil)
			token, err := client.Login("reader", "nope")
			So(err, ShouldBeNil)
			So(token, ShouldBeEmpty)
		})
	})
}
