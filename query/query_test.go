package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/zaisan-cli/zaisan/filesystem"
	"github.com/zaisan-cli/zaisan/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		Convey("When remembering queries", func() {
			So(Remember("海贼王", 1), ShouldBeNil)
			So(Remember("鬼灭之刃", 10), ShouldBeNil)

			Convey("Then suggestions should be sorted by rank", func() {
				// Drop the in-memory layer to force a read from the store
				suggestionCache = make(map[string][]*queryRecord)

				s := SuggestMany("鬼")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 1)
				So(s[0], ShouldEqual, "鬼灭之刃")
			})

			Convey("It sanitizes input", func() {
				So(sanitize("  ONE PIECE  "), ShouldEqual, "one piece")
			})
		})

		Convey("When suggestions are disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			So(SuggestMany("海"), ShouldBeEmpty)
			viper.Set(key.SearchShowQuerySuggestions, true)
		})
	})
}
