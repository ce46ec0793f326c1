package zaimanhua

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zaisan-cli/zaisan/auth"
	"github.com/zaisan-cli/zaisan/filesystem"
	"github.com/zalando/go-keyring"
)

func TestLogout(t *testing.T) {
	Convey("Given a logged-in account with warmed session state", t, func() {
		filesystem.SetMemMapFs()
		keyring.MockInit()

		So(auth.SetToken("session-token"), ShouldBeNil)
		So(auth.SetCredentials("user", "pass"), ShouldBeNil)

		seeded := hiddenListing{Entries: []hiddenEntry{{ID: 1, Name: "甲", Authors: "某人"}}}
		So(newHiddenCache().Set(seeded), ShouldBeNil)

		today := time.Now().Format(time.DateOnly)
		So(checkinMarker.Set(today), ShouldBeNil)

		Convey("When logging out", func() {
			So(Logout(), ShouldBeNil)

			Convey("The token and credentials are gone", func() {
				So(auth.Token().IsAbsent(), ShouldBeTrue)
				So(auth.Credentials().IsAbsent(), ShouldBeTrue)
				So(LoggedIn(), ShouldBeFalse)
			})

			Convey("The hidden-content cache is dropped", func() {
				_, ok := newHiddenStore(nil).cached()
				So(ok, ShouldBeFalse)
			})

			Convey("The check-in marker no longer covers today", func() {
				last, _, err := checkinMarker.Get()
				So(err, ShouldBeNil)
				So(last, ShouldNotEqual, today)
			})
		})
	})
}
