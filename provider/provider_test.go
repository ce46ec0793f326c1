package provider

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zaisan-cli/zaisan/provider/zaimanhua"
)

func TestProviders(t *testing.T) {
	Convey("Given the provider registry", t, func() {
		Convey("The default provider is the built-in one", func() {
			So(Default().Name, ShouldEqual, zaimanhua.Name)
			So(Default().ID, ShouldEqual, zaimanhua.SourceID)
		})

		Convey("Lookup by name finds built-ins", func() {
			p, ok := Get(zaimanhua.Name)
			So(ok, ShouldBeTrue)
			So(p.Name, ShouldEqual, zaimanhua.Name)

			_, ok = Get("missing")
			So(ok, ShouldBeFalse)
		})
	})
}
