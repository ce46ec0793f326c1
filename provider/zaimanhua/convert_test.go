package zaimanhua

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zaisan-cli/zaisan/api"
	"github.com/zaisan-cli/zaisan/source"
)

func TestParseStatus(t *testing.T) {
	Convey("Given raw status strings", t, func() {
		So(parseStatus("连载中"), ShouldEqual, source.StatusOngoing)
		So(parseStatus("已完结"), ShouldEqual, source.StatusCompleted)
		So(parseStatus("停更"), ShouldEqual, source.StatusHiatus)
		So(parseStatus("暂停更新"), ShouldEqual, source.StatusHiatus)
		So(parseStatus("其它"), ShouldEqual, source.StatusUnknown)
		So(parseStatus(""), ShouldEqual, source.StatusUnknown)
	})
}

func TestDetailManga(t *testing.T) {
	z := &Zaimanhua{}

	Convey("Given a full detail record", t, func() {
		detail := &api.MangaDetail{
			ID:          77,
			Title:       "甲作",
			Description: "desc",
			Authors: []api.AuthorTag{
				{TagID: 1, TagName: "张三"},
				{TagID: 2, TagName: " "},
			},
			Themes: []api.NamedTag{{TagName: "冒险"}, {TagName: "热血"}},
			Status: []api.NamedTag{{TagName: "连载中"}, {TagName: "成人"}},
		}

		Convey("When converting it", func() {
			manga := z.detailManga(detail)

			Convey("Core fields carry over", func() {
				So(manga.ID, ShouldEqual, "77")
				So(manga.Authors, ShouldResemble, []string{"张三"})
				So(manga.Tags, ShouldResemble, []string{"冒险", "热血"})
			})

			Convey("Status tags split into state and age rating", func() {
				So(manga.Status, ShouldEqual, source.StatusOngoing)
				So(manga.NSFW, ShouldBeTrue)
			})
		})

		Convey("Reading direction maps onto a viewer", func() {
			detail.Direction = 2
			detail.IsLong = 1
			So(z.detailManga(detail).Viewer, ShouldEqual, source.ViewerWebtoon)

			detail.IsLong = 0
			So(z.detailManga(detail).Viewer, ShouldEqual, source.ViewerLeftToRight)

			detail.Direction = 1
			So(z.detailManga(detail).Viewer, ShouldEqual, source.ViewerRightToLeft)
		})
	})
}

func TestDetailChapters(t *testing.T) {
	Convey("Given grouped chapters", t, func() {
		detail := &api.MangaDetail{
			ID:      77,
			ComicPy: "jiazuo",
			Chapters: []api.ChapterGroup{
				{
					Title: "连载",
					Data: []api.ChapterItem{
						{ChapterID: 3, ChapterTitle: "第3话", UpdateTime: 300},
						{ChapterID: 2, ChapterTitle: "第2话", UpdateTime: 200},
					},
				},
				{
					Title: "番外",
					Data: []api.ChapterItem{
						{ChapterID: 9, ChapterTitle: "特别篇"},
					},
				},
			},
		}

		Convey("When flattening them", func() {
			chapters := detailChapters(detail)
			So(chapters, ShouldHaveLength, 3)

			Convey("IDs are scoped to the manga", func() {
				So(chapters[0].ID, ShouldEqual, "77/3")
				So(chapters[2].ID, ShouldEqual, "77/9")
			})

			Convey("Numbers count down from the newest chapter", func() {
				So(chapters[0].Number, ShouldEqual, float32(3))
				So(chapters[1].Number, ShouldEqual, float32(2))
				So(chapters[2].Number, ShouldEqual, float32(1))
			})

			Convey("Groups and URLs carry over", func() {
				So(chapters[2].Group, ShouldEqual, "番外")
				So(chapters[0].URL, ShouldContainSubstring, "/view/jiazuo/77/3")
			})
		})
	})
}
