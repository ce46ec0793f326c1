package zaimanhua

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/zaisan-cli/zaisan/api"
	"github.com/zaisan-cli/zaisan/source"
)

func parseStatus(raw string) source.Status {
	switch {
	case strings.Contains(raw, "连载"):
		return source.StatusOngoing
	case strings.Contains(raw, "完结"):
		return source.StatusCompleted
	case strings.Contains(raw, "停更"), strings.Contains(raw, "暂停"):
		return source.StatusHiatus
	default:
		return source.StatusUnknown
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func webURL(id int64) string {
	return fmt.Sprintf("%s/pages/comic/detail?id=%d", api.BaseWebURL, id)
}

func (z *Zaimanhua) searchItemManga(item api.SearchItem) *source.Manga {
	return &source.Manga{
		ID:      formatID(item.ID),
		Title:   item.Title,
		Cover:   item.Cover,
		Authors: splitAuthors(item.Authors),
		Status:  parseStatus(item.Status),
		URL:     webURL(item.ID),
		Source:  z,
	}
}

func (z *Zaimanhua) filterItemManga(item api.FilterItem) *source.Manga {
	return &source.Manga{
		ID:      formatID(item.ID),
		Title:   item.Name,
		Cover:   item.Cover,
		Authors: splitAuthors(item.Authors),
		Status:  parseStatus(item.Status),
		URL:     webURL(item.ID),
		Source:  z,
	}
}

func (z *Zaimanhua) rankItemManga(item api.RankItem) *source.Manga {
	return &source.Manga{
		ID:      formatID(item.ComicID),
		Title:   item.Title,
		Cover:   item.Cover,
		Authors: splitAuthors(item.Authors),
		Status:  parseStatus(item.Status),
		URL:     webURL(item.ComicID),
		Source:  z,
	}
}

func (z *Zaimanhua) hiddenEntryManga(entry hiddenEntry) *source.Manga {
	return &source.Manga{
		ID:      formatID(entry.ID),
		Title:   entry.Name,
		Authors: splitAuthors(entry.Authors),
		URL:     webURL(entry.ID),
		Source:  z,
	}
}

func (z *Zaimanhua) subscribeItemManga(item api.SubscribeItem) *source.Manga {
	return &source.Manga{
		ID:      formatID(item.ID),
		Title:   item.Name,
		Cover:   item.Cover,
		Authors: splitAuthors(item.Authors),
		URL:     webURL(item.ID),
		Source:  z,
	}
}

// detailManga converts a full detail record. Status and age rating both live
// in the status tag list, where an adult marker doubles as the NSFW flag.
func (z *Zaimanhua) detailManga(detail *api.MangaDetail) *source.Manga {
	manga := &source.Manga{
		ID:          formatID(detail.ID),
		Title:       detail.Title,
		Cover:       detail.Cover,
		Description: detail.Description,
		Status:      source.StatusUnknown,
		URL:         webURL(detail.ID),
		Source:      z,
	}

	manga.Authors = lo.FilterMap(detail.Authors, func(a api.AuthorTag, _ int) (string, bool) {
		name := strings.TrimSpace(a.TagName)
		return name, name != ""
	})

	manga.Tags = lo.Map(detail.Themes, func(t api.NamedTag, _ int) string {
		return t.TagName
	})

	for _, tag := range detail.Status {
		if strings.Contains(tag.TagName, "成人") || strings.Contains(tag.TagName, "18") {
			manga.NSFW = true
			continue
		}
		if status := parseStatus(tag.TagName); status != source.StatusUnknown {
			manga.Status = status
		}
	}

	switch {
	case detail.Direction == 2 && detail.IsLong == 1:
		manga.Viewer = source.ViewerWebtoon
	case detail.Direction == 2:
		manga.Viewer = source.ViewerLeftToRight
	default:
		manga.Viewer = source.ViewerRightToLeft
	}

	return manga
}

// detailChapters flattens the grouped chapter lists, numbering chapters from
// the oldest upwards so the newest chapter carries the highest number.
func detailChapters(detail *api.MangaDetail) []*source.Chapter {
	total := 0
	for _, group := range detail.Chapters {
		total += len(group.Data)
	}

	chapters := make([]*source.Chapter, 0, total)
	index := 0
	for _, group := range detail.Chapters {
		for _, item := range group.Data {
			chapters = append(chapters, &source.Chapter{
				ID:         fmt.Sprintf("%d/%d", detail.ID, item.ChapterID),
				Title:      item.ChapterTitle,
				Group:      group.Title,
				Number:     float32(total - index),
				UploadedAt: item.UpdateTime,
				URL: fmt.Sprintf(
					"%s/view/%s/%d/%d",
					api.DetailsWebURL, detail.ComicPy, detail.ID, item.ChapterID,
				),
			})
			index++
		}
	}
	return chapters
}
