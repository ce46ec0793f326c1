// Package cmd implements the command-line interface for zaisan.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/zaisan-cli/zaisan/color"
	"github.com/zaisan-cli/zaisan/icon"
	"github.com/zaisan-cli/zaisan/provider"
	"github.com/zaisan-cli/zaisan/source"
	"github.com/zaisan-cli/zaisan/style"
	"github.com/zaisan-cli/zaisan/util"
)

func init() {
	rootCmd.AddCommand(mangaCmd)
	mangaCmd.SetOut(os.Stdout)

	mangaCmd.Flags().BoolP("chapters", "c", false, "Include the full chapter list")
	mangaCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
}

// mangaCmd displays the full record of a single manga.
var mangaCmd = &cobra.Command{
	Use:   "manga [id]",
	Short: "Display the details of a manga by its ID",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			withChapters = lo.Must(cmd.Flags().GetBool("chapters"))
			asJson       = lo.Must(cmd.Flags().GetBool("json"))
		)

		src, err := provider.Default().CreateSource()
		handleErr(err)

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching manga %s...", icon.Get(icon.Progress), args[0]))
		manga, err := src.MangaOf(args[0])
		if err == nil && withChapters {
			manga.Chapters, err = src.ChaptersOf(manga)
		}
		erase()
		handleErr(err)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(manga))
			return
		}

		printManga(cmd, manga)
	},
}

func printManga(cmd *cobra.Command, manga *source.Manga) {
	cmd.Println(style.Title(manga.Title))
	cmd.Println()

	field := func(name, value string) {
		if value != "" {
			cmd.Printf("  %s %s\n", style.Faint(name), value)
		}
	}

	field("Authors ", style.Fg(color.Cyan)(manga.AuthorField()))
	field("Status  ", string(manga.Status))
	if manga.NSFW {
		field("Rating  ", style.Fg(color.Red)("NSFW"))
	}
	field("Viewer  ", string(manga.Viewer))
	if len(manga.Tags) > 0 {
		field("Tags    ", lo.Reduce(manga.Tags, func(acc, tag string, i int) string {
			if i == 0 {
				return tag
			}
			return acc + ", " + tag
		}, ""))
	}
	field("URL     ", style.Faint(manga.URL))

	if manga.Description != "" {
		width, _, err := util.TerminalSize()
		if err != nil || width <= 0 {
			width = 80
		}
		cmd.Println()
		cmd.Println(style.New().Width(util.Min(width, 100)).Render(manga.Description))
	}

	if len(manga.Chapters) > 0 {
		cmd.Println()
		cmd.Println(style.Bold(util.Quantify(len(manga.Chapters), "chapter", "chapters")))
		for _, chapter := range manga.Chapters {
			cmd.Printf(
				"  %s %s %s",
				style.Faint(fmt.Sprintf("%4.0f.", chapter.Number)),
				chapter.Title,
				style.Faint("#"+chapter.ID),
			)
			if chapter.UploadedAt > 0 {
				cmd.Printf(" %s", style.Faint(time.Unix(chapter.UploadedAt, 0).Format(time.DateOnly)))
			}
			cmd.Println()
		}
	}
}
