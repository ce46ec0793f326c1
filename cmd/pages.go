// Package cmd implements the command-line interface for zaisan.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/zaisan-cli/zaisan/icon"
	"github.com/zaisan-cli/zaisan/provider"
	"github.com/zaisan-cli/zaisan/source"
	"github.com/zaisan-cli/zaisan/util"
)

func init() {
	rootCmd.AddCommand(pagesCmd)
	pagesCmd.SetOut(os.Stdout)

	pagesCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
}

// pagesCmd lists the page image URLs of one chapter.
var pagesCmd = &cobra.Command{
	Use:   "pages [manga-id/chapter-id]",
	Short: "List the page image URLs of a chapter",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		src, err := provider.Default().CreateSource()
		handleErr(err)

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching pages of %s...", icon.Get(icon.Progress), args[0]))
		pages, err := src.PagesOf(&source.Chapter{ID: args[0]})
		erase()
		handleErr(err)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(pages))
			return
		}

		for _, page := range pages {
			cmd.Println(page.URL)
		}
	},
}
