// Package cmd implements the command-line interface for zaisan.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/zaisan-cli/zaisan/color"
	"github.com/zaisan-cli/zaisan/icon"
	"github.com/zaisan-cli/zaisan/provider"
	"github.com/zaisan-cli/zaisan/provider/zaimanhua"
	"github.com/zaisan-cli/zaisan/style"
	"github.com/zaisan-cli/zaisan/util"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.SetOut(os.Stdout)

	listCmd.Flags().IntP("page", "p", 1, "Result page to fetch")
	listCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
}

// listCmd retrieves one of the curated browse listings.
var listCmd = &cobra.Command{
	Use:   "list [listing]",
	Short: "Browse a curated listing (latest, completed, rank, ...)",
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return zaimanhua.Listings(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			page   = lo.Must(cmd.Flags().GetInt("page"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
		)

		if len(args) == 0 {
			cmd.Println(style.Bold("Available listings"))
			for _, name := range zaimanhua.Listings() {
				cmd.Printf("  %s\n", style.Fg(color.Yellow)(name))
			}
			return
		}

		src, err := provider.Default().CreateSource()
		handleErr(err)

		name := strings.ToLower(args[0])
		erase := util.PrintErasable(fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), style.Fg(color.Yellow)(name)))
		result, err := src.Listing(name, page)
		erase()
		handleErr(err)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(result))
			return
		}

		if len(result.Entries) == 0 {
			cmd.Printf("%s The listing is empty\n", icon.Get(icon.Fail))
			return
		}

		printMangaList(cmd, result)
	},
}
