// Package cmd implements the command-line interface for zaisan.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zaisan-cli/zaisan/color"
	"github.com/zaisan-cli/zaisan/icon"
	"github.com/zaisan-cli/zaisan/key"
	"github.com/zaisan-cli/zaisan/provider"
	"github.com/zaisan-cli/zaisan/query"
	"github.com/zaisan-cli/zaisan/source"
	"github.com/zaisan-cli/zaisan/style"
	"github.com/zaisan-cli/zaisan/util"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.SetOut(os.Stdout)

	searchCmd.Flags().StringP("author", "a", "", "Search by credited author instead of title keyword")
	searchCmd.Flags().IntP("page", "p", 1, "Result page to fetch")
	searchCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	searchCmd.Flags().Bool("schema", false, "Print the JSON schema of the output and exit")
}

// searchCmd queries the provider by title keyword or by credited author.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search manga by title keyword or by author",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			author = lo.Must(cmd.Flags().GetString("author"))
			page   = lo.Must(cmd.Flags().GetInt("page"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			schema = lo.Must(cmd.Flags().GetBool("schema"))
		)

		if schema {
			reflector := new(jsonschema.Reflector)
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(reflector.Reflect(&source.PageResult{})))
			return
		}

		var keyword string
		if len(args) > 0 {
			keyword = args[0]
		}

		if keyword == "" && author == "" {
			handleErr(fmt.Errorf("either a query argument or --author is required"))
		}

		src, err := provider.Default().CreateSource()
		handleErr(err)

		term := keyword
		if author != "" {
			term = author
		}
		_ = query.Remember(term, 1)

		erase := util.PrintErasable(fmt.Sprintf("%s Searching for %s...", icon.Get(icon.Search), style.Fg(color.Yellow)(term)))

		var result *source.PageResult
		if author != "" {
			result, err = src.SearchByAuthor(author, page)
		} else {
			result, err = src.Search(keyword, page)
		}
		erase()
		handleErr(err)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(result))
			return
		}

		if len(result.Entries) == 0 {
			cmd.Printf("%s Nothing found\n", icon.Get(icon.Fail))
			suggestQuery(cmd, term)
			return
		}

		printMangaList(cmd, result)
	},
}

func suggestQuery(cmd *cobra.Command, term string) {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return
	}

	if suggestion, ok := query.Suggest(term).Get(); ok && suggestion != strings.ToLower(term) {
		cmd.Printf("Did you mean %s?\n", style.Fg(color.Yellow)(suggestion))
	}
}

func printMangaList(cmd *cobra.Command, result *source.PageResult) {
	for _, manga := range result.Entries {
		cmd.Printf(
			"%s %s %s\n",
			icon.Get(icon.Book),
			style.Bold(manga.Title),
			style.Faint("#"+manga.ID),
		)

		if field := manga.AuthorField(); field != "" {
			cmd.Printf("   %s", style.Fg(color.Cyan)(field))
			if manga.Status != "" && manga.Status != source.StatusUnknown {
				cmd.Printf(" %s", style.Faint(string(manga.Status)))
			}
			cmd.Println()
		}
	}

	cmd.Printf("\n%s found", util.Quantify(len(result.Entries), "manga", "manga"))
	if result.HasNextPage {
		cmd.Printf(", pass %s for more", style.Fg(color.Yellow)("--page"))
	}
	cmd.Println()
}
