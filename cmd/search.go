package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search for series by term",
	Long: `Look up series by a search term. Pass "tvdb:<id>" to look up a
specific TVDb ID. Results not yet in your library show a dash instead
of a library ID.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")

	results, err := client.SearchSeries(commandContext(cmd), term)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No series found.")
		return nil
	}

	fmt.Println(strings.Repeat("━", 80))
	fmt.Printf("%-8s %-10s %-50s %s\n", "ID", "TVDB", "TITLE", "YEAR")
	fmt.Println(strings.Repeat("━", 80))

	for _, s := range results {
		id := "-"
		if s.ID != 0 {
			id = fmt.Sprintf("%d", s.ID)
		}

		title := s.Title
		if len(title) > 48 {
			title = title[:45] + "..."
		}

		fmt.Printf("%-8s %-10d %-50s %d\n", id, s.TvdbID, title, s.Year)
	}
	fmt.Println(strings.Repeat("━", 80))

	return nil
}
