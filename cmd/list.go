package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arrtools/batcharr/filter"
	"github.com/arrtools/batcharr/sonarr"
)

var (
	filterExpr string
	preset     string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List series matching the filter criteria",
	Long: `List series in your Sonarr library, optionally narrowed down by a
filter expression or a preset filter from the config file.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// getFilterExpression resolves the filter from flags and config presets
func getFilterExpression() (string, error) {
	if filterExpr != "" && preset != "" {
		return "", fmt.Errorf("cannot use both --filter and --preset")
	}
	if preset != "" {
		expr, ok := cfg.Filter[preset]
		if !ok {
			return "", fmt.Errorf("preset %q not found in config", preset)
		}
		return expr, nil
	}
	return filterExpr, nil
}

func runList(cmd *cobra.Command, args []string) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	var seriesFilter *filter.Filter
	if expression != "" {
		seriesFilter, err = filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		logger.Info().Str("filter", expression).Msg("Listing series")
	}

	ctx := commandContext(cmd)
	series, err := client.AllSeries(ctx)
	if err != nil {
		return err
	}

	tags, err := client.Tags(ctx)
	if err != nil {
		return err
	}
	tagLabels := make(map[int64]string, len(tags))
	for _, tag := range tags {
		tagLabels[tag.ID] = tag.Label
	}

	var matched []sonarr.Series
	for _, s := range series {
		if seriesFilter != nil {
			ok, err := seriesFilter.Match(s, labelsFor(s, tagLabels))
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}
		matched = append(matched, s)
	}

	if len(matched) == 0 {
		fmt.Println("No series found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nFound %d series:\n", len(matched))
	fmt.Println(strings.Repeat("-", 80))

	for _, s := range matched {
		fmt.Printf("• %s (%d)", s.Title, s.Year)
		if !s.Monitored {
			fmt.Printf(" [UNMONITORED]")
		}
		fmt.Println()
		if cfg.Safety.ShowDetails {
			fmt.Printf("  TVDb: %d | Type: %s | Network: %s\n", s.TvdbID, s.SeriesType, s.Network)
			if labels := labelsFor(s, tagLabels); len(labels) > 0 {
				fmt.Printf("  Tags: %s\n", strings.Join(labels, ", "))
			}
		}
	}

	return nil
}

func labelsFor(s sonarr.Series, tagLabels map[int64]string) []string {
	labels := make([]string, 0, len(s.Tags))
	for _, id := range s.Tags {
		if label, ok := tagLabels[id]; ok {
			labels = append(labels, label)
		}
	}
	return labels
}
