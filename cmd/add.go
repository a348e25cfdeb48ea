package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arrtools/batcharr/sonarr"
)

var (
	addRootFolder      string
	addQualityProfile  string
	addLanguageProfile string
	addMonitor         string
	addSeriesType      string
	addTags            []string
	noSeasonFolder     bool
	noSearch           bool
	noUnmetSearch      bool
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <tvdb-id>...",
	Short: "Add series to Sonarr by TVDb IDs",
	Long: `Add one or more series to Sonarr by their TVDb IDs. IDs already in
the library and IDs that cannot be looked up are reported separately;
the rest are imported in one call, or in chunks with --per-request.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addRootFolder, "root-folder", "", "root folder path or ID (default from config)")
	addCmd.Flags().StringVar(&addQualityProfile, "quality-profile", "", "quality profile name or ID (default from config)")
	addCmd.Flags().StringVar(&addLanguageProfile, "language-profile", "", "language profile name or ID (default from config)")
	addCmd.Flags().StringVar(&addMonitor, "monitor", "", "monitor mode (default from config)")
	addCmd.Flags().StringVar(&addSeriesType, "series-type", "", "series type (default from config)")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "tag label or ID to apply (repeatable)")
	addCmd.Flags().BoolVar(&noSeasonFolder, "no-season-folder", false, "do not use season folders")
	addCmd.Flags().BoolVar(&noSearch, "no-search", false, "do not search for missing episodes after adding")
	addCmd.Flags().BoolVar(&noUnmetSearch, "no-unmet-search", false, "do not search for cutoff unmet episodes after adding")
	addCmd.Flags().IntVar(&perRequest, "per-request", 0, "number of series per import request (default from config)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	refs, err := parseTVDBIDs(args)
	if err != nil {
		return err
	}

	opts, err := buildAddFlags()
	if err != nil {
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would add %d series:\n", len(refs))
		for _, arg := range args {
			fmt.Printf("  - tvdb:%s\n", arg)
		}
		return nil
	}

	result, err := client.AddSeriesMultiple(commandContext(cmd), refs, opts)
	if err != nil {
		return err
	}

	if len(result.Added) > 0 {
		fmt.Printf("\n✓ Added %d series:\n", len(result.Added))
		for _, s := range result.Added {
			fmt.Printf("  - %s (%d) [tvdb:%d]\n", s.Title, s.Year, s.TvdbID)
		}
	}
	if len(result.Existing) > 0 {
		fmt.Printf("\nAlready in Sonarr (%d):\n", len(result.Existing))
		for _, s := range result.Existing {
			fmt.Printf("  - %s (%d) [tvdb:%d]\n", s.Title, s.Year, s.TvdbID)
		}
	}
	if len(result.NotFound) > 0 {
		fmt.Printf("\n✗ Not found (%d): %s\n", len(result.NotFound), joinIDs(result.NotFound))
	}

	return nil
}

// buildAddFlags merges command flags with configured defaults
func buildAddFlags() (sonarr.AddSeriesOptions, error) {
	rootFolder := addRootFolder
	if rootFolder == "" {
		rootFolder = cfg.Defaults.RootFolder
	}
	qualityProfile := addQualityProfile
	if qualityProfile == "" {
		qualityProfile = cfg.Defaults.QualityProfile
	}
	languageProfile := addLanguageProfile
	if languageProfile == "" {
		languageProfile = cfg.Defaults.LanguageProfile
	}
	if rootFolder == "" || qualityProfile == "" || languageProfile == "" {
		return sonarr.AddSeriesOptions{}, fmt.Errorf("root folder, quality profile and language profile are required (set them in config defaults or pass the flags)")
	}

	opts := sonarr.NewAddSeriesOptions(
		parseRootFolderRef(rootFolder),
		parseProfileRef(qualityProfile),
		parseProfileRef(languageProfile),
	)

	if addMonitor != "" {
		opts.Monitor = addMonitor
	} else if cfg.Defaults.Monitor != "" {
		opts.Monitor = cfg.Defaults.Monitor
	}
	if addSeriesType != "" {
		opts.SeriesType = addSeriesType
	} else if cfg.Defaults.SeriesType != "" {
		opts.SeriesType = cfg.Defaults.SeriesType
	}
	opts.SeasonFolder = cfg.Defaults.SeasonFolder && !noSeasonFolder
	opts.SearchForMissing = cfg.Defaults.SearchOnAdd && !noSearch
	opts.SearchForCutoffUnmet = cfg.Defaults.UnmetSearch && !noUnmetSearch
	opts.Tags = parseTagRefs(addTags)
	opts.PerRequest = effectivePerRequest()

	return opts, nil
}

// effectivePerRequest prefers the flag over the configured default
func effectivePerRequest() int {
	if perRequest > 0 {
		return perRequest
	}
	return cfg.Defaults.PerRequest
}

// parseProfileRef reads a numeric ID or a profile name
func parseProfileRef(s string) sonarr.ProfileRef {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return sonarr.ProfileRef{ID: id}
	}
	return sonarr.ProfileRef{Name: s}
}

// parseRootFolderRef reads a numeric ID or a folder path
func parseRootFolderRef(s string) sonarr.RootFolderRef {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return sonarr.RootFolderRef{ID: id}
	}
	return sonarr.RootFolderRef{Path: s}
}

// parseTagRefs reads numeric IDs or tag labels
func parseTagRefs(values []string) []sonarr.TagRef {
	if len(values) == 0 {
		return nil
	}
	refs := make([]sonarr.TagRef, 0, len(values))
	for _, v := range values {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			refs = append(refs, sonarr.TagRef{ID: id})
		} else {
			refs = append(refs, sonarr.TagRef{Label: v})
		}
	}
	return refs
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ", ")
}
