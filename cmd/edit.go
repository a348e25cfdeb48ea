package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arrtools/batcharr/sonarr"
)

var (
	editRootFolder      string
	editMoveFiles       bool
	editQualityProfile  string
	editLanguageProfile string
	editMonitor         string
	editMonitored       bool
	editSeasonFolder    bool
	editSeriesType      string
	editTags            []string
	editApplyTags       string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <tvdb-id>...",
	Short: "Edit series in Sonarr by TVDb IDs",
	Long: `Edit one or more series in Sonarr by their TVDb IDs. At least one
edit flag must be given. A monitor mode change is applied through the
season-pass endpoint before the remaining field edits.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editRootFolder, "root-folder", "", "move series to this root folder (path or ID)")
	editCmd.Flags().BoolVar(&editMoveFiles, "move-files", false, "move files when changing the root folder")
	editCmd.Flags().StringVar(&editQualityProfile, "quality-profile", "", "change quality profile (name or ID)")
	editCmd.Flags().StringVar(&editLanguageProfile, "language-profile", "", "change language profile (name or ID)")
	editCmd.Flags().StringVar(&editMonitor, "monitor", "", "change monitor mode")
	editCmd.Flags().BoolVar(&editMonitored, "monitored", false, "set the monitored flag")
	editCmd.Flags().BoolVar(&editSeasonFolder, "season-folder", false, "set the season folder flag")
	editCmd.Flags().StringVar(&editSeriesType, "series-type", "", "change series type")
	editCmd.Flags().StringSliceVar(&editTags, "tag", nil, "tag label or ID (repeatable)")
	editCmd.Flags().StringVar(&editApplyTags, "apply-tags", "", "how to apply tags: add, replace or remove")
	editCmd.Flags().IntVar(&perRequest, "per-request", 0, "number of series per edit request (default from config)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	refs, err := parseTVDBIDs(args)
	if err != nil {
		return err
	}

	opts := sonarr.EditSeriesOptions{
		MoveFiles:  editMoveFiles,
		Monitor:    editMonitor,
		SeriesType: editSeriesType,
		ApplyTags:  editApplyTags,
		Tags:       parseTagRefs(editTags),
		PerRequest: effectivePerRequest(),
	}
	if editRootFolder != "" {
		opts.RootFolder = parseRootFolderRef(editRootFolder)
	}
	if editQualityProfile != "" {
		opts.QualityProfile = parseProfileRef(editQualityProfile)
	}
	if editLanguageProfile != "" {
		opts.LanguageProfile = parseProfileRef(editLanguageProfile)
	}
	// Boolean flags are tri-state: only set when given on the line.
	if cmd.Flags().Changed("monitored") {
		opts.Monitored = &editMonitored
	}
	if cmd.Flags().Changed("season-folder") {
		opts.SeasonFolder = &editSeasonFolder
	}

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would edit %d series\n", len(refs))
		return nil
	}

	result, err := client.EditSeriesMultiple(commandContext(cmd), refs, opts)
	if err != nil {
		return err
	}

	fmt.Printf("\n✓ Edited %d series\n", len(result.Edited))
	if len(result.NotFound) > 0 {
		fmt.Printf("✗ Not in Sonarr (%d): %s\n", len(result.NotFound), joinIDs(result.NotFound))
	}

	return nil
}
