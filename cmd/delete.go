package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arrtools/batcharr/sonarr"
)

var (
	deleteFiles        bool
	addImportExclusion bool
	noConfirm          bool
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <tvdb-id>...",
	Short: "Delete series from Sonarr by TVDb IDs",
	Long: `Delete one or more series from Sonarr by their TVDb IDs, optionally
deleting the files on disk and adding an import exclusion so the
series is not re-imported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVar(&deleteFiles, "delete-files", false, "delete the series files on disk")
	deleteCmd.Flags().BoolVar(&addImportExclusion, "add-import-exclusion", false, "exclude the series from future imports")
	deleteCmd.Flags().BoolVarP(&noConfirm, "yes", "y", false, "skip the confirmation prompt")
	deleteCmd.Flags().IntVar(&perRequest, "per-request", 0, "number of series per delete request (default from config)")
}

func runDelete(cmd *cobra.Command, args []string) error {
	refs, err := parseTVDBIDs(args)
	if err != nil {
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would delete %d series (delete files: %v)\n", len(refs), deleteFiles)
		return nil
	}

	if cfg.Safety.ConfirmDelete && !noConfirm {
		fmt.Printf("Delete %d series from Sonarr", len(refs))
		if deleteFiles {
			fmt.Printf(" including files on disk")
		}
		fmt.Printf("? [y/N]: ")

		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Println("Aborted.")
			return nil
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	notFound, err := client.DeleteSeriesMultiple(commandContext(cmd), refs, sonarr.DeleteSeriesOptions{
		DeleteFiles:        deleteFiles,
		AddImportExclusion: addImportExclusion,
		PerRequest:         effectivePerRequest(),
	})
	if err != nil {
		return err
	}

	deleted := len(refs) - len(notFound)
	fmt.Printf("\n✓ Deleted %d series\n", deleted)
	if len(notFound) > 0 {
		fmt.Printf("✗ Not in Sonarr (%d): %s\n", len(notFound), joinIDs(notFound))
	}

	return nil
}
