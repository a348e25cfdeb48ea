package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// profilesCmd represents the profiles command
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Show quality profiles, language profiles, root folders and tags",
	Long: `Show the reference data configured in Sonarr. Add and edit options
are validated against these lists; use this command to find the names
and IDs to pass to the other commands.`,
	RunE: runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) error {
	data, err := client.FetchReferenceData(commandContext(cmd))
	if err != nil {
		return err
	}

	fmt.Println("\nQuality profiles:")
	for _, p := range data.QualityProfiles {
		fmt.Printf("  %3d  %s\n", p.ID, p.Name)
	}

	fmt.Println("\nLanguage profiles:")
	for _, p := range data.LanguageProfiles {
		fmt.Printf("  %3d  %s\n", p.ID, p.Name)
	}

	fmt.Println("\nRoot folders:")
	for _, f := range data.RootFolders {
		free := ""
		if f.FreeSpace > 0 {
			free = fmt.Sprintf(" (%.1f GB free)", float64(f.FreeSpace)/1e9)
		}
		fmt.Printf("  %3d  %s%s\n", f.ID, f.Path, free)
	}

	fmt.Println("\nTags:")
	if len(data.Tags) == 0 {
		fmt.Println("  none")
		return nil
	}
	labels := make([]string, 0, len(data.Tags))
	for _, t := range data.Tags {
		labels = append(labels, fmt.Sprintf("%s (%d)", t.Label, t.ID))
	}
	fmt.Printf("  %s\n", strings.Join(labels, ", "))

	return nil
}
