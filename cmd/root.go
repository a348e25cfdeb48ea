package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arrtools/batcharr/config"
	"github.com/arrtools/batcharr/sonarr"
)

var (
	version   = "dev"
	buildTime = "unknown"

	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *sonarr.Client

	// Command flags
	dryRun     bool
	perRequest int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "batcharr",
	Short: "A tool to batch add, edit and delete series in Sonarr",
	Long: `batcharr manages your Sonarr library in bulk: add series by TVDb IDs,
edit or delete many series at once, and list or search with filter
expressions. Every input ID is accounted for in the output as added,
edited, already present, or not found.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information from build-time variables
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "perform a dry run without making changes")
}

// initializeApp initializes the configuration and the Sonarr client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	// Create Sonarr client
	var opts []sonarr.Option
	if cfg.Sonarr.Legacy {
		opts = append(opts, sonarr.WithLegacyAPI())
	}
	client, err = sonarr.NewClient(cfg.Sonarr.URL, cfg.Sonarr.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Sonarr client: %w", err)
	}

	if err := client.Ping(cmd.Context()); err != nil {
		return err
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// parseTVDBIDs converts command arguments into series refs
func parseTVDBIDs(args []string) ([]sonarr.SeriesRef, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid TVDb ID %q: must be a positive integer", arg)
		}
		ids = append(ids, id)
	}
	return sonarr.TVDBIDs(ids...), nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("not a positive integer: %s", s)
	}
	return id, nil
}

// commandContext returns the command's context, falling back to the
// background context.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
