package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Knicklichtjedi/AnichartGraphQLReader/internal/anilist"
	"github.com/Knicklichtjedi/AnichartGraphQLReader/internal/chart"
	"github.com/Knicklichtjedi/AnichartGraphQLReader/internal/clipboard"
	"github.com/Knicklichtjedi/AnichartGraphQLReader/internal/config"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Global flags
	cfgFile     string
	logLevel    string
	noColor     bool
	noClipboard bool
	statusFlag  []string
	formatFlag  []string
	yearFlag    int
	seasonFlag  string

	// Global config and logger
	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "anichart",
	Short: "Fetch the AniChart seasonal anime table from AniList",
	Long: `anichart queries the AniList GraphQL API for seasonal anime, prints a
tab-separated table of romanized title, English title and start date
sorted by English title, and copies the table to the system clipboard.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for config init command
		if cmd.Name() == "init" && cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return nil
		}

		if err := config.InitializeDirs(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize directories: %v\n", err)
			os.Exit(1)
		}

		var err error
		cfg, _, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if noColor {
			cfg.Logging.Color = false
			cfg.Output.Color = false
		}

		logger, err = config.InitLogger(&cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := buildFilter(cfg.Query)
		logger.Info("fetching seasonal chart",
			"season", filter.Season,
			"year", filter.Year,
			"formats", filter.Format,
		)

		client := anilist.NewClient(anilist.ClientConfig{
			UserAgent: "anichart/" + version,
			Logger:    logger,
		})

		media, err := client.MediaSeason(context.Background(), filter)
		if err != nil {
			if errors.Is(err, anilist.ErrNoData) {
				fmt.Println("No data returned from query graphql!")
				os.Exit(1)
			}
			return fmt.Errorf("failed to query AniList: %w", err)
		}

		rows := chart.Extract(media)
		chart.Sort(rows)

		var copier chart.Copier
		if cfg.Output.Clipboard && !noClipboard {
			copier = clipboard.NewService(logger)
		}

		presenter := chart.NewPresenter(os.Stdout, copier, cfg.Output.Color, logger)
		presenter.Tabulate(rows)

		return nil
	},
}

// buildFilter merges CLI flag overrides into the configured query
// defaults. Only provided (non-empty, non-zero) values replace a
// default; the result is an immutable per-call filter.
func buildFilter(defaults config.QueryConfig) anilist.SeasonFilter {
	filter := anilist.SeasonFilter{
		Status: defaults.Status,
		Format: defaults.Format,
		Year:   defaults.Year,
		Season: defaults.Season,
	}

	if len(statusFlag) > 0 {
		filter.Status = statusFlag
	}
	if len(formatFlag) > 0 {
		filter.Format = formatFlag
	}
	if yearFlag != 0 {
		filter.Year = yearFlag
	}
	if seasonFlag != "" {
		filter.Season = seasonFlag
	}

	return filter
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/anichart/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Query filter overrides
	// status: FINISHED, RELEASING, NOT_YET_RELEASED, CANCELLED, HIATUS
	// formats: TV, TV_SHORT, MOVIE, SPECIAL, OVA, ONA, MUSIC, MANGA, NOVEL, ONE_SHOT
	rootCmd.Flags().StringSliceVar(&statusFlag, "status", nil, "media statuses to filter by (e.g. RELEASING,NOT_YET_RELEASED)")
	rootCmd.Flags().StringSliceVar(&formatFlag, "format", nil, "media formats to filter by (e.g. TV,MOVIE)")
	rootCmd.Flags().IntVar(&yearFlag, "year", 0, "season year to filter by")
	rootCmd.Flags().StringVar(&seasonFlag, "season", "", "season to filter by (WINTER, SPRING, SUMMER, FALL)")
	rootCmd.Flags().BoolVar(&noClipboard, "no-clipboard", false, "skip copying the table to the clipboard")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// versionCmd displays version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("anichart version %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
	},
}

// configCmd handles configuration operations
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := cfgFile
		if configPath == "" {
			configPath = filepath.Join(config.GetConfigDir(), "config.yaml")
		}

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s", configPath)
		}

		if err := config.SaveDefaultConfig(configPath); err != nil {
			return fmt.Errorf("failed to save default configuration: %w", err)
		}

		fmt.Printf("Default configuration generated at: %s\n", configPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Season:  %s %d\n", cfg.Query.Season, cfg.Query.Year)
		fmt.Printf("Status:  %v\n", cfg.Query.Status)
		fmt.Printf("Format:  %v\n", cfg.Query.Format)
		fmt.Printf("Log level: %s\n", cfg.Logging.Level)
		fmt.Printf("Clipboard: %t\n", cfg.Output.Clipboard)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Display configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		if cfgFile != "" {
			fmt.Println(cfgFile)
		} else {
			fmt.Println(filepath.Join(config.GetConfigDir(), "config.yaml"))
		}
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
