package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/glabrego/timeline-cli/internal/config"
	"github.com/glabrego/timeline-cli/internal/logging"
	"github.com/glabrego/timeline-cli/internal/theme"
)

const pageTitle = "Changelog"

var (
	cfgFile    string
	sourceFlag string
)

var rootCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Browse product changelog timelines in the terminal",
	Long: `timeline loads changelog entries from one of several named data sources
and shows them as a scrollable card timeline. Switch sources with the
dropdown, cycle the light/dark/system theme, and open links from cards.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "timeline.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "data source id to show first")
	rootCmd.AddCommand(renderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads config and builds the logger. Logs go to log_file when set,
// otherwise to fallback; a nil fallback discards them.
func setup(fallback io.Writer) (config.Config, zerolog.Logger, func(), error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, zerolog.Nop(), nil, fmt.Errorf("config error: %w", err)
	}

	out := fallback
	cleanup := func() {}
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return config.Config{}, zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		cleanup = func() { _ = f.Close() }
	}
	log := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: out})
	return cfg, log, cleanup, nil
}

func systemScheme() theme.Scheme {
	if lipgloss.HasDarkBackground() {
		return theme.SchemeDark
	}
	return theme.SchemeLight
}
