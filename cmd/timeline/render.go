package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/glabrego/timeline-cli/internal/app"
)

var (
	outPath string
	title   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the timeline page as a static HTML document",
	Long: `render loads the selected data source without a terminal UI and writes the
full page with every card revealed. The document is still written when the
source fails to load, showing the inline failure message.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().StringVar(&title, "title", pageTitle, "document title")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, log, cleanup, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	a, err := app.New(ctx, cfg, app.Options{Source: sourceFlag, System: systemScheme(), Log: log})
	if err != nil {
		return err
	}
	defer a.Close()

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}
	return a.RenderDocument(w, title)
}
