package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/glabrego/timeline-cli/internal/app"
	"github.com/glabrego/timeline-cli/internal/tui"
)

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, log, cleanup, err := setup(nil)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	system := systemScheme()
	a, err := app.New(ctx, cfg, app.Options{Source: sourceFlag, System: system, Log: log})
	if err != nil {
		return err
	}
	defer a.Close()

	model := tui.NewModel(a.Page, pageTitle, log)
	model.SetSchemeDetector(system, systemScheme)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
