package page

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/timeline-cli/internal/theme"
	"github.com/glabrego/timeline-cli/internal/timeline"
)

// Commands a front-end dispatches to the page.
type (
	SwitchSourceMsg struct {
		ID string
	}
	SelectSourceMsg struct {
		ID string
	}
	ToggleDropdownMsg struct{}
	CloseDropdownMsg  struct{}
	OutsideClickMsg   struct{}
	CycleThemeMsg     struct{}
	SystemSchemeMsg   struct {
		Scheme theme.Scheme
	}
	IntersectionMsg struct {
		Index int
		Ratio float64
	}
)

// Results produced by the page's own commands.
type (
	SourceLoadedMsg struct {
		Token   uint64
		ID      string
		Entries []timeline.Entry
		Took    time.Duration
	}
	SourceLoadFailedMsg struct {
		Token uint64
		ID    string
		Err   error
	}
	ToastExpiredMsg struct {
		ID int
	}
)

func loadSourceCmd(loader Loader, id string, token uint64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		start := time.Now()

		entries, err := loader.LoadData(ctx, id)
		if err != nil {
			return SourceLoadFailedMsg{Token: token, ID: id, Err: err}
		}
		return SourceLoadedMsg{Token: token, ID: id, Entries: entries, Took: time.Since(start)}
	}
}

func expireToastCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}
