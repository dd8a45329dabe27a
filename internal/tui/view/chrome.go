package view

import (
	"fmt"
	"strings"

	"github.com/glabrego/timeline-cli/internal/page"
	"github.com/glabrego/timeline-cli/internal/theme"
	tuitheme "github.com/glabrego/timeline-cli/internal/tui/theme"
)

func Toolbar(menuOpen bool) string {
	if menuOpen {
		return "j/k choose | enter select | esc close | q quit"
	}
	return "j/k move | pgup/pgdown jump | s sources | t theme | o open link | y copy link | q quit"
}

// ModeIcon is the toggle glyph for a theme preference.
func ModeIcon(mode theme.Mode) string {
	switch mode {
	case theme.ModeLight:
		return "☀"
	case theme.ModeDark:
		return "☾"
	default:
		return "◐"
	}
}

// HeaderTarget is the header control under a column.
type HeaderTarget int

const (
	HeaderNone HeaderTarget = iota
	HeaderThemeToggle
	HeaderSourceTrigger
)

type headerParts struct {
	left, pill, trigger string
	gap                 int
}

func layoutHeader(title string, attrs theme.Attributes, label string, open bool, width int, th tuitheme.Theme) headerParts {
	arrow := "▾"
	if open {
		arrow = "▴"
	}
	if label == "" {
		label = "Select source"
	}
	h := headerParts{
		left:    th.Title.Render(truncate(title, max(4, width/3))),
		pill:    th.ModePill.Render(fmt.Sprintf("%s %s", ModeIcon(attrs.Mode), attrs.Mode)),
		trigger: th.Trigger.Render(label + " " + arrow),
	}
	h.gap = width - visibleLen(h.left) - visibleLen(h.pill) - 1 - visibleLen(h.trigger)
	if h.gap < 1 {
		h.gap = 1
	}
	return h
}

// Header renders the title, the theme toggle and the source trigger on one line.
func Header(title string, attrs theme.Attributes, label string, open bool, width int, th tuitheme.Theme) string {
	h := layoutHeader(title, attrs, label, open, width, th)
	return h.left + strings.Repeat(" ", h.gap) + h.pill + " " + h.trigger
}

// HeaderTargetAt reports which control of the Header rendered with the same
// arguments occupies column x.
func HeaderTargetAt(x int, title string, attrs theme.Attributes, label string, open bool, width int, th tuitheme.Theme) HeaderTarget {
	h := layoutHeader(title, attrs, label, open, width, th)
	pillStart := visibleLen(h.left) + h.gap
	pillEnd := pillStart + visibleLen(h.pill)
	triggerStart := pillEnd + 1
	switch {
	case x >= pillStart && x < pillEnd:
		return HeaderThemeToggle
	case x >= triggerStart && x < triggerStart+visibleLen(h.trigger):
		return HeaderSourceTrigger
	default:
		return HeaderNone
	}
}

// Menu lists the dropdown items; highlight is the keyboard cursor.
func Menu(items []page.Item, highlight int, th tuitheme.Theme) []string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		marker := "  "
		if i == highlight {
			marker = "> "
		}
		check := "  "
		if item.Selected {
			check = "✓ "
		}
		style := th.MenuItem
		if item.Selected {
			style = th.MenuActive
		}
		lines = append(lines, th.RenderActiveLine(i == highlight, marker+check+style.Render(item.Label)))
	}
	return lines
}

// MessageLine shows loading state and the current toast.
func MessageLine(loading bool, toast string, th tuitheme.Theme) string {
	switch {
	case toast != "":
		return th.StateWarn.Render("state") + ": warning | " + th.Toast.Render(toast)
	case loading:
		return th.StateLoad.Render("state") + ": loading | " + th.MetaValue.Render("Loading timeline...")
	default:
		return th.StateIdle.Render("state") + ": idle | " + th.MetaValue.Render("Ready")
	}
}

func Footer(sourceID string, shown, revealed int, location string, th tuitheme.Theme) string {
	if sourceID == "" {
		sourceID = "none"
	}
	parts := []string{
		th.MetaLabel.Render("source") + " " + th.MetaValue.Render(sourceID),
		th.MetaValue.Render(fmt.Sprintf("%d entries", shown)),
		th.MetaValue.Render(fmt.Sprintf("%d revealed", revealed)),
	}
	if location != "" {
		parts = append(parts, th.MetaLabel.Render("url")+" "+th.MetaValue.Render(location))
	}
	return strings.Join(parts, " • ")
}
