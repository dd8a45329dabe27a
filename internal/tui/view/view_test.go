package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/glabrego/timeline-cli/internal/markup"
	"github.com/glabrego/timeline-cli/internal/page"
	"github.com/glabrego/timeline-cli/internal/theme"
	tuitheme "github.com/glabrego/timeline-cli/internal/tui/theme"
)

func TestToolbar(t *testing.T) {
	if got := Toolbar(false); !strings.Contains(got, "s sources") {
		t.Fatalf("unexpected timeline toolbar: %q", got)
	}
	if got := Toolbar(true); !strings.Contains(got, "enter select") {
		t.Fatalf("unexpected menu toolbar: %q", got)
	}
}

func TestHeader(t *testing.T) {
	th := tuitheme.Default()
	got := stripStyles(Header("Changelog", theme.Attributes{Mode: theme.ModeDark, Theme: theme.SchemeDark}, "Easy AI APP", false, 80, th))
	for _, want := range []string{"Changelog", "☾ dark", "Easy AI APP ▾"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in header, got %q", want, got)
		}
	}
	if w := visibleLen(got); w != 80 {
		t.Fatalf("expected header padded to 80 columns, got %d", w)
	}
}

func TestHeaderTargetAt(t *testing.T) {
	th := tuitheme.Default()
	attrs := theme.Attributes{Mode: theme.ModeSystem, Theme: theme.SchemeDark}
	line := stripStyles(Header("Changelog", attrs, "Easy AI APP", false, 80, th))
	pill := strings.Index(line, "◐")
	if pill < 0 {
		t.Fatalf("expected theme toggle in %q", line)
	}

	cases := []struct {
		x    int
		want HeaderTarget
	}{
		{x: 0, want: HeaderNone},
		{x: pill, want: HeaderThemeToggle},
		{x: 79, want: HeaderSourceTrigger},
	}
	for _, tc := range cases {
		if got := HeaderTargetAt(tc.x, "Changelog", attrs, "Easy AI APP", false, 80, th); got != tc.want {
			t.Fatalf("HeaderTargetAt(%d) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestMenu_MarksSelectedAndHighlight(t *testing.T) {
	th := tuitheme.Default()
	lines := Menu([]page.Item{{ID: "a", Label: "A", Selected: true}, {ID: "b", Label: "B"}}, 1, th)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if got := stripStyles(lines[0]); got != "  ✓ A" {
		t.Fatalf("unexpected selected line %q", got)
	}
	if got := stripStyles(lines[1]); got != ">   B" {
		t.Fatalf("unexpected highlighted line %q", got)
	}
}

func TestMessageLine(t *testing.T) {
	th := tuitheme.Default()
	if got := stripStyles(MessageLine(false, "Failed to load", th)); !strings.Contains(got, "warning") || !strings.Contains(got, "Failed to load") {
		t.Fatalf("unexpected toast line %q", got)
	}
	if got := stripStyles(MessageLine(true, "", th)); !strings.Contains(got, "loading") {
		t.Fatalf("unexpected loading line %q", got)
	}
	if got := stripStyles(MessageLine(false, "", th)); !strings.Contains(got, "Ready") {
		t.Fatalf("unexpected idle line %q", got)
	}
}

func TestFooter(t *testing.T) {
	th := tuitheme.Default()
	got := stripStyles(Footer("qh_api", 5, 2, "index.html?source=qh_api", th))
	for _, want := range []string{"source qh_api", "5 entries", "2 revealed", "url index.html?source=qh_api"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in footer, got %q", want, got)
		}
	}
}

func TestCardLines(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := tuitheme.Default()
	card := markup.Card{
		Class:   "tag-hot",
		Label:   "HOT",
		Date:    "2025-01-02",
		Title:   "Faster sync",
		Version: "v1.4",
		Details: []markup.Detail{{Text: "notes at https://example.com/notes", Links: []string{"https://example.com/notes"}}},
	}

	lines := CardLines(CardParams{Card: card, Width: 60, Revealed: true, Active: true}, th)
	plain := make([]string, 0, len(lines))
	for _, l := range lines {
		plain = append(plain, stripStyles(l))
	}
	joined := strings.Join(plain, "\n")
	for _, want := range []string{"HOT", "2025-01-02", "v1.4", "Faster sync", "• notes at https://example.com/notes", "▌ "} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in card, got:\n%s", want, joined)
		}
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), joined)
	}
}

func TestCardLines_NoDetailsNoVersion(t *testing.T) {
	th := tuitheme.Default()
	lines := CardLines(CardParams{Card: markup.Card{Class: "tag-default", Label: "DEFAULT", Title: "Bare"}, Width: 40}, th)
	if len(lines) != 2 {
		t.Fatalf("expected header and title only, got %d lines", len(lines))
	}
	if strings.Contains(stripStyles(lines[0]), "•") {
		t.Fatalf("unexpected detail bullet: %q", lines[0])
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected wrap: %q", got)
	}

	cjk := wrapText("启航系统更新", 4)
	for _, line := range cjk {
		if visibleLen(line) > 4 {
			t.Fatalf("line %q wider than 4 columns", line)
		}
	}
	if strings.Join(cjk, "") != "启航系统更新" {
		t.Fatalf("hard break lost text: %q", cjk)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Changelog", 6); got != "Cha..." {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("unexpected truncation %q", got)
	}
}
