package view

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripStyles(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}

func visibleLen(s string) int {
	return lipgloss.Width(s)
}

func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleLen(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}
	head, _ := splitAtWidth(s, maxWidth-3)
	return head + "..."
}

// wrapText breaks s on spaces into lines no wider than width. Words wider
// than width, such as CJK runs or long URLs, are hard-broken.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var cur strings.Builder
	curWidth := 0
	flush := func() {
		if curWidth > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
	}
	for _, word := range strings.Fields(s) {
		for visibleLen(word) > width {
			flush()
			head, tail := splitAtWidth(word, width)
			lines = append(lines, head)
			word = tail
		}
		w := visibleLen(word)
		if curWidth > 0 && curWidth+1+w > width {
			flush()
		}
		if curWidth > 0 {
			cur.WriteByte(' ')
			curWidth++
		}
		cur.WriteString(word)
		curWidth += w
	}
	flush()
	return lines
}

// splitAtWidth returns the longest prefix of s no wider than width (at least
// one rune) and the rest.
func splitAtWidth(s string, width int) (string, string) {
	used := 0
	for i, r := range s {
		rw := lipgloss.Width(string(r))
		if used+rw > width && i > 0 {
			return s[:i], s[i:]
		}
		used += rw
	}
	return s, ""
}

func padRight(s string, width int) string {
	gap := width - visibleLen(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
