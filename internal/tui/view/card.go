package view

import (
	"strings"

	"github.com/glabrego/timeline-cli/internal/linkify"
	"github.com/glabrego/timeline-cli/internal/markup"
	tuitheme "github.com/glabrego/timeline-cli/internal/tui/theme"
)

type CardParams struct {
	Card     markup.Card
	Width    int
	Active   bool
	Revealed bool
}

// CardLines renders one timeline card. Cards that have not been revealed yet
// keep their layout but render dimmed.
func CardLines(p CardParams, th tuitheme.Theme) []string {
	width := p.Width
	if width < 20 {
		width = 20
	}
	marker := "  "
	if p.Active {
		marker = "▌ "
	}
	inner := width - visibleLen(marker)

	header := th.StyleTag(p.Card.Class, p.Card.Label) + " " + th.CardDate.Render(p.Card.Date)
	if p.Card.Version != "" {
		header += " " + th.Version.Render(p.Card.Version)
	}

	var body []string
	body = append(body, header)
	title := strings.TrimSpace(p.Card.Title)
	if title == "" {
		title = "(untitled)"
	}
	for _, line := range wrapText(title, inner) {
		body = append(body, th.CardTitle.Render(line))
	}
	for _, detail := range p.Card.Details {
		wrapped := wrapText(detail.Text, inner-2)
		for i, line := range wrapped {
			prefix := "  "
			if i == 0 {
				prefix = "• "
			}
			body = append(body, prefix+styleLinks(line, th))
		}
	}

	lines := make([]string, 0, len(body))
	for _, line := range body {
		if !p.Revealed {
			line = th.Hidden.Render(stripStyles(line))
		}
		lines = append(lines, th.RenderActiveLine(p.Active, padRight(marker+line, width)))
	}
	return lines
}

func styleLinks(line string, th tuitheme.Theme) string {
	urls := linkify.URLs(line)
	if len(urls) == 0 {
		return th.Detail.Render(line)
	}
	var b strings.Builder
	rest := line
	for _, u := range urls {
		i := strings.Index(rest, u)
		if i < 0 {
			continue
		}
		if i > 0 {
			b.WriteString(th.Detail.Render(rest[:i]))
		}
		b.WriteString(th.Link.Render(u))
		rest = rest[i+len(u):]
	}
	if rest != "" {
		b.WriteString(th.Detail.Render(rest))
	}
	return b.String()
}
