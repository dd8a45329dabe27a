package timeline

import (
	"html"
	"strconv"
	"strings"

	"github.com/glabrego/timeline-cli/internal/linkify"
)

var typeClasses = map[string]string{
	TypeFeature:      "tag-" + TypeFeature,
	TypeAnnouncement: "tag-" + TypeAnnouncement,
	TypeHot:          "tag-" + TypeHot,
}

// Card is the display-ready form of an Entry. Details already carry link
// markup; every other field is plain text.
type Card struct {
	Index   int
	Class   string
	Label   string
	Date    string
	Title   string
	Version string
	Details []string
}

// TypeClass maps an entry type to its visual class.
func TypeClass(entryType string) string {
	if class, ok := typeClasses[entryType]; ok {
		return class
	}
	return "tag-" + TypeDefault
}

// TypeLabel is the uppercased type shown on the tag.
func TypeLabel(entryType string) string {
	if strings.TrimSpace(entryType) == "" {
		entryType = TypeDefault
	}
	return strings.ToUpper(entryType)
}

func BuildCards(entries []Entry) []Card {
	cards := make([]Card, 0, len(entries))
	for i, entry := range entries {
		card := Card{
			Index:   i,
			Class:   TypeClass(entry.Type),
			Label:   TypeLabel(entry.Type),
			Date:    entry.Date,
			Title:   entry.Title,
			Version: strings.TrimSpace(entry.Version),
		}
		for _, detail := range entry.Details {
			card.Details = append(card.Details, linkify.Linkify(detail))
		}
		cards = append(cards, card)
	}
	return cards
}

// RenderCards serializes cards in order. An empty slice renders as "".
func RenderCards(cards []Card) string {
	var b strings.Builder
	for _, card := range cards {
		writeCard(&b, card)
	}
	return b.String()
}

// Render is BuildCards followed by RenderCards.
func Render(entries []Entry) string {
	return RenderCards(BuildCards(entries))
}

func writeCard(b *strings.Builder, card Card) {
	b.WriteString(`<div class="timeline-item" data-index="`)
	b.WriteString(strconv.Itoa(card.Index))
	b.WriteString(`">`)
	b.WriteString(`<div class="timeline-dot `)
	b.WriteString(card.Class)
	b.WriteString(`"></div>`)
	b.WriteString(`<div class="timeline-card">`)
	b.WriteString(`<div class="card-header">`)
	b.WriteString(`<span class="tag `)
	b.WriteString(card.Class)
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(card.Label))
	b.WriteString(`</span>`)
	b.WriteString(`<span class="date">`)
	b.WriteString(html.EscapeString(card.Date))
	b.WriteString(`</span>`)
	if card.Version != "" {
		b.WriteString(`<span class="version">`)
		b.WriteString(html.EscapeString(card.Version))
		b.WriteString(`</span>`)
	}
	b.WriteString(`</div>`)
	b.WriteString(`<h3 class="card-title">`)
	b.WriteString(html.EscapeString(card.Title))
	b.WriteString(`</h3>`)
	if len(card.Details) > 0 {
		b.WriteString(`<ul class="details">`)
		for _, detail := range card.Details {
			b.WriteString(`<li>`)
			b.WriteString(detail)
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(`</div></div>`)
}
