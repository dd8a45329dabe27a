// Package linkify turns bare URLs in plain detail text into external links.
package linkify

import (
	"html"
	"regexp"
	"strings"
)

var reBareURL = regexp.MustCompile(`https?://[^\s"'<>]+`)

// Linkify wraps every http(s) URL in an anchor that opens in a new browsing
// context without access to the opener. Text between URLs is copied through
// as is; only the URL itself is escaped. It must be applied once, to raw text.
func Linkify(text string) string {
	matches := reBareURL.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(matches)*64)
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		writeAnchor(&b, text[m[0]:m[1]])
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// URLs returns the bare URLs Linkify would wrap, in order.
func URLs(text string) []string {
	return reBareURL.FindAllString(text, -1)
}

func writeAnchor(b *strings.Builder, rawURL string) {
	escaped := html.EscapeString(rawURL)
	b.WriteString(`<a href="`)
	b.WriteString(escaped)
	b.WriteString(`" target="_blank" rel="noopener noreferrer">`)
	b.WriteString(escaped)
	b.WriteString(`</a>`)
}
