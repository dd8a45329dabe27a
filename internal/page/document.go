package page

import (
	"fmt"
	"html/template"
	"io"

	"github.com/glabrego/timeline-cli/internal/markup"
)

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="zh-CN" data-theme-mode="{{.Mode}}" data-theme="{{.Theme}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="style.css">
</head>
<body>
<header class="page-header">
<button id="theme-toggle" class="theme-toggle" type="button" data-mode="{{.Mode}}" aria-label="Theme: {{.Mode}}"></button>
<div class="source-dropdown{{if .Open}} open{{end}}">
<button id="source-trigger" class="source-trigger" type="button" aria-haspopup="listbox" aria-expanded="{{.Open}}"><span class="source-label">{{.Label}}</span></button>
<ul id="source-menu" class="source-menu" role="listbox">
{{- range .Items}}
<li class="source-item{{if .Selected}} selected{{end}}" role="option" data-source="{{.ID}}" aria-selected="{{.AriaSelected}}">{{.Label}}</li>
{{- end}}
</ul>
</div>
</header>
<main>
<div id="timeline" class="timeline">{{if .Loading}}<div class="timeline-loading">Loading…</div>{{end}}{{.Container}}</div>
</main>
{{- with .Toast}}
<div class="toast show" role="status">{{.}}</div>
{{- end}}
</body>
</html>
`))

type documentData struct {
	Title     string
	Mode      string
	Theme     string
	Label     string
	Open      bool
	Items     []Item
	Loading   bool
	Container template.HTML
	Toast     string
}

// WriteDocument writes the full page. Revealed cards carry the visible class.
func (p *Page) WriteDocument(w io.Writer, title string) error {
	container, err := markup.MarkVisible(p.container, p.reveal.Revealed)
	if err != nil {
		return err
	}
	attrs := p.ThemeAttributes()
	data := documentData{
		Title:     title,
		Mode:      string(attrs.Mode),
		Theme:     string(attrs.Theme),
		Label:     p.dropdown.Label(),
		Open:      p.dropdown.IsOpen(),
		Items:     p.dropdown.Items(),
		Loading:   p.loading,
		Container: template.HTML(container), // produced by timeline.Render
	}
	if toast, ok := p.Toast(); ok {
		data.Toast = toast.Text
	}
	if err := documentTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// RevealAll marks every rendered card as intersecting the viewport.
func (p *Page) RevealAll() {
	for i := 0; i < p.cards; i++ {
		p.reveal.Intersect(i, 1)
	}
}
