package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/timeline-cli/internal/theme"
)

type Theme struct {
	Title      lipgloss.Style
	ModePill   lipgloss.Style
	Trigger    lipgloss.Style
	MenuItem   lipgloss.Style
	MenuActive lipgloss.Style
	ActiveLine lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	StateLoad  lipgloss.Style
	Toast      lipgloss.Style

	CardTitle lipgloss.Style
	CardDate  lipgloss.Style
	Version   lipgloss.Style
	Detail    lipgloss.Style
	Link      lipgloss.Style
	Hidden    lipgloss.Style

	TagFeature      lipgloss.Style
	TagAnnouncement lipgloss.Style
	TagHot          lipgloss.Style
	TagDefault      lipgloss.Style
}

type palette struct {
	rosewater, mauve, red, peach, yellow, green, teal, blue, lavender lipgloss.Color
	text, subtext0, subtext1, overlay0, overlay1, surface0, surface1, base lipgloss.Color
}

// Catppuccin Mocha.
var dark = palette{
	rosewater: "#f5e0dc", mauve: "#cba6f7", red: "#f38ba8", peach: "#fab387", yellow: "#f9e2af",
	green: "#a6e3a1", teal: "#94e2d5", blue: "#89b4fa", lavender: "#b4befe",
	text: "#cdd6f4", subtext0: "#a6adc8", subtext1: "#bac2de", overlay0: "#6c7086", overlay1: "#7f849c",
	surface0: "#313244", surface1: "#45475a", base: "#1e1e2e",
}

// Catppuccin Latte.
var light = palette{
	rosewater: "#dc8a78", mauve: "#8839ef", red: "#d20f39", peach: "#fe640b", yellow: "#df8e1d",
	green: "#40a02b", teal: "#179299", blue: "#1e66f5", lavender: "#7287fd",
	text: "#4c4f69", subtext0: "#6c6f85", subtext1: "#5c5f77", overlay0: "#9ca0b0", overlay1: "#8c8fa1",
	surface0: "#ccd0da", surface1: "#bcc0cc", base: "#eff1f5",
}

// Default is the dark theme.
func Default() Theme {
	return build(dark)
}

// For returns the theme of an applied scheme.
func For(scheme theme.Scheme) Theme {
	if scheme == theme.SchemeLight {
		return build(light)
	}
	return build(dark)
}

func build(p palette) Theme {
	tag := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(p.base)
	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(p.mauve),
		ModePill:   lipgloss.NewStyle().Foreground(p.lavender).Background(p.surface0).Padding(0, 1),
		Trigger:    lipgloss.NewStyle().Foreground(p.text).Background(p.surface1).Padding(0, 1),
		MenuItem:   lipgloss.NewStyle().Foreground(p.subtext1),
		MenuActive: lipgloss.NewStyle().Bold(true).Foreground(p.mauve),
		ActiveLine: lipgloss.NewStyle().Background(p.surface0).Foreground(p.text),
		MetaLabel:  lipgloss.NewStyle().Foreground(p.overlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(p.subtext1),
		StateIdle:  lipgloss.NewStyle().Foreground(p.green),
		StateWarn:  lipgloss.NewStyle().Foreground(p.red),
		StateLoad:  lipgloss.NewStyle().Foreground(p.peach),
		Toast:      lipgloss.NewStyle().Bold(true).Foreground(p.base).Background(p.red).Padding(0, 1),

		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(p.text),
		CardDate:  lipgloss.NewStyle().Foreground(p.overlay1),
		Version:   lipgloss.NewStyle().Foreground(p.teal).Italic(true),
		Detail:    lipgloss.NewStyle().Foreground(p.subtext0),
		Link:      lipgloss.NewStyle().Underline(true).Foreground(p.blue),
		Hidden:    lipgloss.NewStyle().Foreground(p.overlay0).Faint(true),

		TagFeature:      tag.Background(p.green),
		TagAnnouncement: tag.Background(p.blue),
		TagHot:          tag.Background(p.red),
		TagDefault:      tag.Background(p.overlay1),
	}
}

// StyleTag renders a card tag using the style of its type class.
func (t Theme) StyleTag(class, label string) string {
	switch class {
	case "tag-feature":
		return t.TagFeature.Render(label)
	case "tag-announcement":
		return t.TagAnnouncement.Render(label)
	case "tag-hot":
		return t.TagHot.Render(label)
	default:
		return t.TagDefault.Render(label)
	}
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
