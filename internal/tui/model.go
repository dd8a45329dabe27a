package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/glabrego/timeline-cli/internal/markup"
	"github.com/glabrego/timeline-cli/internal/page"
	"github.com/glabrego/timeline-cli/internal/reveal"
	"github.com/glabrego/timeline-cli/internal/theme"
	"github.com/glabrego/timeline-cli/internal/tui/platform"
	"github.com/glabrego/timeline-cli/internal/tui/state"
	tuitheme "github.com/glabrego/timeline-cli/internal/tui/theme"
	"github.com/glabrego/timeline-cli/internal/tui/view"
)

const (
	defaultWidth = 80
	cardGap      = 1
	// header, message line, two spacers, footer, toolbar
	baseChromeLines = 6
)

type linkActionMsg struct {
	status string
}

type linkActionErrorMsg struct {
	err error
}

type clearStatusMsg struct {
	id int
}

type schemeDetectedMsg struct {
	scheme theme.Scheme
}

// Model is the terminal front-end of a timeline page. It never mutates the
// page directly; every user action is dispatched as a page message.
type Model struct {
	page  *page.Page
	title string
	log   zerolog.Logger

	container string
	cards     []markup.Card
	cursor    int
	scroll    int
	highlight int

	width  int
	height int

	status   string
	statusID int

	openURLFn func(string) error
	copyURLFn func(string) error

	detectScheme func() theme.Scheme
	scheme       theme.Scheme
}

func NewModel(p *page.Page, title string, log zerolog.Logger) Model {
	return Model{
		page:      p,
		title:     title,
		log:       log,
		openURLFn: platform.OpenURLInBrowser,
		copyURLFn: platform.CopyURLToClipboard,
	}
}

// SetSchemeDetector makes the model re-check the OS colour scheme whenever the
// terminal regains focus. initial is the scheme the page started with.
func (m *Model) SetSchemeDetector(initial theme.Scheme, detect func() theme.Scheme) {
	m.scheme = initial
	m.detectScheme = detect
}

func (m Model) Init() tea.Cmd {
	return m.page.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sync()
		return m, nil
	case tea.KeyMsg:
		if m.page.Dropdown().IsOpen() {
			return m.updateMenuKey(msg)
		}
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case linkActionMsg:
		m.status = msg.status
		m.statusID++
		return m, clearStatusCmd(m.statusID, 3*time.Second)
	case linkActionErrorMsg:
		m.status = msg.err.Error()
		m.statusID++
		return m, clearStatusCmd(m.statusID, 4*time.Second)
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	case tea.FocusMsg:
		if m.detectScheme == nil {
			return m, nil
		}
		return m, detectSchemeCmd(m.detectScheme)
	case schemeDetectedMsg:
		if msg.scheme == m.scheme {
			return m, nil
		}
		m.scheme = msg.scheme
		cmd := m.dispatch(page.SystemSchemeMsg{Scheme: msg.scheme})
		return m, cmd
	}
	cmd := m.dispatch(msg)
	return m, cmd
}

func (m Model) updateMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.page.Dropdown().Items()
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.highlight = state.ClampCursor(m.highlight-1, len(items))
	case "down", "j":
		m.highlight = state.ClampCursor(m.highlight+1, len(items))
	case "enter":
		if len(items) == 0 {
			return m, nil
		}
		cmd := m.dispatch(page.SelectSourceMsg{ID: items[m.highlight].ID})
		return m, cmd
	case "esc":
		cmd := m.dispatch(page.OutsideClickMsg{})
		return m, cmd
	case "s", "tab":
		cmd := m.dispatch(page.ToggleDropdownMsg{})
		return m, cmd
	case "t":
		cmd := m.dispatch(page.CycleThemeMsg{})
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "t":
		cmd := m.dispatch(page.CycleThemeMsg{})
		return m, cmd
	case "s", "tab":
		m.highlight = m.selectedIndex()
		cmd := m.dispatch(page.ToggleDropdownMsg{})
		return m, cmd
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "g":
		m.moveCursor(-len(m.cards))
	case "G":
		m.moveCursor(len(m.cards))
	case "pgup", "ctrl+b":
		m.scrollBy(-m.bodyHeight())
	case "pgdown", "ctrl+f":
		m.scrollBy(m.bodyHeight())
	case "o":
		return m.openCurrentLink()
	case "y":
		return m.copyCurrentLink()
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-3)
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(3)
		return m, nil
	case msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress:
		return m, nil
	}

	dropdown := m.page.Dropdown()
	if msg.Y == 0 {
		target := view.HeaderTargetAt(msg.X, m.title, m.page.ThemeAttributes(), dropdown.Label(), dropdown.IsOpen(), m.contentWidth(), m.theme())
		switch target {
		case view.HeaderSourceTrigger:
			m.highlight = m.selectedIndex()
			cmd := m.dispatch(page.ToggleDropdownMsg{})
			return m, cmd
		case view.HeaderThemeToggle:
			m.dispatch(page.OutsideClickMsg{})
			cmd := m.dispatch(page.CycleThemeMsg{})
			return m, cmd
		}
	}
	if dropdown.IsOpen() {
		items := dropdown.Items()
		if row := msg.Y - 1; row >= 0 && row < len(items) {
			m.highlight = row
			cmd := m.dispatch(page.SelectSourceMsg{ID: items[row].ID})
			return m, cmd
		}
		cmd := m.dispatch(page.OutsideClickMsg{})
		return m, cmd
	}

	_, spans := m.bodyLines()
	if idx := state.CardAtLine(spans, m.scroll+msg.Y-m.bodyTop()); idx >= 0 {
		m.cursor = idx
	}
	return m, nil
}

// dispatch forwards msg to the page and brings the card view up to date.
func (m *Model) dispatch(msg tea.Msg) tea.Cmd {
	cmd := m.page.Update(msg)
	m.sync()
	return cmd
}

func (m *Model) sync() {
	if c := m.page.Container(); c != m.container {
		m.container = c
		cards, err := markup.ParseCards(c)
		if err != nil {
			m.log.Warn().Err(err).Msg("could not read timeline markup")
			cards = nil
		}
		m.cards = cards
		m.cursor = 0
		m.scroll = 0
	}
	m.cursor = state.ClampCursor(m.cursor, len(m.cards))
	_, spans := m.bodyLines()
	m.scroll = state.ClampScroll(m.scroll, state.TotalLines(spans), m.bodyHeight())
	m.observe(spans)
}

// observe reports the visible fraction of every card on screen.
func (m *Model) observe(spans []state.Span) {
	height := m.bodyHeight()
	for i, span := range spans {
		ratio := reveal.Ratio(span.Top, span.Height, m.scroll, height)
		if ratio <= 0 {
			continue
		}
		m.page.Update(page.IntersectionMsg{Index: i, Ratio: ratio})
	}
}

func (m *Model) moveCursor(delta int) {
	if len(m.cards) == 0 {
		return
	}
	m.cursor = state.ClampCursor(m.cursor+delta, len(m.cards))
	_, spans := m.bodyLines()
	m.scroll = state.ScrollToShow(spans[m.cursor], m.scroll, m.bodyHeight())
	m.sync()
}

func (m *Model) scrollBy(delta int) {
	_, spans := m.bodyLines()
	m.scroll = state.ClampScroll(m.scroll+delta, state.TotalLines(spans), m.bodyHeight())
	for i, span := range spans {
		if span.Bottom() > m.scroll {
			m.cursor = i
			break
		}
	}
	m.sync()
}

func (m Model) selectedIndex() int {
	selected := m.page.Dropdown().Selected()
	for i, item := range m.page.Dropdown().Items() {
		if item.ID == selected {
			return i
		}
	}
	return 0
}

func (m Model) currentLink() (string, error) {
	if len(m.cards) == 0 {
		return "", fmt.Errorf("no card selected")
	}
	link, _ := platform.FirstLink(m.cards[m.cursor])
	return platform.ValidateLinkURL(link)
}

func (m Model) openCurrentLink() (tea.Model, tea.Cmd) {
	link, err := m.currentLink()
	if err != nil {
		m.status = err.Error()
		m.statusID++
		return m, clearStatusCmd(m.statusID, 4*time.Second)
	}
	return m, openURLCmd(link, m.openURLFn, m.copyURLFn)
}

func (m Model) copyCurrentLink() (tea.Model, tea.Cmd) {
	link, err := m.currentLink()
	if err != nil {
		m.status = err.Error()
		m.statusID++
		return m, clearStatusCmd(m.statusID, 4*time.Second)
	}
	return m, copyURLCmd(link, m.copyURLFn)
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) chromeLines() int {
	lines := baseChromeLines
	if m.page.Dropdown().IsOpen() {
		lines += len(m.page.Dropdown().Items())
	}
	return lines
}

// bodyTop is the screen row of the first body line.
func (m Model) bodyTop() int {
	return m.chromeLines() - 3
}

func (m Model) bodyHeight() int {
	return state.BodyHeight(m.height, m.chromeLines())
}

// bodyLines lays out the scrollable body. Spans are empty unless the
// container holds cards.
func (m Model) bodyLines() ([]string, []state.Span) {
	th := m.theme()
	if len(m.cards) == 0 {
		switch {
		case m.page.Loading():
			return []string{th.MetaValue.Render("Loading timeline...")}, nil
		case markup.Failure(m.container) != "":
			return []string{th.StateWarn.Render(markup.Failure(m.container))}, nil
		default:
			return []string{th.MetaValue.Render("No entries.")}, nil
		}
	}

	var lines []string
	heights := make([]int, 0, len(m.cards))
	for i, card := range m.cards {
		if i > 0 {
			lines = append(lines, "")
		}
		cardLines := view.CardLines(view.CardParams{
			Card:     card,
			Width:    m.contentWidth(),
			Active:   i == m.cursor,
			Revealed: m.page.Revealed(i),
		}, th)
		heights = append(heights, len(cardLines))
		lines = append(lines, cardLines...)
	}
	return lines, state.Layout(heights, cardGap)
}

func (m Model) theme() tuitheme.Theme {
	return tuitheme.For(m.page.ThemeAttributes().Theme)
}

func (m Model) revealedCount() int {
	n := 0
	for i := range m.cards {
		if m.page.Revealed(i) {
			n++
		}
	}
	return n
}

func (m Model) View() string {
	th := m.theme()
	dropdown := m.page.Dropdown()

	var b strings.Builder
	b.WriteString(view.Header(m.title, m.page.ThemeAttributes(), dropdown.Label(), dropdown.IsOpen(), m.contentWidth(), th))
	b.WriteString("\n")
	if dropdown.IsOpen() {
		for _, line := range view.Menu(dropdown.Items(), m.highlight, th) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	message := m.status
	if toast, ok := m.page.Toast(); ok {
		message = toast.Text
	}
	b.WriteString(view.MessageLine(m.page.Loading(), message, th))
	b.WriteString("\n\n")

	lines, _ := m.bodyLines()
	top := state.ClampScroll(m.scroll, len(lines), m.bodyHeight())
	end := min(len(lines), top+m.bodyHeight())
	for _, line := range lines[top:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(view.Footer(m.page.Current(), len(m.cards), m.revealedCount(), m.page.Location(), th))
	b.WriteString("\n")
	b.WriteString(view.Toolbar(dropdown.IsOpen()))
	b.WriteString("\n")
	return b.String()
}

func detectSchemeCmd(detect func() theme.Scheme) tea.Cmd {
	return func() tea.Msg {
		return schemeDetectedMsg{scheme: detect()}
	}
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func openURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return linkActionMsg{status: "Opened link in browser"}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return linkActionMsg{status: "Could not open browser, link copied to clipboard"}
			}
		}
		return linkActionErrorMsg{err: fmt.Errorf("could not open link or copy to clipboard")}
	}
}

func copyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return linkActionMsg{status: "Link copied to clipboard"}
			}
		}
		return linkActionErrorMsg{err: fmt.Errorf("could not copy link to clipboard")}
	}
}
