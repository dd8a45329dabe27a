// Package page is the headless timeline document: the rendered container,
// the source dropdown, the theme attributes, the URL and transient toasts.
// Front-ends drive it by sending messages to Update.
package page

import (
	"context"
	"fmt"
	"net/url"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/glabrego/timeline-cli/internal/reveal"
	"github.com/glabrego/timeline-cli/internal/source"
	"github.com/glabrego/timeline-cli/internal/theme"
	"github.com/glabrego/timeline-cli/internal/timeline"
)

// SourceParam is the URL query parameter naming the current source.
const SourceParam = "source"

// InlineFailure replaces the container when the very first load fails.
const InlineFailure = `<div class="timeline-error">Failed to load timeline data. Please try again later.</div>`

const (
	defaultFetchTimeout  = 10 * time.Second
	defaultToastDuration = 3 * time.Second
)

// Loader is the part of source.Manager the page depends on.
type Loader interface {
	LoadData(ctx context.Context, id string) ([]timeline.Entry, error)
	IsLoaded(id string) bool
}

type Options struct {
	FetchTimeout  time.Duration
	ToastDuration time.Duration
	Log           zerolog.Logger
}

// Toast is a transient notification.
type Toast struct {
	ID   int
	Text string
}

// snapshot is the last settled view, restored when a switch fails.
type snapshot struct {
	id        string
	container string
	cards     int
}

type Page struct {
	registry *source.Registry
	loader   Loader
	theme    *theme.Controller
	dropdown *Dropdown
	reveal   *reveal.Animator
	location *url.URL
	opts     Options

	current   string
	container string
	cards     int
	loading   bool
	token     uint64
	pending   *snapshot
	toast     *Toast
	toastSeq  int
}

// New builds a page for location. themeCtl may be nil.
func New(registry *source.Registry, loader Loader, themeCtl *theme.Controller, location *url.URL, opts Options) *Page {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = defaultToastDuration
	}
	loc := &url.URL{}
	if location != nil {
		copied := *location
		loc = &copied
	}
	animator := reveal.NewAnimator(reveal.DefaultThreshold)
	animator.OnReveal(func(i int) {
		opts.Log.Trace().Int("card", i).Msg("card revealed")
	})
	return &Page{
		registry: registry,
		loader:   loader,
		theme:    themeCtl,
		dropdown: NewDropdown(registry.All()),
		reveal:   animator,
		location: loc,
		opts:     opts,
	}
}

// InitialSource returns the registered id named by the URL, or the registry default.
func InitialSource(location *url.URL, registry *source.Registry) string {
	if location != nil {
		if id := location.Query().Get(SourceParam); registry.Has(id) {
			return id
		}
	}
	return registry.Default()
}

// Init selects the initial source and starts loading it.
func (p *Page) Init() tea.Cmd {
	target := InitialSource(p.location, p.registry)
	p.dropdown.Mark(target)
	return p.SwitchSource(target)
}

// SwitchSource clears the container, shows the loading state and returns the
// command that loads target. A switch started while another is pending
// supersedes it; the snapshot stays the last settled view.
func (p *Page) SwitchSource(target string) tea.Cmd {
	p.token++
	if p.pending == nil {
		p.pending = &snapshot{id: p.current, container: p.container, cards: p.cards}
	}
	p.container = ""
	p.loading = true
	p.opts.Log.Debug().Str("source", target).Uint64("token", p.token).Msg("switching source")
	return loadSourceCmd(p.loader, target, p.token, p.opts.FetchTimeout)
}

func (p *Page) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SwitchSourceMsg:
		return p.SwitchSource(msg.ID)
	case SelectSourceMsg:
		if !p.dropdown.Select(msg.ID) {
			return nil
		}
		return p.SwitchSource(msg.ID)
	case ToggleDropdownMsg:
		p.dropdown.Toggle()
	case CloseDropdownMsg:
		p.dropdown.Close()
	case OutsideClickMsg:
		if p.dropdown.IsOpen() {
			p.dropdown.OutsideClick()
		}
	case CycleThemeMsg:
		if p.theme != nil {
			p.theme.Cycle(context.Background())
		}
	case SystemSchemeMsg:
		if p.theme != nil {
			p.theme.SystemChanged(context.Background(), msg.Scheme)
		}
	case IntersectionMsg:
		p.reveal.Intersect(msg.Index, msg.Ratio)
	case SourceLoadedMsg:
		return p.applyLoaded(msg)
	case SourceLoadFailedMsg:
		return p.applyFailed(msg)
	case ToastExpiredMsg:
		if p.toast != nil && p.toast.ID == msg.ID {
			p.toast = nil
		}
	}
	return nil
}

func (p *Page) applyLoaded(msg SourceLoadedMsg) tea.Cmd {
	if msg.Token != p.token {
		p.opts.Log.Debug().Str("source", msg.ID).Uint64("token", msg.Token).Msg("discarding stale source result")
		return nil
	}
	p.pending = nil
	p.loading = false
	p.current = msg.ID
	p.setLocationSource(msg.ID)
	p.container = timeline.Render(msg.Entries)
	p.cards = len(msg.Entries)
	p.reveal.Observe(p.cards)
	p.dropdown.Mark(msg.ID)
	p.opts.Log.Info().Str("source", msg.ID).Int("entries", p.cards).Dur("took", msg.Took).Msg("source rendered")
	return nil
}

func (p *Page) applyFailed(msg SourceLoadFailedMsg) tea.Cmd {
	if msg.Token != p.token {
		p.opts.Log.Debug().Str("source", msg.ID).Uint64("token", msg.Token).Msg("discarding stale source failure")
		return nil
	}
	prev := p.pending
	p.pending = nil
	p.loading = false
	p.opts.Log.Warn().Err(msg.Err).Str("source", msg.ID).Msg("source switch failed")

	if prev == nil || prev.id == "" {
		p.container = InlineFailure
		p.cards = 0
		p.reveal.Observe(0)
		return nil
	}

	p.container = prev.container
	p.cards = prev.cards
	p.current = prev.id
	p.dropdown.Mark(prev.id)
	return p.showToast(fmt.Sprintf("Failed to load %s, showing %s", p.displayName(msg.ID), p.displayName(prev.id)))
}

func (p *Page) showToast(text string) tea.Cmd {
	p.toastSeq++
	p.toast = &Toast{ID: p.toastSeq, Text: text}
	return expireToastCmd(p.toastSeq, p.opts.ToastDuration)
}

func (p *Page) setLocationSource(id string) {
	q := p.location.Query()
	q.Set(SourceParam, id)
	p.location.RawQuery = q.Encode()
}

func (p *Page) displayName(id string) string {
	if desc, ok := p.registry.Lookup(id); ok {
		return desc.DisplayName
	}
	return id
}

// Current is the source of the settled view, "" before the first success.
func (p *Page) Current() string {
	return p.current
}

func (p *Page) Container() string {
	return p.container
}

func (p *Page) CardCount() int {
	return p.cards
}

func (p *Page) Loading() bool {
	return p.loading
}

func (p *Page) Toast() (Toast, bool) {
	if p.toast == nil {
		return Toast{}, false
	}
	return *p.toast, true
}

func (p *Page) Dropdown() *Dropdown {
	return p.dropdown
}

func (p *Page) Location() string {
	return p.location.String()
}

func (p *Page) Revealed(index int) bool {
	return p.reveal.Revealed(index)
}

func (p *Page) ThemeAttributes() theme.Attributes {
	if p.theme == nil {
		return theme.Attributes{Mode: theme.ModeSystem, Theme: theme.SchemeLight}
	}
	return p.theme.Attributes()
}
