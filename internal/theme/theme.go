// Package theme manages the system/light/dark preference and the effective
// light or dark theme derived from it.
package theme

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/glabrego/timeline-cli/internal/storage"
)

// StorageKey is the durable key holding an explicit preference.
const StorageKey = "theme"

// Mode is the user's theme preference.
type Mode string

const (
	ModeSystem Mode = "system"
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
)

// Scheme is an applied colour scheme.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// Next returns the mode after m in the system → light → dark cycle.
func (m Mode) Next() Mode {
	switch m {
	case ModeSystem:
		return ModeLight
	case ModeLight:
		return ModeDark
	default:
		return ModeSystem
	}
}

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSystem, ModeLight, ModeDark:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid theme mode: %q", s)
}

// Store is the durable key-value storage the controller persists to.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Attributes are the document-level values the page exposes.
type Attributes struct {
	Mode  Mode
	Theme Scheme
}

// Controller owns the preference and the effective scheme. Storage errors are
// logged and the controller continues with an in-memory store.
type Controller struct {
	store    Store
	log      zerolog.Logger
	system   Scheme
	mode     Mode
	applied  Scheme
	onChange func(Attributes)
}

func NewController(store Store, system Scheme, log zerolog.Logger) *Controller {
	if store == nil {
		store = storage.NewMemoryStore()
	}
	if system != SchemeDark {
		system = SchemeLight
	}
	return &Controller{
		store:   store,
		log:     log,
		system:  system,
		mode:    ModeSystem,
		applied: system,
	}
}

// OnChange registers a callback run after every apply.
func (c *Controller) OnChange(fn func(Attributes)) {
	c.onChange = fn
}

// Initialize applies the stored preference, or system when none is stored.
func (c *Controller) Initialize(ctx context.Context) {
	mode := ModeSystem
	value, ok, err := c.store.Get(ctx, StorageKey)
	switch {
	case err != nil:
		c.degrade(err)
	case ok:
		parsed, perr := ParseMode(value)
		if perr != nil {
			c.log.Warn().Str("value", value).Msg("ignoring stored theme preference")
			break
		}
		mode = parsed
	}
	c.Apply(ctx, mode)
}

// Apply sets the preference. System clears the stored value and follows the
// OS scheme; light and dark are stored and applied directly.
func (c *Controller) Apply(ctx context.Context, mode Mode) {
	if _, err := ParseMode(string(mode)); err != nil {
		mode = ModeSystem
	}
	c.mode = mode
	if mode == ModeSystem {
		if err := c.store.Delete(ctx, StorageKey); err != nil {
			c.degrade(err)
		}
		c.applied = c.system
	} else {
		if err := c.store.Set(ctx, StorageKey, string(mode)); err != nil {
			c.degrade(err)
			_ = c.store.Set(ctx, StorageKey, string(mode))
		}
		c.applied = Scheme(mode)
	}
	if c.onChange != nil {
		c.onChange(c.Attributes())
	}
}

// Cycle advances system → light → dark → system.
func (c *Controller) Cycle(ctx context.Context) Mode {
	c.Apply(ctx, c.mode.Next())
	return c.mode
}

// SystemChanged records a new OS scheme. It only affects the applied scheme
// while the preference is system.
func (c *Controller) SystemChanged(ctx context.Context, scheme Scheme) {
	if scheme != SchemeDark {
		scheme = SchemeLight
	}
	c.system = scheme
	if c.mode == ModeSystem {
		c.Apply(ctx, ModeSystem)
	}
}

func (c *Controller) Mode() Mode {
	return c.mode
}

func (c *Controller) Effective() Scheme {
	return c.applied
}

func (c *Controller) Attributes() Attributes {
	return Attributes{Mode: c.mode, Theme: c.applied}
}

func (c *Controller) degrade(err error) {
	if _, ok := c.store.(*storage.MemoryStore); ok {
		return
	}
	c.log.Warn().Err(err).Msg("theme storage unavailable, keeping preference in memory")
	c.store = storage.NewMemoryStore()
}
