package source

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/glabrego/timeline-cli/internal/timeline"
)

// Manager lazily loads data sources and keeps every successful result for its
// whole lifetime. It is safe for concurrent use.
type Manager struct {
	registry *Registry
	fetcher  Fetcher
	log      zerolog.Logger

	mu    sync.RWMutex
	cache map[string][]timeline.Entry
	group singleflight.Group
}

func NewManager(registry *Registry, fetcher Fetcher, log zerolog.Logger) *Manager {
	return &Manager{
		registry: registry,
		fetcher:  fetcher,
		log:      log,
		cache:    make(map[string][]timeline.Entry),
	}
}

func (m *Manager) IsLoaded(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.cache[id]
	return ok
}

// LoadData returns the entries of a source, fetching them on the first call.
// Concurrent misses for the same id share one fetch.
func (m *Manager) LoadData(ctx context.Context, id string) ([]timeline.Entry, error) {
	if entries, ok := m.cached(id); ok {
		return entries, nil
	}

	desc, ok := m.registry.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, id)
	}

	v, err, _ := m.group.Do(id, func() (any, error) {
		if entries, ok := m.cached(id); ok {
			return entries, nil
		}
		start := time.Now()
		body, err := m.fetcher.Fetch(ctx, desc.Location)
		if err != nil {
			m.log.Warn().Err(err).Str("source", id).Msg("source fetch failed")
			return nil, fmt.Errorf("load source %s: %w", id, err)
		}
		var entries []timeline.Entry
		if err := json.Unmarshal(body, &entries); err != nil {
			m.log.Warn().Err(err).Str("source", id).Msg("source payload rejected")
			return nil, fmt.Errorf("load source %s: %w: %v", id, ErrParse, err)
		}
		if entries == nil {
			entries = []timeline.Entry{}
		}

		m.mu.Lock()
		m.cache[id] = entries
		m.mu.Unlock()

		m.log.Debug().
			Str("source", id).
			Str("location", desc.Location).
			Int("entries", len(entries)).
			Dur("took", time.Since(start)).
			Msg("source loaded")
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return clone(v.([]timeline.Entry)), nil
}

func (m *Manager) cached(id string) ([]timeline.Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries, ok := m.cache[id]
	if !ok {
		return nil, false
	}
	return clone(entries), true
}

// clone copies entries and their details so callers cannot reach the cache.
func clone(entries []timeline.Entry) []timeline.Entry {
	out := make([]timeline.Entry, len(entries))
	for i, e := range entries {
		e.Details = slices.Clone(e.Details)
		out[i] = e
	}
	return out
}
