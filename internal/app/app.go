// Package app wires configuration, storage, theme, data sources and the page
// into a runnable timeline client.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/glabrego/timeline-cli/internal/config"
	"github.com/glabrego/timeline-cli/internal/page"
	"github.com/glabrego/timeline-cli/internal/source"
	"github.com/glabrego/timeline-cli/internal/storage"
	"github.com/glabrego/timeline-cli/internal/theme"
)

type Options struct {
	// Source overrides the source named by the page URL.
	Source string
	// System is the OS colour scheme detected at startup.
	System theme.Scheme
	Log    zerolog.Logger
}

// App owns the long-lived pieces of one client session.
type App struct {
	Config  config.Config
	Page    *page.Page
	Manager *source.Manager
	Theme   *theme.Controller

	log   zerolog.Logger
	store io.Closer
}

func New(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	log := opts.Log

	registry, err := newRegistry(cfg.DefaultSource)
	if err != nil {
		return nil, err
	}
	if opts.Source != "" && !registry.Has(opts.Source) {
		return nil, fmt.Errorf("%w: %s", source.ErrUnknownSource, opts.Source)
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return nil, err
	}

	location, err := PageLocation(cfg.PageURL, opts.Source)
	if err != nil {
		return nil, err
	}

	store, closer := openStore(ctx, cfg.DBPath, log)
	ctl := theme.NewController(store, opts.System, log)
	ctl.OnChange(func(a theme.Attributes) {
		log.Debug().Str("mode", string(a.Mode)).Str("theme", string(a.Theme)).Msg("theme applied")
	})
	ctl.Initialize(ctx)

	manager := source.NewManager(registry, fetcher, log)
	p := page.New(registry, manager, ctl, location, page.Options{
		FetchTimeout:  cfg.FetchTimeout,
		ToastDuration: cfg.ToastDuration,
		Log:           log,
	})

	return &App{
		Config:  cfg,
		Page:    p,
		Manager: manager,
		Theme:   ctl,
		log:     log,
		store:   closer,
	}, nil
}

func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// RenderDocument loads the initial source without a terminal and writes the
// full HTML document with every card revealed. The document is written even
// when loading fails; the load error is returned afterwards.
func (a *App) RenderDocument(w io.Writer, title string) error {
	var loadErr error
	if cmd := a.Page.Init(); cmd != nil {
		msg := cmd()
		if failed, ok := msg.(page.SourceLoadFailedMsg); ok {
			loadErr = fmt.Errorf("load source %s: %w", failed.ID, failed.Err)
		}
		a.Page.Update(msg)
	}
	a.Page.RevealAll()
	if err := a.Page.WriteDocument(w, title); err != nil {
		return err
	}
	return loadErr
}

// PageLocation parses pageURL and, when sourceID is set, replaces its source
// query parameter.
func PageLocation(pageURL, sourceID string) (*url.URL, error) {
	loc, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}
	if sourceID != "" {
		q := loc.Query()
		q.Set(page.SourceParam, sourceID)
		loc.RawQuery = q.Encode()
	}
	return loc, nil
}

func newRegistry(defaultID string) (*source.Registry, error) {
	registry := source.DefaultRegistry()
	if defaultID == "" || defaultID == registry.Default() {
		return registry, nil
	}
	if !registry.Has(defaultID) {
		return nil, fmt.Errorf("default_source %q is not a registered source", defaultID)
	}
	return source.NewRegistry(defaultID, registry.All()...), nil
}

func newFetcher(cfg config.Config) (source.Fetcher, error) {
	if cfg.Remote() {
		fetcher, err := source.NewHTTPFetcher(cfg.PageURL, &http.Client{Timeout: cfg.FetchTimeout})
		if err != nil {
			return nil, fmt.Errorf("build http fetcher: %w", err)
		}
		return fetcher, nil
	}
	loc, err := url.Parse(cfg.PageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}
	return source.NewFSFetcher(os.DirFS(filepath.Dir(filepath.FromSlash(loc.Path)))), nil
}

// openStore opens the sqlite preference store. Any failure falls back to an
// in-memory store so the theme still works for this session.
func openStore(ctx context.Context, path string, log zerolog.Logger) (theme.Store, io.Closer) {
	repo, err := storage.NewRepository(path)
	if err == nil {
		err = repo.Init(ctx)
	}
	if err == nil {
		err = repo.CheckWritable(ctx)
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("preference storage unavailable, using memory")
		if repo != nil {
			_ = repo.Close()
		}
		return storage.NewMemoryStore(), nil
	}
	return repo, repo
}
