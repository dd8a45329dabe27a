package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/glabrego/timeline-cli/internal/logging"
)

const (
	envPrefix            = "TIMELINE_"
	defaultPageURL       = "index.html"
	defaultDBPath        = "timeline.db"
	defaultFetchTimeout  = 10 * time.Second
	defaultToastDuration = 3 * time.Second
)

// Config holds runtime settings for the timeline client.
type Config struct {
	// PageURL is the page location data source paths resolve against. An
	// http(s) URL fetches over the network; anything else is a local path.
	PageURL       string        `koanf:"page_url"`
	DBPath        string        `koanf:"db_path"`
	DefaultSource string        `koanf:"default_source"`
	FetchTimeout  time.Duration `koanf:"fetch_timeout"`
	ToastDuration time.Duration `koanf:"toast_duration"`
	LogLevel      string        `koanf:"log_level"`
	LogFormat     string        `koanf:"log_format"`
	LogFile       string        `koanf:"log_file"`
}

func Default() Config {
	return Config{
		PageURL:       defaultPageURL,
		DBPath:        defaultDBPath,
		FetchTimeout:  defaultFetchTimeout,
		ToastDuration: defaultToastDuration,
		LogLevel:      "info",
		LogFormat:     "console",
	}
}

// Load reads defaults, then the YAML file at path (if given and present),
// then TIMELINE_* environment overrides.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("access config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.PageURL == "" {
		return errors.New("page_url is required")
	}
	if _, err := url.Parse(c.PageURL); err != nil {
		return fmt.Errorf("page_url is not a valid URL: %w", err)
	}
	if c.DBPath == "" {
		return errors.New("db_path is required")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive: %s", c.FetchTimeout)
	}
	if c.ToastDuration <= 0 {
		return fmt.Errorf("toast_duration must be positive: %s", c.ToastDuration)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json: %s", c.LogFormat)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("log_level is not recognized: %s", c.LogLevel)
	}
	return nil
}

// Remote reports whether data sources are fetched over HTTP.
func (c Config) Remote() bool {
	u, err := url.Parse(c.PageURL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
