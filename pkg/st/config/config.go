// Package config resolves settings from flags, ST_* environment variables, an optional
// config file and defaults, in that order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/komsit37/sportstrader/pkg/st/source"
	"github.com/komsit37/sportstrader/pkg/st/theme"
)

const EnvPrefix = "ST"

// Keys shared by viper, env vars and cobra flags.
const (
	KeyMarketsURL  = "markets-url"
	KeyFiltersURL  = "filters-url"
	KeyTheme       = "theme"
	KeyLogLevel    = "log-level"
	KeyTimeout     = "timeout"
	KeyFormat      = "format"
	KeyColumns     = "columns"
	KeyColumnSets  = "column-sets"
	KeyMaxColWidth = "max-col-width"
	KeyNoColor     = "no-color"
	KeyFile        = "file"
)

type Config struct {
	MarketsURL  string
	FiltersURL  string
	Theme       theme.Theme
	LogLevel    slog.Level
	Timeout     time.Duration
	Format      string
	Columns     []string
	ColumnSets  []string
	MaxColWidth int
	NoColor     bool
	File        string
}

// New returns a viper instance with env binding and defaults applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyFiltersURL, source.DefaultFiltersURL)
	v.SetDefault(KeyTheme, "dark")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyTimeout, time.Duration(0))
	v.SetDefault(KeyFormat, "table")
	return v
}

// ReadFile merges the config file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load builds a Config from v.
func Load(v *viper.Viper) (Config, error) {
	th, err := theme.Parse(v.GetString(KeyTheme))
	if err != nil {
		return Config{}, err
	}
	lvl, err := ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, err
	}
	timeout := v.GetDuration(KeyTimeout)
	if timeout < 0 {
		return Config{}, fmt.Errorf("timeout must not be negative: %s", timeout)
	}
	filtersURL := strings.TrimSpace(v.GetString(KeyFiltersURL))
	if filtersURL == "" {
		filtersURL = source.DefaultFiltersURL
	}
	return Config{
		MarketsURL:  strings.TrimSpace(v.GetString(KeyMarketsURL)),
		FiltersURL:  filtersURL,
		Theme:       th,
		LogLevel:    lvl,
		Timeout:     timeout,
		Format:      v.GetString(KeyFormat),
		Columns:     list(v.GetStringSlice(KeyColumns)),
		ColumnSets:  list(v.GetStringSlice(KeyColumnSets)),
		MaxColWidth: v.GetInt(KeyMaxColWidth),
		NoColor:     v.GetBool(KeyNoColor),
		File:        v.GetString(KeyFile),
	}, nil
}

// ParseLevel maps debug, info, warn and error to slog levels. Empty means warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q: expected debug, info, warn or error", s)
	}
}

// list splits comma-joined entries, since env vars arrive as a single string.
func list(in []string) []string {
	var out []string
	for _, s := range in {
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
