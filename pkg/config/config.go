// Package config loads user settings for the squared CLI.
//
// Settings live in a TOML file at $XDG_CONFIG_HOME/squared/config.toml
// (~/.config/squared/config.toml when XDG_CONFIG_HOME is unset). Every
// field is optional; command-line flags override file values.
//
//	[resolve]
//	tolerance = 1.0
//	support_rtl = true
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[store]
//	uri = "mongodb://localhost:27017/squared"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/anpham6/squared-sub012/pkg/cache"
	"github.com/anpham6/squared-sub012/pkg/errors"
	"github.com/anpham6/squared-sub012/pkg/geom"
)

const appName = "squared"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

var backends = []string{BackendFile, BackendRedis, BackendNone}

// Config is the decoded settings file.
type Config struct {
	Resolve ResolveConfig `toml:"resolve"`
	Cache   CacheConfig   `toml:"cache"`
	Store   StoreConfig   `toml:"store"`
}

// ResolveConfig holds resolver defaults.
type ResolveConfig struct {
	Tolerance  float64 `toml:"tolerance"`
	Exact      bool    `toml:"exact"`
	SupportRTL bool    `toml:"support_rtl"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend  string   `toml:"backend"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	Prefix   string   `toml:"prefix"`
	TTL      Duration `toml:"ttl"`
}

// StoreConfig points at the run store. An empty URI disables --save.
type StoreConfig struct {
	URI string `toml:"uri"`
}

// Duration is a time.Duration written as a Go duration string ("36h").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Resolve: ResolveConfig{Tolerance: geom.DefaultTolerance},
		Cache: CacheConfig{
			Backend: BackendFile,
			Prefix:  cache.DefaultRedisPrefix,
			TTL:     Duration{cache.ResultTTL},
		},
	}
}

// Path returns the settings file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Dir returns the settings directory using the XDG standard
// (~/.config/squared/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// CacheDir returns the file cache directory: the configured one, or the XDG
// cache location (~/.cache/squared/).
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads the settings file at path on top of Default. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the settings file from [Path].
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks value ranges and backend requirements.
func (c Config) Validate() error {
	if err := errors.ValidateTolerance(c.Resolve.Tolerance); err != nil {
		return err
	}
	if !slices.Contains(backends, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend must be one of %s, got %q", strings.Join(backends, ", "), c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis {
		if err := errors.ValidateURI(c.Cache.RedisURL, "redis", "rediss"); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cache.redis_url")
		}
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if c.Store.URI != "" {
		if err := errors.ValidateURI(c.Store.URI, "mongodb", "mongodb+srv", "file", "memory"); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "store.uri")
		}
	}
	return nil
}
