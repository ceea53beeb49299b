// Package cli implements the squared command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/anpham6/squared-sub012/pkg/buildinfo"
	"github.com/anpham6/squared-sub012/pkg/cache"
	"github.com/anpham6/squared-sub012/pkg/config"
	"github.com/anpham6/squared-sub012/pkg/pipeline"
	"github.com/anpham6/squared-sub012/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "squared"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the settings file location when set.
	ConfigPath string

	// Config is loaded lazily by the first command that needs it.
	Config *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Squared translates measured layouts into anchors and gravity",
		Long: `Squared reads a measured element tree and emits the layout directives a
constraint or gravity based template renderer needs: edge, offset and
circular anchors for constraint containers, gravity tokens and margins for
gravity containers.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.runsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Settings
// =============================================================================

// loadConfig returns the loaded settings, reading the settings file on first use.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.Config != nil {
		return *c.Config, nil
	}
	load := config.LoadDefault
	if c.ConfigPath != "" {
		load = func() (config.Config, error) { return config.Load(c.ConfigPath) }
	}
	cfg, err := load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	c.Config = &cfg
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	cch, err := c.newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(cch, nil, c.Logger)
	runner.ResultTTL = cfg.Cache.TTL.Duration
	return runner, nil
}

// newCache opens the configured cache backend. A file cache whose directory
// cannot be determined degrades to no caching.
func (c *CLI) newCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisURL, cfg.Cache.Prefix)
		if err != nil {
			return nil, fmt.Errorf("connect redis cache: %w", err)
		}
		return rc, nil
	}
	dir, err := cfg.CacheDir()
	if err != nil {
		c.Logger.Warn("cache directory unavailable, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// openStore opens the configured run store.
func (c *CLI) openStore(ctx context.Context) (store.Store, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	uri := cfg.Store.URI
	if uri == "" {
		uri = "file://"
	}
	return store.Open(ctx, uri)
}

// =============================================================================
// Options Helpers
// =============================================================================

// resolveOptions builds pipeline options from the settings file. Flags that
// were set explicitly are applied on top by the caller.
func resolveOptions(cfg config.Config) pipeline.Options {
	return pipeline.Options{
		Tolerance:  cfg.Resolve.Tolerance,
		Exact:      cfg.Resolve.Exact,
		SupportRTL: cfg.Resolve.SupportRTL,
	}
}
