package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/anpham6/squared-sub012/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are parsed before any subcommand runs.
type globalFlags struct {
	verbose    bool
	configPath string
}

func run(ctx context.Context) error {
	var flags globalFlags

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	pf := root.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&flags.configPath, "config", "", "settings file (default: $XDG_CONFIG_HOME/squared/config.toml)")

	attach := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if flags.verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		c.ConfigPath = flags.configPath
		if attach == nil {
			return nil
		}
		return attach(cmd, args)
	}

	return root.ExecuteContext(ctx)
}
