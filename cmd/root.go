package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feederwatch/dashboard/cmd/color"
	"github.com/feederwatch/dashboard/cmd/directory"
	"github.com/feederwatch/dashboard/cmd/overlay"
	"github.com/feederwatch/dashboard/cmd/version"
	"github.com/feederwatch/dashboard/internal/conf"
	"github.com/feederwatch/dashboard/internal/logger"
)

// RootCommand creates and returns the root command
func RootCommand(ctx *conf.Context) *cobra.Command {
	var (
		configFile  string
		showMetrics bool
	)

	rootCmd := &cobra.Command{
		Use:           "feederwatch",
		Short:         "Bird feeder dashboard tools",
		Long:          "Render species directory trees and video detection overlays from exported dashboard data.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up the global flags for the root command.
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file (default: search ., ~/.config/feederwatch, /etc/feederwatch)")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "Print collected metrics after the command")
	if err := setupFlags(rootCmd, ctx); err != nil {
		// Only reachable when a flag name above is misspelled.
		panic(err)
	}

	// Add sub-commands to the root command.
	versionCmd := version.Command()
	subcommands := []*cobra.Command{
		directory.Command(ctx),
		overlay.Command(ctx),
		color.Command(ctx),
		versionCmd,
	}
	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Skip setup for the version command
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		return initialize(cmd, ctx, configFile)
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if !showMetrics {
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return ctx.Metrics.WriteSummary(cmd.OutOrStdout())
	}

	return rootCmd
}

// initialize is called before any subcommands are run, once flags are parsed.
// It loads configuration, configures the global logger and starts counting
// errors into the metrics registry.
func initialize(cmd *cobra.Command, ctx *conf.Context, configFile string) error {
	if err := ctx.Load(configFile); err != nil {
		return err
	}

	logCfg := ctx.Settings.Logging
	if ctx.Settings.Debug {
		logCfg.Level = "debug"
	}
	logger.SetGlobal(logger.New(logCfg, cmd.ErrOrStderr()))

	ctx.Metrics.CountErrors()

	conf.GetLogger().Debug("Configuration loaded",
		logger.String("status_filter", ctx.Settings.Directory.StatusFilter),
		logger.Duration("cache_ttl", ctx.Settings.Directory.CacheTTL),
		logger.Float64("max_frame_delta", ctx.Settings.Overlay.MaxFrameDelta))
	return nil
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, ctx *conf.Context) error {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("debug", "d", false, "Enable debug output")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")

	bindings := map[string]string{
		"debug":          "debug",
		"logging.level":  "log-level",
		"logging.format": "log-format",
	}
	for key, name := range bindings {
		if err := ctx.BindFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("error binding flags: %w", err)
		}
	}
	return nil
}
