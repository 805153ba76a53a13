package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/internal/config"
	"github.com/katalvlaran/crucible/internal/telemetry"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	configPath string
	logLevel   string
	logFormat  string
	jsonOutput bool

	cfg *config.Config
	log zerolog.Logger
}

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}

	return err
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	g := &globals{}
	rootCmd := &cobra.Command{
		Use:   "crucible",
		Short: "Momentum-constrained minimum-cost routes over digit grids",
		Long: `crucible finds the cheapest route across a grid of per-cell costs when
movement has momentum: a route may not go straight for more than max-run
cells, and may not turn or stop before min-run cells.

Grids are text files with one digit (0-9) per cell and one row per line.
Without a config file two searches run: part1 (runs 0..3) and part2 (runs 4..10).`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().BoolVar(&g.jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(newSolveCommand(g))
	rootCmd.AddCommand(newBaselineCommand(g))
	rootCmd.AddCommand(newValidateCommand(g))

	return rootCmd
}

// setup loads the configuration and builds the logger. Flags given on the
// command line win over the config file.
func (g *globals) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if g.configPath != "" {
		loaded, err := config.Load(g.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") || g.configPath == "" {
		cfg.Logging.Level = g.logLevel
	}
	if flags.Changed("log-format") || g.configPath == "" {
		cfg.Logging.Format = g.logFormat
	}

	log, err := telemetry.NewLogger(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.log = log

	return nil
}
