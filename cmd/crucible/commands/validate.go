package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/internal/app"
	"github.com/katalvlaran/crucible/momentum"
)

func newValidateCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [grid-file]",
		Short: "Check the configuration and, if given, the grid",
		Long: `Check the configuration file. When a grid is available (argument or
config 'grid'), also parse it and check every search's endpoints against it.`,
		Example: `  # Check a config file
  crucible validate -c crucible.yaml

  # Check a config file and a grid
  crucible validate -c crucible.yaml input.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && g.cfg.Grid == "" {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "config ok: %d searches\n", len(g.cfg.Searches))
				return err
			}
			grid, path, err := loadGrid(args, g.cfg.Grid, cmd.InOrStdin())
			if err != nil {
				return err
			}
			for _, s := range g.cfg.Searches {
				if _, err := momentum.NewSearcher(grid, app.Options(s)...); err != nil {
					return fmt.Errorf("search %q: %w", s.Name, err)
				}
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "config ok: %d searches; grid %s: %dx%d\n",
				len(g.cfg.Searches), path, grid.Width(), grid.Height())

			return err
		},
	}
}
