package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/graph"
	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/maze"
)

// newRootCmd binds flags over cfg, whose current values become the flag defaults.
func newRootCmd(cfg *config.Config, out io.Writer) *cobra.Command {
	var (
		logLevel string
		frontier string
	)

	cmd := &cobra.Command{
		Use:           "mazegen",
		Short:         "Generate a random perfect maze",
		Long:          "Carves a perfect maze with Kruskal's algorithm over random wall weights and\nprints it. With --solve the route from the top-left to the bottom-right room is marked.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("%w: log level %q", config.ErrInvalidConfig, logLevel)
			}
			Level.Set(cfg.LogLevel)

			p, err := config.ParseFrontier(frontier)
			if err != nil {
				return err
			}
			cfg.Frontier = p
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(*cfg, maze.NewKruskalCarver(maze.WithSeed(cfg.Seed)), out)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&cfg.Width, "width", "W", cfg.Width, "number of columns")
	f.IntVarP(&cfg.Height, "height", "H", cfg.Height, "number of rows")
	f.Int64VarP(&cfg.Seed, "seed", "s", cfg.Seed, "random seed (0 selects the default seed)")
	f.BoolVar(&cfg.Solve, "solve", cfg.Solve, "mark the route from entrance to exit")
	f.StringVar(&logLevel, "log-level", cfg.LogLevel.String(), "debug, info, warn or error")
	f.StringVar(&frontier, "frontier", cfg.Frontier.String(), "solver frontier: path-cost or edge-weight")

	return cmd
}

// run carves with c, optionally solves, and renders one maze.
func run(cfg config.Config, c maze.Carver, out io.Writer) error {
	m, err := maze.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	slog.Debug("grid built", "width", cfg.Width, "height", cfg.Height, "walls", len(m.Walls()))

	removed, err := c.WallsToRemove(m)
	if err != nil {
		return err
	}
	slog.Info("maze carved", "seed", cfg.Seed, "removed", len(removed), "kept", len(m.Walls())-len(removed))

	var path []maze.Room
	if cfg.Solve {
		path, err = maze.Solve(m, removed, m.Entrance(), m.Exit(), graph.WithFrontier(cfg.Frontier))
		if err != nil {
			return err
		}
		slog.Info("maze solved", "frontier", cfg.Frontier, "length", len(path))
	}

	return maze.Render(out, m, removed, path)
}
