package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/pathfinder"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	var cfgFile string
	var verbose bool

	cmd := &cobra.Command{
		Use:           "gridpath",
		Short:         "Find a route across an obstacle grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd, cfg, verbose)
		},
	}

	d := config.Default()
	f := cmd.Flags()
	f.Int(config.KeyWidth, d.Width, "grid width in cells (5-100)")
	f.Int(config.KeyHeight, d.Height, "grid height in cells (5-100)")
	f.StringP(config.KeyAlgorithm, "a", d.Algorithm.String(), "bfs, dfs, dijkstra, astar, greedy or bellmanford")
	f.String(config.KeyDensity, d.Density.String(), "obstacle density: low, medium or high")
	f.Bool(config.KeyObstacles, d.Obstacles, "generate random obstacles")
	f.String(config.KeyStart, "", "start cell as x,y (random when empty)")
	f.String(config.KeyEnd, "", "end cell as x,y (random when empty)")
	f.Int64(config.KeySeed, d.Seed, "random seed, 0 for a clock seed")
	f.StringP(config.KeyMap, "m", "", "read the grid from a text layout file")
	f.Bool(config.KeyTUI, d.TUI, "draw on the terminal screen")
	f.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	f.BoolVarP(&verbose, "verbose", "v", false, "log run details")

	for _, key := range []string{
		config.KeyWidth, config.KeyHeight, config.KeyAlgorithm, config.KeyDensity,
		config.KeyObstacles, config.KeyStart, config.KeyEnd, config.KeySeed,
		config.KeyMap, config.KeyTUI,
	} {
		if err := v.BindPFlag(key, f.Lookup(key)); err != nil {
			panic(err)
		}
	}

	cmd.AddCommand(newAlgorithmsCmd())

	return cmd
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available search algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			for _, a := range search.Algorithms() {
				optimal := ""
				if a.Optimal() {
					optimal = " (shortest)"
				}
				fmt.Fprintf(w, "%-16s %s%s\n", a, a.Name(), optimal)
			}
		},
	}
}

// run solves cfg and renders the outcome.
func run(cmd *cobra.Command, cfg config.Config, verbose bool) error {
	out, err := pathfinder.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if verbose {
		start, _ := out.Grid.Start()
		end, _ := out.Grid.End()
		log.Printf("seed %d, %dx%d grid, %d obstacles (%d clustered), %s → %s",
			out.Seed, out.Grid.Width(), out.Grid.Height(),
			out.Obstacles.Total(), out.Obstacles.Clustered, start, end)
	}

	if cfg.TUI {
		err = drawScreen(out)
		if !errors.Is(err, render.ErrScreenTooSmall) {
			return err
		}
		log.Printf("%v; falling back to text", err)
	}

	return render.Text(cmd.OutOrStdout(), out.Grid, &out.Result)
}

func drawScreen(out *pathfinder.Outcome) error {
	sc, err := render.NewScreen(nil)
	if err != nil {
		return err
	}
	defer sc.Close()

	if err = sc.Draw(out.Grid, &out.Result); err != nil {
		return err
	}
	sc.Wait()

	return nil
}
