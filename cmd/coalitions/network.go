package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coalitions/bfs"
	"github.com/katalvlaran/coalitions/layout"
	"github.com/katalvlaran/coalitions/render"
)

func newNetworkCmd(a *app) *cobra.Command {
	var (
		scenario string
		out      string
		asDOT    bool
	)
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Draw the compatibility network and list its blocs",
		Long: `Network draws every party of the scenario with a node area proportional
to its seats and an edge to each partner. The figure format follows the
--out extension (png or svg); --dot writes Graphviz instead. Connected
blocs of mutually reachable parties are printed to stdout.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := a.loadScenario(scenario)
			if err != nil {
				return err
			}
			g, err := seatGraph(sc)
			if err != nil {
				return err
			}

			blocs, err := bfs.Components(g)
			if err != nil {
				return err
			}
			for i, bloc := range blocs {
				fmt.Fprintf(cmd.OutOrStdout(), "bloc %d: %s (%d seats)\n", i+1, strings.Join(bloc, ", "), sc.Seats.Sum(bloc))
			}

			if out == "" {
				return nil
			}
			if asDOT {
				b, err := render.DOT(g, sc.Seats, nil)
				if err != nil {
					return err
				}
				return writeFile(out, func(w io.Writer) error {
					_, err := w.Write(b)
					return err
				})
			}

			opts := a.cfg.RenderOptions()
			if f, err := render.FormatFromPath(out); err == nil {
				opts = append(opts, render.WithFormat(f))
			}
			opts = append(opts, render.WithTitle(sc.Name))

			pos, err := layout.ForceDirected(g, a.cfg.LayoutOptions()...)
			if err != nil {
				return err
			}
			a.log.Info("rendering network", "out", out)
			return writeFile(out, func(w io.Writer) error {
				return render.PlotNetwork(w, g, sc.Seats, pos, opts...)
			})
		},
	}
	cmd.Flags().StringVarP(&scenario, "scenario", "s", "", "scenario file (YAML)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.png, .svg, or any name with --dot)")
	cmd.Flags().BoolVar(&asDOT, "dot", false, "write Graphviz DOT instead of an image")

	return cmd
}
