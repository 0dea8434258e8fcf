package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coalitions/layout"
	"github.com/katalvlaran/coalitions/render"
)

func newPlotCmd(a *app) *cobra.Command {
	f := &evalFlags{}
	var out string
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw one colour-coded network per coalition",
		Long: `Plot evaluates the scenario and draws one subplot per coalition on a
shared layout: necessary parties green, other members yellow (necessary
parties fall short) or orange (necessary parties suffice), everyone else
red.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			sc, tbl, err := f.evaluate(cmd, a)
			if err != nil {
				return err
			}
			if tbl.Empty() {
				return fmt.Errorf("%w: none reaches %d seats", render.ErrNoCoalitions, tbl.Majority)
			}
			g, err := seatGraph(sc)
			if err != nil {
				return err
			}

			opts := a.cfg.RenderOptions()
			if ff, err := render.FormatFromPath(out); err == nil {
				opts = append(opts, render.WithFormat(ff))
			}

			pos, err := layout.ForceDirected(g, a.cfg.LayoutOptions()...)
			if err != nil {
				return err
			}
			a.log.Info("rendering coalitions", "out", out, "subplots", tbl.Len())
			return writeFile(out, func(w io.Writer) error {
				return render.PlotCoalitions(w, g, tbl, sc.Seats, pos, opts...)
			})
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.png or .svg)")

	return cmd
}
