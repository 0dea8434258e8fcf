package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coalitions/coalition"
	"github.com/katalvlaran/coalitions/parliament"
	"github.com/katalvlaran/coalitions/render"
)

// evalFlags are the evaluation switches shared by evaluate and plot.
type evalFlags struct {
	scenario    string
	maximal     bool
	valid       bool
	membersOnly bool
	top         int
}

func (f *evalFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.scenario, "scenario", "s", "", "scenario file (YAML)")
	cmd.Flags().BoolVar(&f.maximal, "maximal", false, "enumerate maximal cliques only")
	cmd.Flags().BoolVar(&f.valid, "valid", false, "keep coalitions that reach the majority only")
	cmd.Flags().BoolVar(&f.membersOnly, "members-only", false, "look for necessary parties among members only")
	cmd.Flags().IntVar(&f.top, "top", 0, "show at most N coalitions (0 = all)")
}

// apply lets explicitly set flags override the configuration.
func (f *evalFlags) apply(cmd *cobra.Command, a *app) {
	if cmd.Flags().Changed("maximal") {
		a.cfg.Evaluate.OnlyMaximal = f.maximal
	}
	if cmd.Flags().Changed("valid") {
		a.cfg.Evaluate.OnlyValid = f.valid
	}
	if cmd.Flags().Changed("members-only") {
		a.cfg.Evaluate.MembersOnly = f.membersOnly
	}
}

// evaluate loads the scenario and ranks its coalitions, trimmed to --top.
func (f *evalFlags) evaluate(cmd *cobra.Command, a *app) (*parliament.Scenario, *coalition.Table, error) {
	f.apply(cmd, a)
	sc, err := a.loadScenario(f.scenario)
	if err != nil {
		return nil, nil, err
	}
	tbl, err := coalition.Evaluate(sc.Partners, sc.Seats, a.cfg.EvaluateOptions(a.cfg.Threshold(sc), a.log)...)
	if err != nil {
		return nil, nil, err
	}
	a.log.Info("coalitions ranked", "records", tbl.Len(), "valid", len(tbl.Valid()))
	if f.top > 0 && f.top < tbl.Len() {
		tbl.Records = tbl.Top(f.top)
	}

	return sc, tbl, nil
}

func newEvaluateCmd(a *app) *cobra.Command {
	f := &evalFlags{}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Print the ranked coalition table",
		Long: `Evaluate enumerates cliques of the compatibility graph, values them by
seats and prints them largest first, with the necessary parties of each
coalition and whether those parties alone reach the majority.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, tbl, err := f.evaluate(cmd, a)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if tbl.Empty() {
				fmt.Fprintf(out, "No coalition reaches %d seats.\n", tbl.Majority)
				return nil
			}
			fmt.Fprintln(out, render.Table(tbl))
			return nil
		},
	}
	f.register(cmd)

	return cmd
}
