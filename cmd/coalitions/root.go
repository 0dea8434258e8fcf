package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/coalitions/config"
	"github.com/katalvlaran/coalitions/logging"
	"github.com/katalvlaran/coalitions/network"
	"github.com/katalvlaran/coalitions/parliament"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	v        *viper.Viper
	cfgFile  string
	logLevel string

	cfg *config.Config
	log *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "coalitions",
		Short: "Rank possible governing coalitions of a parliament",
		Long: `Coalitions reads a scenario (seat table plus the partners each party is
willing to govern with), enumerates the cliques of the resulting
compatibility graph and ranks them by seats. For every coalition it reports
the parties it cannot lose and whether those parties alone hold a majority.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newEvaluateCmd(a),
		newNetworkCmd(a),
		newPlotCmd(a),
	)

	return root
}

// setup loads configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if errs := cfg.Validate(); len(errs) > 0 {
			return config.ValidationErrors(errs)
		}
	}
	a.cfg = cfg
	a.log = logging.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	return nil
}

// loadScenario reads and validates the scenario file.
func (a *app) loadScenario(path string) (*parliament.Scenario, error) {
	if path == "" {
		return nil, fmt.Errorf("--scenario is required")
	}
	sc, err := parliament.LoadScenario(path)
	if err != nil {
		return nil, err
	}
	if a.cfg.Parliament.Legislature > 0 {
		sc.Legislature = a.cfg.Parliament.Legislature
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	a.log = a.log.WithScenario(sc.Name)
	a.log.Info("scenario loaded",
		"parties", len(sc.Seats),
		"seats", sc.Seats.Total(),
		"majority", a.cfg.Threshold(sc),
	)

	return sc, nil
}

// seatGraph builds the seat-labelled compatibility graph used by figures.
func seatGraph(sc *parliament.Scenario) (*network.Graph, error) {
	return network.FromPartners(sc.Partners, network.WithSeatLabels(sc.Seats))
}

// writeFile creates path and hands it to write, closing it afterwards.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return write(f)
}
