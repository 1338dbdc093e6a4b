package main

import (
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/sw965/hotelling/game/sequential/hotelling"
	"github.com/sw965/hotelling/internal/config"
	"github.com/sw965/hotelling/internal/logger"
)

// app holds the state shared by the subcommands after the root pre-run.
type app struct {
	configPath string
	logLevel   string
	epsilon    float64
	workers    int
	noSymmetry bool
	noColor    bool

	cfg    config.Config
	solver *hotelling.Solver
	log    zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "hotelling",
		Short:         "Solve the sequential Hotelling location game on a discretized interval",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.Float64Var(&a.epsilon, "epsilon", 0, "tie tolerance for optimal choices (0 = exact)")
	flags.IntVar(&a.workers, "workers", 1, "goroutines evaluating the mover's candidates")
	flags.BoolVar(&a.noSymmetry, "no-symmetry", false, "search the full domain for the first player")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newScoreCmd(a),
		newSolveCmd(a),
		newSweepCmd(a),
		newSimulateCmd(a),
	)
	return rootCmd
}

// setup loads the config file, applies the flags that were set explicitly and
// builds the logger and the solver.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("epsilon") {
		cfg.Solver.Epsilon = a.epsilon
	}
	if flags.Changed("workers") {
		cfg.Solver.Workers = a.workers
	}
	if flags.Changed("no-symmetry") {
		cfg.Solver.SymmetryPruning = !a.noSymmetry
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.Init(cfg.Log.Level, cmd.ErrOrStderr(), a.noColor)

	a.solver = hotelling.NewSolver()
	cfg.ApplySolver(a.solver)
	a.solver.Logger = a.log
	return nil
}

func (a *app) output(cmd *cobra.Command) *termenv.Output {
	if a.noColor {
		return termenv.NewOutput(cmd.OutOrStdout(), termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(cmd.OutOrStdout())
}
