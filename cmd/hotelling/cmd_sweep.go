package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sw965/hotelling/game/sequential/hotelling/sweep"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		players     int
		from        int
		to          int
		step        int
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Estimate the first player's optimal fraction over a range of discretizations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.SweepConfig()
			flags := cmd.Flags()
			if flags.Changed("players") {
				cfg.Players = players
			}
			if flags.Changed("from") {
				cfg.From = from
			}
			if flags.Changed("to") {
				cfg.To = to
			}
			if flags.Changed("step") {
				cfg.Step = step
			}
			if flags.Changed("concurrency") {
				cfg.Concurrency = concurrency
			}
			cfg.Logger = a.log

			result, err := sweep.Run(cmd.Context(), a.solver, cfg)
			if err != nil {
				return err
			}

			out := a.output(cmd)
			fmt.Fprintf(out, "%s players=%d n=[%d, %d] step=%d\n",
				out.String("sweep").Bold(), cfg.Players, cfg.From, cfg.To, cfg.Step)
			for _, pt := range result.Points {
				fmt.Fprintf(out, "  n=%-4d moves=%v fraction=%s probability=%s\n",
					pt.N, pt.Moves, formatProb(pt.Fraction), formatProb(pt.WinProbability))
			}
			fmt.Fprintf(out, "  median fraction=%s probability=%s\n",
				out.String(formatProb(result.Fraction)).Foreground(out.Color("2")),
				out.String(formatProb(result.WinProbability)).Foreground(out.Color("2")))
			return nil
		},
	}
	cmd.Flags().IntVarP(&players, "players", "p", 3, "number of players")
	cmd.Flags().IntVar(&from, "from", 20, "smallest discretization")
	cmd.Flags().IntVar(&to, "to", 60, "largest discretization")
	cmd.Flags().IntVar(&step, "step", 1, "discretization step")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "discretizations solved at once (0 = unbounded)")
	return cmd
}
