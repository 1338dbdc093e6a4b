package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		n       int
		players int
		games   int
		seed    uint64
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play sampled equilibrium games and compare with the exact expectation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			empirical, err := a.solver.Simulate(n, players, games, seed)
			if err != nil {
				return err
			}

			set, err := a.solver.Solve(n, players, 0, nil)
			if err != nil {
				return err
			}

			exact, err := set.Expected()
			if err != nil {
				return err
			}

			out := a.output(cmd)
			fmt.Fprintf(out, "%s n=%d players=%d games=%d seed=%d\n",
				out.String("simulate").Bold(), n, players, games, seed)
			fmt.Fprintf(out, "  empirical %s\n", formatVector(empirical))
			fmt.Fprintf(out, "  exact     %s\n", formatVector(exact))
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 10, "number of points of the interval")
	cmd.Flags().IntVarP(&players, "players", "p", 3, "number of players")
	cmd.Flags().IntVar(&games, "games", 1000, "number of sampled games")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	return cmd
}
