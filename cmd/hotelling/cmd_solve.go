package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		n       int
		players int
		history []int
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the optimal choices of the next player after a history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mover := len(history)
			set, err := a.solver.Solve(n, players, mover, history)
			if err != nil {
				return err
			}

			expected, err := set.Expected()
			if err != nil {
				return err
			}

			out := a.output(cmd)
			fmt.Fprintf(out, "%s n=%d players=%d mover=%d history=%v\n",
				out.String("solve").Bold(), n, players, mover, history)
			for _, e := range set {
				fmt.Fprintf(out, "  %s  %s\n",
					out.String(fmt.Sprintf("%3d", e.Move())).Foreground(out.Color("2")), formatVector(e.Vector))
			}
			fmt.Fprintf(out, "  optimal=%d probability=%s expected=%s\n",
				len(set), formatProb(set[0].Vector[mover]), formatVector(expected))
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 10, "number of points of the interval")
	cmd.Flags().IntVarP(&players, "players", "p", 3, "number of players")
	cmd.Flags().IntSliceVar(&history, "history", nil, "positions already chosen, in turn order")
	return cmd
}
