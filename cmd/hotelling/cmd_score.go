package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/sw965/hotelling/game/sequential/hotelling"
)

func newScoreCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "score POSITION...",
		Short: "Print the win probabilities of a complete assignment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignment, err := parsePositions(args)
			if err != nil {
				return err
			}

			vector, err := hotelling.Score(assignment, n)
			if err != nil {
				return err
			}

			out := a.output(cmd)
			fmt.Fprintf(out, "%s n=%d assignment=%v\n", out.String("score").Bold(), n, assignment)
			for j, prob := range vector {
				fmt.Fprintf(out, "  player %d  %s\n", j, formatProb(prob))
			}
			fmt.Fprintf(out, "  sum       %s\n", formatProb(vector.Sum()))
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 10, "number of points of the interval")
	return cmd
}

func parsePositions(args []string) ([]int, error) {
	positions := make([]int, len(args))
	for i, arg := range args {
		x, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("position %q: %w", arg, err)
		}
		positions[i] = x
	}
	return positions, nil
}

func formatProb(p float64) string {
	return strconv.FormatFloat(p, 'f', 4, 64)
}

func formatVector(v hotelling.ProbabilityVector) string {
	s := "["
	for i, p := range v {
		if i > 0 {
			s += " "
		}
		s += formatProb(p)
	}
	return s + "]"
}
