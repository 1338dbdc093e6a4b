// Package sweep estimates the continuous-limit answer of the Hotelling game by
// solving the first move over a range of discretizations and taking medians.
//
// Package sweep は複数の離散化で最初の手を解き、中央値をとることで
// ホテリングゲームの連続極限での解を推定します。
package sweep

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/sw965/hotelling/game/sequential/hotelling"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

var ErrInvalidRange = errors.New("invalid sweep range")

type Config struct {
	Players int
	// From and To bound the discretizations, both inclusive.
	From int
	To   int
	Step int
	// Concurrency bounds how many discretizations are solved at once. Values <= 0 mean no bound.
	Concurrency int
	Logger      zerolog.Logger
}

func (c Config) Validate() error {
	if c.Players < 1 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidRange, hotelling.ErrInvalidPlayerCount, c.Players)
	}
	if c.From < 2 {
		return fmt.Errorf("%w: From must be >= 2, got %d", ErrInvalidRange, c.From)
	}
	if c.To < c.From {
		return fmt.Errorf("%w: To (%d) must be >= From (%d)", ErrInvalidRange, c.To, c.From)
	}
	if c.Step < 1 {
		return fmt.Errorf("%w: Step must be >= 1, got %d", ErrInvalidRange, c.Step)
	}
	return nil
}

func (c Config) Discretizations() []int {
	ns := make([]int, 0, (c.To-c.From)/max(c.Step, 1)+1)
	for n := c.From; n <= c.To; n += c.Step {
		ns = append(ns, n)
	}
	return ns
}

// Point is the estimate for one discretization.
type Point struct {
	N int
	// Moves are the optimal first positions.
	Moves []int
	// Fraction is the median of Moves, each divided by n-1.
	Fraction float64
	// WinProbability is the median of the first player's win probabilities.
	WinProbability float64
}

type Result struct {
	Points         []Point
	Fraction       float64
	WinProbability float64
}

// Median returns the middle value of xs, or the mean of the two middle values
// when len(xs) is even. It does not modify xs.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	m := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[m]
	}
	return stat.Mean(sorted[m-1:m+1], nil)
}

func NewPoint(n int, set hotelling.OptimalSet) Point {
	moves := set.Moves()
	fractions := make([]float64, len(set))
	probs := make([]float64, len(set))
	for k, e := range set {
		fractions[k] = float64(e.Move()) / float64(n-1)
		probs[k] = e.Vector[0]
	}
	return Point{
		N:              n,
		Moves:          moves,
		Fraction:       Median(fractions),
		WinProbability: Median(probs),
	}
}

// Run solves Solve(n, cfg.Players, 0, nil) for every discretization of cfg and
// aggregates the per-n medians into their median across n.
// Points are returned in ascending order of n.
func Run(ctx context.Context, solver *hotelling.Solver, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	ns := cfg.Discretizations()
	points := make([]Point, len(ns))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}

	for idx, n := range ns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			set, err := solver.Solve(n, cfg.Players, 0, nil)
			if err != nil {
				return err
			}

			points[idx] = NewPoint(n, set)
			cfg.Logger.Info().
				Int("n", n).
				Ints("moves", points[idx].Moves).
				Float64("fraction", points[idx].Fraction).
				Float64("probability", points[idx].WinProbability).
				Msg("discretization solved")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	fractions := make([]float64, len(points))
	probs := make([]float64, len(points))
	for k, pt := range points {
		fractions[k] = pt.Fraction
		probs[k] = pt.WinProbability
	}

	return Result{
		Points:         points,
		Fraction:       Median(fractions),
		WinProbability: Median(probs),
	}, nil
}
