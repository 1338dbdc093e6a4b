package hotelling

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/sw965/hotelling/game/sequential"
)

// Entry is a candidate of the mover: the history extended by its choice and the
// resulting expected win probabilities.
type Entry struct {
	History []int
	Vector  ProbabilityVector
}

// Move returns the position chosen by the mover of the entry.
func (e Entry) Move() int {
	return e.History[len(e.History)-1]
}

// OptimalSet holds the optimal entries of one solve call in ascending order of
// the mover's position.
type OptimalSet []Entry

func (s OptimalSet) Moves() []int {
	moves := make([]int, len(s))
	for i, e := range s {
		moves[i] = e.Move()
	}
	return moves
}

func (s OptimalSet) Vectors() []ProbabilityVector {
	vs := make([]ProbabilityVector, len(s))
	for i, e := range s {
		vs[i] = e.Vector
	}
	return vs
}

// Lookup returns the vector of the entry whose extended history equals history.
func (s OptimalSet) Lookup(history []int) (ProbabilityVector, bool) {
	for _, e := range s {
		if slices.Equal(e.History, history) {
			return e.Vector, true
		}
	}
	return nil, false
}

// Expected returns the outcome when the mover picks one of the entries
// uniformly at random.
func (s OptimalSet) Expected() (ProbabilityVector, error) {
	return Aggregate(s.Vectors())
}

// Solver finds the optimal choices of a mover given the earlier choices.
// The zero value searches sequentially, with exact ties and root pruning.
//
// Solverは、それまでの選択を前提に手番プレイヤーの最適な選択を求めます。
// ゼロ値は逐次探索・厳密な同値判定・ルートの対称性による枝刈りを行います。
type Solver struct {
	// Epsilon widens ties: a candidate is optimal when the mover's probability is
	// within Epsilon of the best. 0 requires exact floating point equality.
	Epsilon float64

	// Workers is the number of goroutines evaluating the mover's candidates.
	Workers int

	// DisableSymmetryPruning makes the first player search [0, n) instead of [0, n/2).
	DisableSymmetryPruning bool

	Logger zerolog.Logger
}

func NewSolver() *Solver {
	return &Solver{
		Workers: 1,
		Logger:  zerolog.Nop(),
	}
}

func (s *Solver) Validate() error {
	if s.Epsilon < 0 {
		return fmt.Errorf("%w: Epsilon must be >= 0, got %v", ErrInvalidSolver, s.Epsilon)
	}
	if s.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0, got %d", ErrInvalidSolver, s.Workers)
	}
	return nil
}

func (s *Solver) symmetryPruning() bool {
	return !s.DisableSymmetryPruning
}

func (s *Solver) engine(p int) sequential.Engine[State, int] {
	return NewEngine(p, s.symmetryPruning())
}

// Solve returns the choices of player i maximizing its expected win probability
// after the earlier players chose history, on {0, ..., n-1} with p players.
//
// Every later player is assumed to play the same way and to pick uniformly at
// random among its own optimal choices, so a candidate is valued by the mean of
// the next player's optimal vectors. The last player's vectors come straight
// from Score.
func (s *Solver) Solve(n, p, i int, history []int) (OptimalSet, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if err := validateProblem(n, p, i, history); err != nil {
		return nil, err
	}

	state := State{N: n, Players: p, History: slices.Clone(history)}
	cfg := sequential.SolveConfig{Epsilon: s.Epsilon, Workers: s.Workers}
	outcomes, err := s.engine(p).OptimalOutcomes(state, cfg)
	if err != nil {
		if errors.Is(err, sequential.ErrNoLegalMoves) {
			return nil, fmt.Errorf("%w: n=%d p=%d i=%d history=%v: %w", ErrNoCandidates, n, p, i, history, err)
		}
		return nil, err
	}

	set := make(OptimalSet, len(outcomes))
	for k, o := range outcomes {
		set[k] = Entry{History: o.State.History, Vector: o.Scores}
	}

	s.Logger.Debug().
		Int("n", n).
		Int("players", p).
		Int("mover", i).
		Ints("history", history).
		Ints("optimal", set.Moves()).
		Float64("probability", set[0].Vector[i]).
		Msg("solved")
	return set, nil
}

// Solve runs a default Solver.
func Solve(n, p, i int, history []int) (OptimalSet, error) {
	return NewSolver().Solve(n, p, i, history)
}
