package sequential

import (
	"fmt"

	"github.com/sw965/omw/parallel"
	"github.com/sw965/omw/slicesx"
)

// Outcome is a move of the current agent, the state it leads to and the
// expected scores of that state.
//
// Outcomeは手番エージェントの手、その手で遷移した状態、その状態の期待スコアの組です。
type Outcome[S any, M comparable] struct {
	Move   M
	State  S
	Scores Scores
}

func OutcomeScores[S any, M comparable](outcomes []Outcome[S, M]) []Scores {
	ss := make([]Scores, len(outcomes))
	for i, o := range outcomes {
		ss[i] = o.Scores
	}
	return ss
}

type SolveConfig struct {
	// Epsilon is the tolerance below the best score within which a move still
	// counts as optimal. 0 means exact equality.
	Epsilon float64

	// Workers is the number of goroutines evaluating the moves of the root
	// state. Values <= 1 evaluate them sequentially.
	Workers int
}

func (c SolveConfig) Validate() error {
	if c.Epsilon < 0 {
		return fmt.Errorf("%w: Epsilon must be >= 0, got %v", ErrInvalidSolveConfig, c.Epsilon)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0, got %d", ErrInvalidSolveConfig, c.Workers)
	}
	return nil
}

// OptimalOutcomes runs backward induction from state and returns every move
// that maximizes the current agent's expected score, in legal move order.
// A non-terminal child is valued by the mean of its own optimal outcomes, which
// is its expected value when the next agent breaks ties uniformly at random.
//
// OptimalOutcomesはstateから後ろ向き帰納法を実行し、手番エージェントの期待スコアを
// 最大化する全ての手を合法手の順に返します。
// 終局でない子局面は、その局面の最適な結果の平均で評価します。これは次の手番の
// エージェントが同値手を一様ランダムに選ぶ場合の期待値です。
func (e Engine[S, M]) OptimalOutcomes(state S, cfg SolveConfig) ([]Outcome[S, M], error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if e.IsEnd(state) {
		return nil, ErrGameEnded
	}

	legalMoves := e.Logic.LegalMovesFunc(state)
	if !slicesx.IsUnique(legalMoves) {
		return nil, ErrNotUniqueLegalMoves
	}
	return e.optimalOutcomes(state, legalMoves, cfg, cfg.Workers)
}

func (e Engine[S, M]) optimalOutcomes(state S, legalMoves []M, cfg SolveConfig, workers int) ([]Outcome[S, M], error) {
	n := len(legalMoves)
	agent := e.Logic.CurrentAgentFunc(state)
	if n == 0 {
		return nil, fmt.Errorf("%w: agent=%d", ErrNoLegalMoves, agent)
	}

	if agent < 0 || agent >= e.AgentsN {
		return nil, fmt.Errorf("%w: agent=%d AgentsN=%d", ErrAgentOutOfRange, agent, e.AgentsN)
	}

	outcomes := make([]Outcome[S, M], n)
	evaluate := func(idx int) error {
		move := legalMoves[idx]
		next, err := e.Logic.MoveFunc(state, move)
		if err != nil {
			return err
		}

		var scores Scores
		if e.IsEnd(next) {
			scores, err = e.EvaluateResultScores(next)
			if err != nil {
				return err
			}
		} else {
			// 子局面の探索は逐次で行う。並列化はルートの手のみ。
			children, err := e.optimalOutcomes(next, e.Logic.LegalMovesFunc(next), cfg, 1)
			if err != nil {
				return err
			}
			scores, err = MeanScores(OutcomeScores(children))
			if err != nil {
				return err
			}
		}

		outcomes[idx] = Outcome[S, M]{Move: move, State: next, Scores: scores}
		return nil
	}

	if workers > 1 {
		err := parallel.For(n, min(workers, n), func(workerId, idx int) error {
			return evaluate(idx)
		})
		if err != nil {
			return nil, err
		}
	} else {
		for idx := range n {
			if err := evaluate(idx); err != nil {
				return nil, err
			}
		}
	}
	return SelectOptimal(outcomes, agent, cfg.Epsilon), nil
}

// SelectOptimal keeps the outcomes whose score for agent is within epsilon of
// the best one. With epsilon == 0 only exact ties with the best are kept.
//
// SelectOptimalはagentのスコアが最大値からepsilon以内の結果のみを残します。
func SelectOptimal[S any, M comparable](outcomes []Outcome[S, M], agent int, epsilon float64) []Outcome[S, M] {
	if len(outcomes) == 0 {
		return nil
	}

	best := outcomes[0].Scores[agent]
	for _, o := range outcomes[1:] {
		if v := o.Scores[agent]; v > best {
			best = v
		}
	}

	optimal := make([]Outcome[S, M], 0, len(outcomes))
	for _, o := range outcomes {
		if best-o.Scores[agent] <= epsilon {
			optimal = append(optimal, o)
		}
	}
	return optimal
}
