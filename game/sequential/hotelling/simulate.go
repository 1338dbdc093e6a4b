package hotelling

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/sw965/hotelling/game/sequential"
)

// NewEquilibriumActor returns an actor that gives weight 1 to each optimal
// position of the mover and 0 to the others. Combined with
// sequential.MaxSelectFunc it plays the equilibrium with uniform random
// tie-breaks. Optimal sets are cached per history.
//
// NewEquilibriumActorは手番プレイヤーの最適な位置に重み1、それ以外に0を与えるactorを返します。
func NewEquilibriumActor(solver *Solver) sequential.Actor[State, int] {
	// プレイアウト中はゲーム単位で並列化する為、局面毎の探索は逐次で行う
	inner := *solver
	inner.Workers = 1

	var cache sync.Map
	policyFunc := func(state State, legalMoves []int) (sequential.Policy[int], error) {
		key := fmt.Sprint(state.N, state.Players, state.History)
		var moves []int
		if v, ok := cache.Load(key); ok {
			moves = v.([]int)
		} else {
			set, err := inner.Solve(state.N, state.Players, state.Mover(), state.History)
			if err != nil {
				return nil, err
			}
			moves = set.Moves()
			cache.Store(key, moves)
		}

		policy := sequential.Policy[int]{}
		for _, m := range legalMoves {
			policy[m] = 0.0
		}
		for _, m := range moves {
			policy[m] = 1.0
		}
		return policy, nil
	}

	return sequential.Actor[State, int]{
		Name:       "equilibrium",
		PolicyFunc: policyFunc,
		SelectFunc: sequential.MaxSelectFunc[int],
	}
}

// Simulate plays games full games where every player follows the equilibrium
// and picks uniformly at random among its optimal positions, and returns the
// empirical mean of the win probabilities. It converges to the Expected vector
// of Solve(n, p, 0, nil).
//
// Simulateは全プレイヤーが均衡に従い、最適な位置の中から一様ランダムに選ぶゲームを
// games回行い、勝率の経験平均を返します。
func (s *Solver) Simulate(n, p, games int, seed uint64) (ProbabilityVector, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if err := validateProblem(n, p, 0, nil); err != nil {
		return nil, err
	}

	if games < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGameCount, games)
	}

	workers := max(s.Workers, 1)
	rngs := make([]*rand.Rand, workers)
	for w := range rngs {
		rngs[w] = rand.New(rand.NewPCG(seed, uint64(w)))
	}

	inits := make([]State, games)
	for g := range inits {
		inits[g] = NewInitState(n, p)
	}

	engine := s.engine(p)
	finals, err := engine.Playouts(inits, NewEquilibriumActor(s), rngs)
	if err != nil {
		if errors.Is(err, sequential.ErrNoLegalMoves) && !errors.Is(err, ErrNoCandidates) {
			return nil, fmt.Errorf("%w: n=%d p=%d: %w", ErrNoCandidates, n, p, err)
		}
		return nil, err
	}

	mean, err := engine.AverageScores(finals)
	if err != nil {
		return nil, err
	}

	s.Logger.Debug().
		Int("n", n).
		Int("players", p).
		Int("games", games).
		Floats64("mean", mean).
		Msg("simulated")
	return mean, nil
}
