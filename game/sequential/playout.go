package sequential

import (
	"math/rand/v2"

	"github.com/sw965/omw/parallel"
)

// Playouts plays every initial state to the end with actor.
// Games are distributed over len(rngs) workers and each worker uses its own rng.
//
// Playoutsは全ての初期状態をactorで終局まで進めます。
// len(rngs)個のワーカーに分配し、各ワーカーは自身のrngを使います。
func (e Engine[S, M]) Playouts(inits []S, actor Actor[S, M], rngs []*rand.Rand) ([]S, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := actor.Validate(); err != nil {
		return nil, err
	}

	p := len(rngs)
	if p == 0 {
		return nil, ErrRngsEmpty
	}

	n := len(inits)
	finals := make([]S, n)

	err := parallel.For(n, p, func(workerId, idx int) error {
		rng := rngs[workerId]
		state := inits[idx]
		for !e.IsEnd(state) {
			legalMoves := e.Logic.LegalMovesFunc(state)
			// policy.ValidateForLegalMovesでも空チェックをするが、PolicyFuncを安全に呼ぶ為に、ここでもチェックする
			if len(legalMoves) == 0 {
				return ErrNoLegalMoves
			}

			policy, err := actor.PolicyFunc(state, legalMoves)
			if err != nil {
				return err
			}

			if err := policy.ValidateForLegalMoves(legalMoves); err != nil {
				return err
			}

			move, err := actor.SelectFunc(policy, legalMoves, rng)
			if err != nil {
				return err
			}

			state, err = e.Logic.MoveFunc(state, move)
			if err != nil {
				return err
			}
		}
		finals[idx] = state
		return nil
	})
	return finals, err
}

// AverageScores returns the mean result scores of finished states.
//
// AverageScoresは終局状態の結果スコアの平均を返します。
func (e Engine[S, M]) AverageScores(finals []S) (Scores, error) {
	ss := make([]Scores, len(finals))
	for i, final := range finals {
		scores, err := e.EvaluateResultScores(final)
		if err != nil {
			return nil, err
		}
		ss[i] = scores
	}
	return MeanScores(ss)
}
