package sequential

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/sw965/omw/mathx/randx"
)

type Policy[M comparable] map[M]float64

func (p Policy[M]) ValidateForLegalMoves(legalMoves []M) error {
	if len(legalMoves) == 0 {
		return ErrNoLegalMoves
	}
	if len(p) != len(legalMoves) {
		return fmt.Errorf("%w: policy=%d legalMoves=%d", ErrPolicySizeMismatch, len(p), len(legalMoves))
	}

	var sum float64
	for i, m := range legalMoves {
		v, ok := p[m]
		if !ok {
			return fmt.Errorf("%w: idx=%d move=%v", ErrPolicyMissingLegalMove, i, m)
		}

		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: idx=%d move=%v value=%v", ErrPolicyBadValue, i, m, v)
		}
		sum += v
	}

	if sum == 0 {
		return ErrPolicyZeroSum
	}
	return nil
}

type PolicyFunc[S any, M comparable] func(S, []M) (Policy[M], error)

func UniformPolicyFunc[S any, M comparable](state S, legalMoves []M) (Policy[M], error) {
	n := len(legalMoves)
	if n == 0 {
		return nil, ErrNoLegalMoves
	}

	p := 1.0 / float64(n)
	policy := Policy[M]{}
	for _, m := range legalMoves {
		policy[m] = p
	}
	return policy, nil
}

// SelectFunc picks one of legalMoves according to policy.
// legalMoves fixes the iteration order so that a seeded rng reproduces the same choice.
//
// SelectFuncはpolicyに従ってlegalMovesから1手を選びます。
// legalMovesの順序で走査する為、同じシードのrngであれば同じ手が選ばれます。
type SelectFunc[M comparable] func(Policy[M], []M, *rand.Rand) (M, error)

// MaxSelectFunc picks uniformly at random among the moves with the highest weight.
//
// MaxSelectFuncは最大の重みを持つ手の中から一様ランダムに選びます。
func MaxSelectFunc[M comparable](policy Policy[M], legalMoves []M, rng *rand.Rand) (M, error) {
	var zero M
	if len(legalMoves) == 0 {
		return zero, ErrNoLegalMoves
	}

	max := policy[legalMoves[0]]
	moves := []M{legalMoves[0]}
	for _, m := range legalMoves[1:] {
		v := policy[m]
		switch {
		case v > max:
			max = v
			moves = []M{m}
		case v == max:
			moves = append(moves, m)
		}
	}
	return randx.Choice(moves, rng)
}

type Actor[S any, M comparable] struct {
	Name       string
	PolicyFunc PolicyFunc[S, M]
	SelectFunc SelectFunc[M]
}

func NewRandomActor[S any, M comparable](name string) Actor[S, M] {
	return Actor[S, M]{
		Name:       name,
		PolicyFunc: UniformPolicyFunc[S, M],
		SelectFunc: MaxSelectFunc[M],
	}
}

func (a Actor[S, M]) Validate() error {
	if a.PolicyFunc == nil {
		return fmt.Errorf("%w: PolicyFunc", ErrNilActorFunc)
	}
	if a.SelectFunc == nil {
		return fmt.Errorf("%w: SelectFunc", ErrNilActorFunc)
	}
	return nil
}
