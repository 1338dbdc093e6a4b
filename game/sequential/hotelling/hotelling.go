// Package hotelling solves the sequential Hotelling location game on a
// discretized interval. Players pick distinct points of {0, ..., n-1} in turn
// and each wins the share of [0, n-1] that is closer to its point than to any
// other. Solve finds every equilibrium choice of the player to move, where later
// players break ties uniformly at random.
//
// Package hotelling は離散化した区間上の逐次ホテリング立地ゲームを解きます。
// プレイヤーは順番に {0, ..., n-1} から互いに異なる点を選び、自分の点が他の誰の点よりも
// 近い区間の割合を獲得します。Solveは、後続のプレイヤーが同値手を一様ランダムに選ぶ
// 前提で、手番プレイヤーの均衡手を全て求めます。
package hotelling

import (
	"errors"
	"fmt"

	"github.com/sw965/omw/slicesx"
)

var (
	ErrInvalidDiscretization = errors.New("invalid discretization: n must be >= 1")
	ErrInvalidPlayerCount    = errors.New("invalid player count")
	ErrInvalidHistory        = errors.New("invalid history")
	ErrDuplicatePosition     = errors.New("duplicate position")
	ErrPositionOutOfRange    = errors.New("position out of range")
	ErrNoCandidates          = errors.New("no candidates")
	ErrInvalidSolver         = errors.New("invalid solver")
	ErrInvalidGameCount      = errors.New("invalid game count: must be >= 1")
)

// validateProblem checks the preconditions of a solve call: n >= 1, p >= 1,
// 0 <= i < p and a history of exactly i distinct positions inside [0, n-1].
func validateProblem(n, p, i int, history []int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDiscretization, n)
	}

	if p < 1 {
		return fmt.Errorf("%w: p must be >= 1, got %d", ErrInvalidPlayerCount, p)
	}

	if i < 0 || i >= p {
		return fmt.Errorf("%w: player %d is not in [0, %d)", ErrInvalidPlayerCount, i, p)
	}

	if len(history) != i {
		return fmt.Errorf("%w: length must be %d, got %d", ErrInvalidHistory, i, len(history))
	}

	for j, x := range history {
		if x < 0 || x >= n {
			return fmt.Errorf("%w: history[%d]=%d is not in [0, %d)", ErrInvalidHistory, j, x, n)
		}
	}

	if !slicesx.IsUnique(history) {
		return fmt.Errorf("%w: entries must be distinct, got %v", ErrInvalidHistory, history)
	}
	return nil
}
