package hotelling

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/sw965/hotelling/game/sequential"
	"github.com/sw965/omw/slicesx"
)

// ProbabilityVector holds the win probability of every player, indexed by player.
type ProbabilityVector = sequential.Scores

// Score returns the exact win probabilities of a complete assignment, where
// assignment[j] is the position of player j on {0, ..., n-1}.
//
// Every player wins the part of [0, n-1] strictly closer to its position than
// to any other. Only the rank order, the gaps between rank-adjacent positions
// and the distances of the outermost players to the boundary matter.
//
// Scoreは全プレイヤーの位置が決まった配置の厳密な勝率を返します。
func Score(assignment []int, n int) (ProbabilityVector, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDiscretization, n)
	}

	p := len(assignment)
	if p == 0 {
		return nil, fmt.Errorf("%w: assignment is empty", ErrInvalidPlayerCount)
	}

	for j, x := range assignment {
		if x < 0 || x >= n {
			return nil, fmt.Errorf("%w: player %d at %d is not in [0, %d)", ErrPositionOutOfRange, j, x, n)
		}
	}

	if !slicesx.IsUnique(assignment) {
		return nil, fmt.Errorf("%w: %v", ErrDuplicatePosition, assignment)
	}

	if p == 1 {
		return ProbabilityVector{1.0}, nil
	}

	// ranks[r] は r 番目に小さい位置を選んだプレイヤー
	ranks := make([]int, p)
	for j := range ranks {
		ranks[j] = j
	}
	slices.SortFunc(ranks, func(a, b int) int {
		return cmp.Compare(assignment[a], assignment[b])
	})

	d := float64(n - 1)
	probs := make(ProbabilityVector, p)
	for r, player := range ranks {
		x := assignment[player]
		switch r {
		case 0:
			right := assignment[ranks[1]]
			probs[player] = (float64(x) + float64(right-x)/2) / d
		case p - 1:
			left := assignment[ranks[r-1]]
			probs[player] = (float64(n-1-x) + float64(x-left)/2) / d
		default:
			left := assignment[ranks[r-1]]
			right := assignment[ranks[r+1]]
			probs[player] = float64(right-left) / 2 / d
		}
	}
	return probs, nil
}

// Aggregate returns the component-wise mean of vectors, the expected outcome
// when one of them is chosen uniformly at random.
func Aggregate(vectors []ProbabilityVector) (ProbabilityVector, error) {
	return sequential.MeanScores(vectors)
}
