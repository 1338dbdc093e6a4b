package sequential

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Scores holds one value per agent, indexed by agent.
//
// Scoresはエージェント毎の値を、エージェントのインデックス順に保持します。
type Scores []float64

func (s Scores) Clone() Scores {
	c := make(Scores, len(s))
	copy(c, s)
	return c
}

func (s Scores) Sum() float64 {
	return floats.Sum(s)
}

// MeanScores returns the component-wise arithmetic mean of ss.
// It is the expected score vector when one of ss is drawn uniformly at random.
//
// MeanScoresはssの要素毎の算術平均を返します。
// ssの中から一様ランダムに1つ選ばれる場合の期待スコアに相当します。
func MeanScores(ss []Scores) (Scores, error) {
	k := len(ss)
	if k == 0 {
		return nil, ErrEmptyScores
	}

	n := len(ss[0])
	mean := ss[0].Clone()
	for i, s := range ss[1:] {
		if len(s) != n {
			return nil, fmt.Errorf("%w: idx=%d want=%d got=%d", ErrScoresLengthMismatch, i+1, n, len(s))
		}
		floats.Add(mean, s)
	}
	floats.Scale(1.0/float64(k), mean)
	return mean, nil
}
