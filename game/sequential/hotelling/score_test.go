package hotelling_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/sw965/hotelling/game/sequential/hotelling"
)

func approxEqual(a, b hotelling.ProbabilityVector, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		assignment []int
		n          int
		want       hotelling.ProbabilityVector
		wantErrIs  error
	}{
		{
			name:       "正常_4人",
			assignment: []int{6, 2, 7, 4},
			n:          10,
			want:       hotelling.ProbabilityVector{1.5 / 9, 3.0 / 9, 2.5 / 9, 2.0 / 9},
		},
		{
			name:       "正常_1人",
			assignment: []int{3},
			n:          5,
			want:       hotelling.ProbabilityVector{1.0},
		},
		{
			name:       "正常_2人_対称",
			assignment: []int{1, 3},
			n:          5,
			want:       hotelling.ProbabilityVector{0.5, 0.5},
		},
		{
			name:       "正常_境界値_両端",
			assignment: []int{9, 0},
			n:          10,
			want:       hotelling.ProbabilityVector{0.5, 0.5},
		},
		{
			name:       "正常_隣接",
			assignment: []int{0, 1, 2},
			n:          4,
			want:       hotelling.ProbabilityVector{0.5 / 3, 1.0 / 3, 1.5 / 3},
		},
		{
			name:       "異常_n不正",
			assignment: []int{0},
			n:          0,
			wantErrIs:  hotelling.ErrInvalidDiscretization,
		},
		{
			name:       "異常_空の配置",
			assignment: []int{},
			n:          10,
			wantErrIs:  hotelling.ErrInvalidPlayerCount,
		},
		{
			name:       "異常_位置の重複",
			assignment: []int{4, 2, 4},
			n:          10,
			wantErrIs:  hotelling.ErrDuplicatePosition,
		},
		{
			name:       "異常_範囲外_上限",
			assignment: []int{1, 10},
			n:          10,
			wantErrIs:  hotelling.ErrPositionOutOfRange,
		},
		{
			name:       "異常_範囲外_負数",
			assignment: []int{-1, 2},
			n:          10,
			wantErrIs:  hotelling.ErrPositionOutOfRange,
		},
		{
			name:       "異常_n=1で2人",
			assignment: []int{0, 0},
			n:          1,
			wantErrIs:  hotelling.ErrDuplicatePosition,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := hotelling.Score(tc.assignment, tc.n)
			if tc.wantErrIs != nil {
				if !errors.Is(err, tc.wantErrIs) {
					t.Fatalf("want err: %v, got: %v", tc.wantErrIs, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("予期せぬエラーが発生した: %v", err)
			}
			if !approxEqual(got, tc.want, 1e-12) {
				t.Errorf("want: %v, got: %v", tc.want, got)
			}
		})
	}
}

func TestScoreSumsToOne(t *testing.T) {
	n := 7
	for a := range n {
		for b := range n {
			for c := range n {
				if a == b || b == c || a == c {
					continue
				}
				got, err := hotelling.Score([]int{a, b, c}, n)
				if err != nil {
					t.Fatalf("予期せぬエラーが発生した: %v", err)
				}
				for j, v := range got {
					if v < 0 {
						t.Errorf("assignment=%v player %d has negative probability %v", []int{a, b, c}, j, v)
					}
				}
				if math.Abs(got.Sum()-1.0) > 1e-9 {
					t.Errorf("assignment=%v sum=%v", []int{a, b, c}, got.Sum())
				}
			}
		}
	}
}

// 区間を右に伸ばしても、最も右のプレイヤー以外の獲得区間の長さは変わらない
func TestScoreDependsOnlyOnGaps(t *testing.T) {
	assignment := []int{6, 2, 7, 4}
	short, err := hotelling.Score(assignment, 10)
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}
	long, err := hotelling.Score(assignment, 15)
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}

	for j := range assignment {
		shortLen := short[j] * 9
		longLen := long[j] * 14
		want := shortLen
		if j == 2 {
			want += 5
		}
		if math.Abs(longLen-want) > 1e-9 {
			t.Errorf("player %d: want length %v, got %v", j, want, longLen)
		}
	}
}

func TestScoreMirror(t *testing.T) {
	n := 10
	assignment := []int{6, 2, 7, 4}
	mirrored := make([]int, len(assignment))
	for j, x := range assignment {
		mirrored[j] = n - 1 - x
	}

	got, err := hotelling.Score(assignment, n)
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}
	want, err := hotelling.Score(mirrored, n)
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}
	if !approxEqual(got, want, 1e-12) {
		t.Errorf("mirror: want %v, got %v", want, got)
	}
}

func TestScorePermutation(t *testing.T) {
	got, err := hotelling.Score([]int{4, 7, 2, 6}, 10)
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}
	// [6, 2, 7, 4] のプレイヤーを逆順に並べたもの
	want := hotelling.ProbabilityVector{2.0 / 9, 2.5 / 9, 3.0 / 9, 1.5 / 9}
	if !approxEqual(got, want, 1e-12) {
		t.Errorf("want: %v, got: %v", want, got)
	}
}

func TestAggregate(t *testing.T) {
	v := hotelling.ProbabilityVector{0.2, 0.3, 0.5}
	got, err := hotelling.Aggregate([]hotelling.ProbabilityVector{v})
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}
	if !slices.Equal(got, v) {
		t.Errorf("single vector: want %v, got %v", v, got)
	}

	vs := []hotelling.ProbabilityVector{{0.25, 0.75}, {0.5, 0.5}, {1.0, 0.0}}
	forward, err := hotelling.Aggregate(vs)
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}
	backward, err := hotelling.Aggregate([]hotelling.ProbabilityVector{vs[2], vs[0], vs[1]})
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}
	if !approxEqual(forward, backward, 1e-12) {
		t.Errorf("order: %v != %v", forward, backward)
	}
	if !approxEqual(forward, hotelling.ProbabilityVector{0.5833333333333334, 0.4166666666666667}, 1e-12) {
		t.Errorf("mean: got %v", forward)
	}
}
