package hotelling_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/sw965/hotelling/game/sequential/hotelling"
)

func TestSolverSimulate(t *testing.T) {
	set, err := hotelling.Solve(10, 3, 0, nil)
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}
	exact, err := set.Expected()
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}

	for _, workers := range []int{1, 2} {
		solver := hotelling.NewSolver()
		solver.Workers = workers

		got, err := solver.Simulate(10, 3, 3000, 1)
		if err != nil {
			t.Fatalf("workers=%d: 予期せぬエラーが発生した: %v", workers, err)
		}
		if !approxEqual(got, exact, 0.02) {
			t.Errorf("workers=%d: empirical %v is far from exact %v", workers, got, exact)
		}
		if math.Abs(got.Sum()-1.0) > 1e-9 {
			t.Errorf("workers=%d: sum=%v", workers, got.Sum())
		}
	}
}

func TestSolverSimulateReproducible(t *testing.T) {
	solver := hotelling.NewSolver()
	a, err := solver.Simulate(10, 3, 200, 7)
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}
	b, err := solver.Simulate(10, 3, 200, 7)
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestSolverSimulateErrors(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		p         int
		games     int
		wantErrIs error
	}{
		{
			name:      "異常_ゲーム数0",
			n:         10,
			p:         3,
			games:     0,
			wantErrIs: hotelling.ErrInvalidGameCount,
		},
		{
			name:      "異常_n不正",
			n:         0,
			p:         3,
			games:     10,
			wantErrIs: hotelling.ErrInvalidDiscretization,
		},
		{
			name:      "異常_候補なし",
			n:         2,
			p:         3,
			games:     10,
			wantErrIs: hotelling.ErrNoCandidates,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hotelling.NewSolver().Simulate(tc.n, tc.p, tc.games, 1)
			if !errors.Is(err, tc.wantErrIs) {
				t.Errorf("want err: %v, got: %v", tc.wantErrIs, err)
			}
		})
	}
}
