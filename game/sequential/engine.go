package sequential

import (
	"fmt"
)

type LegalMovesFunc[S any, M comparable] func(S) []M
type MoveFunc[S any, M comparable] func(S, M) (S, error)
type CurrentAgentFunc[S any] func(S) int

// Logic describes the rules of a game as plain functions.
// MoveFunc must not modify its input state; it returns a new one.
//
// Logicはゲームのルールを関数の組で表します。
// MoveFuncは入力の状態を変更せず、新しい状態を返す必要があります。
type Logic[S any, M comparable] struct {
	LegalMovesFunc   LegalMovesFunc[S, M]
	MoveFunc         MoveFunc[S, M]
	CurrentAgentFunc CurrentAgentFunc[S]
}

func (l Logic[S, M]) Validate() error {
	if l.LegalMovesFunc == nil {
		return fmt.Errorf("%w: LegalMovesFunc", ErrNilLogicFunc)
	}
	if l.MoveFunc == nil {
		return fmt.Errorf("%w: MoveFunc", ErrNilLogicFunc)
	}
	if l.CurrentAgentFunc == nil {
		return fmt.Errorf("%w: CurrentAgentFunc", ErrNilLogicFunc)
	}
	return nil
}

type IsEndFunc[S any] func(S) bool

// ResultScoresFunc returns the score of every agent for a finished state.
// The returned vector is indexed by agent and has AgentsN elements.
//
// ResultScoresFuncは終局状態における全エージェントのスコアを返します。
type ResultScoresFunc[S any] func(S) (Scores, error)

type Engine[S any, M comparable] struct {
	Logic            Logic[S, M]
	IsEndFunc        IsEndFunc[S]
	ResultScoresFunc ResultScoresFunc[S]
	AgentsN          int
}

func (e Engine[S, M]) Validate() error {
	if err := e.Logic.Validate(); err != nil {
		return err
	}

	if e.IsEndFunc == nil {
		return fmt.Errorf("%w: IsEndFunc", ErrNilEngineFunc)
	}

	if e.ResultScoresFunc == nil {
		return fmt.Errorf("%w: ResultScoresFunc", ErrNilEngineFunc)
	}

	if e.AgentsN < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidAgentsN, e.AgentsN)
	}
	return nil
}

func (e Engine[S, M]) IsEnd(state S) bool {
	return e.IsEndFunc(state)
}

func (e Engine[S, M]) EvaluateResultScores(state S) (Scores, error) {
	scores, err := e.ResultScoresFunc(state)
	if err != nil {
		return nil, err
	}
	if len(scores) != e.AgentsN {
		return nil, fmt.Errorf("%w: AgentsN=%d scores=%d", ErrScoresLengthMismatch, e.AgentsN, len(scores))
	}
	return scores, nil
}
