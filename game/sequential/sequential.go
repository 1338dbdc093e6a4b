// Package sequential provides a generic engine for turn-based games in which
// every agent receives a score vector at the end of the game. It contains the
// exact backward-induction search (ties broken uniformly at random and
// evaluated as an expectation) and sampled playouts.
//
// Package sequential は逐次（ターン制）ゲームの汎用エンジンを提供します。
// 同値手を一様ランダムに選ぶ相手を期待値として扱う後ろ向き帰納法と、
// サンプリングによるプレイアウトを含みます。
package sequential

import (
	"errors"
)

var (
	ErrNilLogicFunc  = errors.New("logic error: function field is nil")
	ErrNilEngineFunc = errors.New("engine error: function field is nil")
	ErrNilActorFunc  = errors.New("actor error: function field is nil")

	ErrInvalidAgentsN  = errors.New("engine error: AgentsN must be >= 1")
	ErrAgentOutOfRange = errors.New("agent error: index out of range")

	ErrNoLegalMoves        = errors.New("legal moves error: game is not ended but no legal moves are available")
	ErrNotUniqueLegalMoves = errors.New("legal moves error: duplicate moves")

	ErrEmptyScores          = errors.New("scores error: no score vectors")
	ErrScoresLengthMismatch = errors.New("scores error: vectors must have the same length")

	ErrPolicySizeMismatch     = errors.New("policy error: size must match legal moves")
	ErrPolicyMissingLegalMove = errors.New("policy error: missing legal move")
	ErrPolicyBadValue         = errors.New("policy error: negative, NaN or Inf value")
	ErrPolicyZeroSum          = errors.New("policy error: sum is zero")

	ErrRngsEmpty = errors.New("playout error: at least one rng is required")

	ErrInvalidSolveConfig = errors.New("solve config error")
	ErrGameEnded          = errors.New("state error: game has already ended")
)
