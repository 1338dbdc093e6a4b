package hotelling

import (
	"fmt"
	"slices"

	"github.com/sw965/hotelling/game/sequential"
)

// State is a position of the game: the interval size, the number of players
// and the positions chosen so far in turn order.
//
// Stateはゲームの局面です。区間の大きさ、プレイヤー数、手番順に選ばれた位置を保持します。
type State struct {
	N       int
	Players int
	History []int
}

func NewInitState(n, players int) State {
	return State{N: n, Players: players, History: []int{}}
}

// Mover returns the index of the player to move.
func (s State) Mover() int {
	return len(s.History)
}

func (s State) IsEnd() bool {
	return len(s.History) >= s.Players
}

// LegalMoves returns the free positions in ascending order.
// With symmetryPruning the first player only considers [0, n/2): reflecting
// every position x to n-1-x reflects the whole game.
//
// LegalMovesは空いている位置を昇順で返します。
// symmetryPruningが有効な場合、最初のプレイヤーは[0, n/2)のみを候補とします。
func LegalMoves(state State, symmetryPruning bool) []int {
	if symmetryPruning && len(state.History) == 0 {
		moves := make([]int, 0, state.N/2)
		for x := range state.N / 2 {
			moves = append(moves, x)
		}
		return moves
	}

	moves := make([]int, 0, max(state.N-len(state.History), 0))
	for x := range state.N {
		if !slices.Contains(state.History, x) {
			moves = append(moves, x)
		}
	}
	return moves
}

// Move returns the state after the mover picks position.
// The history of the returned state never shares memory with the input.
func Move(state State, position int) (State, error) {
	if state.IsEnd() {
		return State{}, sequential.ErrGameEnded
	}

	if position < 0 || position >= state.N {
		return State{}, fmt.Errorf("%w: %d is not in [0, %d)", ErrPositionOutOfRange, position, state.N)
	}

	if slices.Contains(state.History, position) {
		return State{}, fmt.Errorf("%w: %d is already taken", ErrDuplicatePosition, position)
	}

	history := make([]int, len(state.History), len(state.History)+1)
	copy(history, state.History)

	next := state
	next.History = append(history, position)
	return next, nil
}

func ResultScores(state State) (sequential.Scores, error) {
	return Score(state.History, state.N)
}

func NewLogic(symmetryPruning bool) sequential.Logic[State, int] {
	return sequential.Logic[State, int]{
		LegalMovesFunc: func(s State) []int {
			return LegalMoves(s, symmetryPruning)
		},
		MoveFunc: Move,
		CurrentAgentFunc: func(s State) int {
			return s.Mover()
		},
	}
}

func NewEngine(players int, symmetryPruning bool) sequential.Engine[State, int] {
	return sequential.Engine[State, int]{
		Logic: NewLogic(symmetryPruning),
		IsEndFunc: func(s State) bool {
			return s.IsEnd()
		},
		ResultScoresFunc: ResultScores,
		AgentsN:          players,
	}
}
