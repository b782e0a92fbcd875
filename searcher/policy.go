package searcher

import (
	"golang.org/x/exp/rand"

	"uttt/game"
)

// ExpandPolicy decides which untried actions a frontier node materializes
// before the rollout.
type ExpandPolicy interface {
	expand(board game.Board, n *node, state game.State, rng *rand.Rand) (*node, game.State)
}

// RolloutPolicy plays a state out to a terminal one and reports the number
// of plies played. The input state is never mutated.
type RolloutPolicy interface {
	rollout(board game.Board, state game.State, rng *rand.Rand) (game.State, int)
}

// SingleExpand materializes exactly one untried action per iteration, chosen
// uniformly at random from the injected source.
var SingleExpand ExpandPolicy = singleExpand{}

// BulkExpand materializes every untried action of the node in one pass, in
// the node's action order, and hands the last created child to the rollout.
var BulkExpand ExpandPolicy = bulkExpand{}

// UniformRollout plays a uniformly random legal action each ply.
var UniformRollout RolloutPolicy = uniformRollout{}

// HeuristicRollout plays an action that immediately wins for the mover when
// one exists, and falls back to a uniformly random action otherwise.
var HeuristicRollout RolloutPolicy = heuristicRollout{}

type singleExpand struct{}

func (singleExpand) expand(board game.Board, n *node, state game.State, rng *rand.Rand) (*node, game.State) {
	if len(n.untried) == 0 {
		panic("expanding a node with no untried actions")
	}
	return n.addChild(board, state, rng.Intn(len(n.untried)))
}

type bulkExpand struct{}

func (bulkExpand) expand(board game.Board, n *node, state game.State, rng *rand.Rand) (*node, game.State) {
	if len(n.untried) == 0 {
		panic("expanding a node with no untried actions")
	}

	var child *node
	var childState game.State
	for len(n.untried) > 0 {
		child, childState = n.addChild(board, state, 0)
	}
	return child, childState
}

type uniformRollout struct{}

func (uniformRollout) rollout(board game.Board, state game.State, rng *rand.Rand) (game.State, int) {
	plies := 0
	for !board.IsEnded(state) {
		legal := board.LegalActions(state)
		state = board.NextState(state, legal[rng.Intn(len(legal))])
		plies++
	}
	return state, plies
}

type heuristicRollout struct{}

func (heuristicRollout) rollout(board game.Board, state game.State, rng *rand.Rand) (game.State, int) {
	plies := 0
	for !board.IsEnded(state) {
		legal := board.LegalActions(state)
		action, ok := winningAction(board, state, legal)
		if !ok {
			action = legal[rng.Intn(len(legal))]
		}
		state = board.NextState(state, action)
		plies++
	}
	return state, plies
}

// winningAction returns the first legal action that ends the game as a win
// for the player to move, if any.
func winningAction(board game.Board, state game.State, legal []game.Action) (game.Action, bool) {
	mover := board.CurrentPlayer(state)
	for _, action := range legal {
		next := board.NextState(state, action)
		if board.IsEnded(next) && board.PointsValues(next)[mover] == 1 {
			return action, true
		}
	}
	return nil, false
}
