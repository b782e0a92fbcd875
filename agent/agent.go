package agent

import (
	"golang.org/x/exp/rand"

	"uttt/game"
	"uttt/searcher"
)

// Agent picks a move for the player to move in state, returning search
// metrics when the agent collects them.
type Agent interface {
	FindMove(board game.Board, state game.State) (game.Action, searcher.SearchMetric)
}

// MCTSAgent decides with a configured searcher.
type MCTSAgent struct {
	mcts *searcher.MCTS
}

func NewMCTSAgent(options ...searcher.Option) *MCTSAgent {
	return &MCTSAgent{mcts: searcher.NewMCTS(options...)}
}

func (a *MCTSAgent) FindMove(board game.Board, state game.State) (game.Action, searcher.SearchMetric) {
	action := a.mcts.Think(board, state)
	return action, a.mcts.LastMetric()
}

// RandomAgent plays a uniformly random legal move. Baseline opponent for
// experiments.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(board game.Board, state game.State) (game.Action, searcher.SearchMetric) {
	legal := board.LegalActions(state)
	if len(legal) == 0 {
		panic("no legal moves to choose from")
	}
	return legal[a.rng.Intn(len(legal))], searcher.SearchMetric{}
}
