package searcher

import "uttt/game"

// mockBoard scripts a tiny game as a graph of integer states. A state is
// terminal exactly when it has a points entry.
type mockState int

type mockBoard struct {
	player map[mockState]game.PlayerID
	legal  map[mockState][]game.Action
	next   map[mockState]map[game.Action]mockState
	points map[mockState]map[game.PlayerID]int
}

func (b mockBoard) IsEnded(s game.State) bool {
	_, ok := b.points[s.(mockState)]
	return ok
}

func (b mockBoard) CurrentPlayer(s game.State) game.PlayerID {
	return b.player[s.(mockState)]
}

func (b mockBoard) LegalActions(s game.State) []game.Action {
	return b.legal[s.(mockState)]
}

func (b mockBoard) NextState(s game.State, a game.Action) game.State {
	to, ok := b.next[s.(mockState)][a]
	if !ok {
		panic("illegal move")
	}
	return to
}

func (b mockBoard) PointsValues(s game.State) map[game.PlayerID]int {
	points, ok := b.points[s.(mockState)]
	if !ok {
		panic("points queried on a non-terminal state")
	}
	return points
}

// forcedWinBoard is one decision for player 1: "win" ends the game as an
// immediate win, the other two actions as immediate losses.
func forcedWinBoard() mockBoard {
	return mockBoard{
		player: map[mockState]game.PlayerID{0: game.Player1},
		legal:  map[mockState][]game.Action{0: {"left", "win", "right"}},
		next: map[mockState]map[game.Action]mockState{
			0: {"left": 1, "win": 2, "right": 3},
		},
		points: map[mockState]map[game.PlayerID]int{
			1: {game.Player1: -1, game.Player2: 1},
			2: {game.Player1: 1, game.Player2: -1},
			3: {game.Player1: -1, game.Player2: 1},
		},
	}
}
