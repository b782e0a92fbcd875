package game

import "fmt"

// PlayerID identifies one of the two players.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

func (p PlayerID) String() string {
	if p == 0 {
		return "None"
	}
	return fmt.Sprintf("Player%d", p)
}

// Opponent returns the other player.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// State is an opaque game position. Board implementations define the
// concrete type; states are values and must never be mutated in place.
type State any

// Action is an opaque move. Concrete actions must be comparable so that
// callers can check a proposed action against the legal ones.
type Action any

// Board is the rule engine the searcher consults. It owns no state of its
// own - every method is a pure function of the state it is given.
type Board interface {
	// IsEnded reports whether the game is over in s.
	IsEnded(s State) bool

	// CurrentPlayer returns the player to move in s.
	CurrentPlayer(s State) PlayerID

	// LegalActions returns the legal actions in s, in a stable order.
	// The result is empty exactly when s is terminal.
	LegalActions(s State) []Action

	// NextState returns the position after playing a in s, leaving s
	// untouched.
	NextState(s State, a Action) State

	// PointsValues returns the score per player: +1 for the winner, -1 for
	// the loser, 0 for both on a draw. It panics when s is not terminal.
	PointsValues(s State) map[PlayerID]int
}
