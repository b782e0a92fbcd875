package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpeningPosition(t *testing.T) {
	board := NewUltimate()
	pos := NewPosition()

	t.Run("player 1 opens with a free move anywhere", func(t *testing.T) {
		require.False(t, board.IsEnded(pos), "Opening position should not be terminal")
		require.Equal(t, Player1, board.CurrentPlayer(pos), "Player 1 should move first")
		require.Len(t, board.LegalActions(pos), 81, "Every cell should be playable")
	})
}

func TestForcedSubBoard(t *testing.T) {
	board := NewUltimate()
	pos := NewPosition()

	t.Run("cell coordinates force the opponent's sub-board", func(t *testing.T) {
		next := board.NextState(pos, Move{BigRow: 0, BigCol: 0, Row: 1, Col: 2}).(Position)

		require.Equal(t, Player2, board.CurrentPlayer(next), "Turn should pass to player 2")
		actions := board.LegalActions(next)
		require.Len(t, actions, 9, "Only the forced sub-board should be playable")
		for _, a := range actions {
			move := a.(Move)
			require.Equal(t, 1, move.BigRow, "Moves should target the forced sub-board")
			require.Equal(t, 2, move.BigCol, "Moves should target the forced sub-board")
		}
	})

	t.Run("a closed forced sub-board frees the move", func(t *testing.T) {
		pos := NewPosition()
		// Player 1 owns the top-left sub-board.
		pos.boxes[0][0] = Player1
		pos.forcedRow = 0
		pos.forcedCol = 0

		actions := board.LegalActions(pos)
		require.Greater(t, len(actions), 9, "All open sub-boards should be playable")
		for _, a := range actions {
			move := a.(Move)
			require.False(t, move.BigRow == 0 && move.BigCol == 0,
				"The owned sub-board should stay closed")
		}
	})
}

func TestNextStatePurity(t *testing.T) {
	board := NewUltimate()
	pos := NewPosition()
	move := Move{BigRow: 1, BigCol: 1, Row: 0, Col: 0}

	first := board.NextState(pos, move)
	second := board.NextState(pos, move)

	require.Equal(t, first, second, "Replaying the same move on the same state should give equal states")
	require.Equal(t, NewPosition(), pos, "The input state should not be mutated")
}

func TestSubBoardOwnership(t *testing.T) {
	board := NewUltimate()

	pos := NewPosition()
	// Player 1 about to complete the top row of the center sub-board.
	pos.cells[1][1][0][0] = Player1
	pos.cells[1][1][0][1] = Player1
	pos.forcedRow = 1
	pos.forcedCol = 1

	next := board.NextState(pos, Move{BigRow: 1, BigCol: 1, Row: 0, Col: 2}).(Position)

	require.Equal(t, Player1, next.boxes[1][1], "Three in a row should claim the sub-board")
	require.False(t, next.boxOpen(1, 1), "An owned sub-board should be closed")
	require.False(t, board.IsEnded(next), "One sub-board should not end the game")
}

func TestMacroWin(t *testing.T) {
	board := NewUltimate()

	pos := NewPosition()
	pos.boxes[0][0] = Player2
	pos.boxes[1][1] = Player2
	pos.boxes[2][2] = Player2

	require.True(t, board.IsEnded(pos), "Three owned sub-boards in a row should end the game")
	points := board.PointsValues(pos)
	require.Equal(t, 1, points[Player2], "The winner should score +1")
	require.Equal(t, -1, points[Player1], "The loser should score -1")
}

func TestDraw(t *testing.T) {
	board := NewUltimate()

	pos := NewPosition()
	// All sub-boards decided, no macro line for either player.
	owners := [3][3]PlayerID{
		{Player1, Player2, Player1},
		{Player2, Player1, Player2},
		{Player2, Player1, Player2},
	}
	pos.boxes = owners

	require.True(t, board.IsEnded(pos), "No open sub-board should mean the game is over")
	points := board.PointsValues(pos)
	require.Equal(t, 0, points[Player1], "A draw should score 0 for both")
	require.Equal(t, 0, points[Player2], "A draw should score 0 for both")
}

func TestContractViolations(t *testing.T) {
	board := NewUltimate()

	t.Run("points on a live position", func(t *testing.T) {
		require.Panics(t, func() {
			board.PointsValues(NewPosition())
		}, "Should panic when the game is not over")
	})

	t.Run("occupied cell", func(t *testing.T) {
		pos := NewPosition()
		move := Move{BigRow: 0, BigCol: 0, Row: 0, Col: 0}
		next := board.NextState(pos, move)
		// The reply is forced into sub-board (0,0), where the cell is taken.
		require.Panics(t, func() {
			board.NextState(next, move)
		}, "Should panic on a move into an occupied cell")
	})

	t.Run("move outside the forced sub-board", func(t *testing.T) {
		pos := NewPosition()
		next := board.NextState(pos, Move{BigRow: 0, BigCol: 0, Row: 1, Col: 1})
		require.Panics(t, func() {
			board.NextState(next, Move{BigRow: 0, BigCol: 0, Row: 0, Col: 1})
		}, "Should panic on a move ignoring the forced sub-board")
	})
}

func TestLegalActionOrderIsStable(t *testing.T) {
	board := NewUltimate()
	pos := NewPosition()

	first := board.LegalActions(pos)
	second := board.LegalActions(pos)

	require.Equal(t, first, second, "Enumeration order should be deterministic")
}
