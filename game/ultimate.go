package game

import (
	"fmt"
	"strings"
)

// Move places a mark in the sub-board at (BigRow, BigCol), cell (Row, Col).
// The cell coordinates of a move force the opponent into the sub-board with
// those coordinates, unless that sub-board is closed.
type Move struct {
	BigRow, BigCol int
	Row, Col       int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d/%d,%d)", m.BigRow, m.BigCol, m.Row, m.Col)
}

// Position is the full state of an ultimate tic-tac-toe game. It is a plain
// value: copying by assignment yields an independent position.
type Position struct {
	cells  [3][3][3][3]PlayerID // cells[bigRow][bigCol][row][col]
	boxes  [3][3]PlayerID       // sub-board owners, 0 while undecided
	player PlayerID
	// Sub-board the player to move is forced into, -1/-1 on a free move.
	forcedRow, forcedCol int
}

// NewPosition returns the empty opening position with Player1 to move.
func NewPosition() Position {
	return Position{
		player:    Player1,
		forcedRow: -1,
		forcedCol: -1,
	}
}

// Ultimate implements Board for ultimate tic-tac-toe.
type Ultimate struct{}

func NewUltimate() Ultimate {
	return Ultimate{}
}

func (Ultimate) IsEnded(s State) bool {
	pos := s.(Position)
	if pos.macroWinner() != 0 {
		return true
	}
	return !pos.anyOpenBox()
}

func (Ultimate) CurrentPlayer(s State) PlayerID {
	return s.(Position).player
}

// LegalActions enumerates moves in a stable order: sub-boards row-major,
// cells row-major within each sub-board.
func (Ultimate) LegalActions(s State) []Action {
	pos := s.(Position)
	if pos.macroWinner() != 0 {
		return nil
	}

	var actions []Action
	appendBox := func(bigRow, bigCol int) {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if pos.cells[bigRow][bigCol][row][col] == 0 {
					actions = append(actions, Move{bigRow, bigCol, row, col})
				}
			}
		}
	}

	if pos.forcedRow >= 0 && pos.boxOpen(pos.forcedRow, pos.forcedCol) {
		appendBox(pos.forcedRow, pos.forcedCol)
		return actions
	}
	for bigRow := 0; bigRow < 3; bigRow++ {
		for bigCol := 0; bigCol < 3; bigCol++ {
			if pos.boxOpen(bigRow, bigCol) {
				appendBox(bigRow, bigCol)
			}
		}
	}
	return actions
}

// NextState plays the move on a copy of the position. Panics on an illegal
// move: move legality is the caller's contract, not a runtime condition.
func (u Ultimate) NextState(s State, a Action) State {
	pos := s.(Position)
	move := a.(Move)

	if !pos.legal(move) {
		panic(fmt.Sprintf("illegal move %v for %v", move, pos.player))
	}

	next := pos // value copy
	next.cells[move.BigRow][move.BigCol][move.Row][move.Col] = pos.player
	if next.boxes[move.BigRow][move.BigCol] == 0 &&
		wonGrid(next.cells[move.BigRow][move.BigCol], pos.player) {
		next.boxes[move.BigRow][move.BigCol] = pos.player
	}
	next.forcedRow = move.Row
	next.forcedCol = move.Col
	next.player = pos.player.Opponent()
	return next
}

func (u Ultimate) PointsValues(s State) map[PlayerID]int {
	if !u.IsEnded(s) {
		panic("points queried on a live position")
	}
	pos := s.(Position)
	switch winner := pos.macroWinner(); winner {
	case 0:
		return map[PlayerID]int{Player1: 0, Player2: 0}
	default:
		return map[PlayerID]int{winner: 1, winner.Opponent(): -1}
	}
}

func (pos Position) legal(move Move) bool {
	if move.BigRow < 0 || move.BigRow > 2 || move.BigCol < 0 || move.BigCol > 2 ||
		move.Row < 0 || move.Row > 2 || move.Col < 0 || move.Col > 2 {
		return false
	}
	if pos.macroWinner() != 0 {
		return false
	}
	if !pos.boxOpen(move.BigRow, move.BigCol) {
		return false
	}
	if pos.forcedRow >= 0 && pos.boxOpen(pos.forcedRow, pos.forcedCol) &&
		(move.BigRow != pos.forcedRow || move.BigCol != pos.forcedCol) {
		return false
	}
	return pos.cells[move.BigRow][move.BigCol][move.Row][move.Col] == 0
}

// boxOpen reports whether the sub-board still takes moves: not yet owned and
// not full. Owned sub-boards are closed even if cells remain empty.
func (pos Position) boxOpen(bigRow, bigCol int) bool {
	if pos.boxes[bigRow][bigCol] != 0 {
		return false
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if pos.cells[bigRow][bigCol][row][col] == 0 {
				return true
			}
		}
	}
	return false
}

func (pos Position) anyOpenBox() bool {
	for bigRow := 0; bigRow < 3; bigRow++ {
		for bigCol := 0; bigCol < 3; bigCol++ {
			if pos.boxOpen(bigRow, bigCol) {
				return true
			}
		}
	}
	return false
}

func (pos Position) macroWinner() PlayerID {
	for _, p := range []PlayerID{Player1, Player2} {
		if wonGrid(pos.boxes, p) {
			return p
		}
	}
	return 0
}

// wonGrid reports whether p holds a row, column, or diagonal of the 3x3 grid.
func wonGrid(grid [3][3]PlayerID, p PlayerID) bool {
	for i := 0; i < 3; i++ {
		if grid[i][0] == p && grid[i][1] == p && grid[i][2] == p {
			return true
		}
		if grid[0][i] == p && grid[1][i] == p && grid[2][i] == p {
			return true
		}
	}
	if grid[0][0] == p && grid[1][1] == p && grid[2][2] == p {
		return true
	}
	return grid[0][2] == p && grid[1][1] == p && grid[2][0] == p
}

func (pos Position) String() string {
	marks := map[PlayerID]byte{0: '.', Player1: 'X', Player2: 'O'}
	var b strings.Builder
	for bigRow := 0; bigRow < 3; bigRow++ {
		for row := 0; row < 3; row++ {
			for bigCol := 0; bigCol < 3; bigCol++ {
				for col := 0; col < 3; col++ {
					b.WriteByte(marks[pos.cells[bigRow][bigCol][row][col]])
				}
				if bigCol < 2 {
					b.WriteByte('|')
				}
			}
			b.WriteByte('\n')
		}
		if bigRow < 2 {
			b.WriteString("---+---+---\n")
		}
	}
	return b.String()
}
