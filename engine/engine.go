package engine

import (
	"uttt/experiments/metrics"
	"uttt/game"
)

// MaxMoves bounds runaway games; ultimate tic-tac-toe ends within 81 plies.
const MaxMoves = 200

type Engine interface {
	// Run starts a game till there's a verdict or MaxMoves is reached.
	// A zero winner means a draw (or an unfinished game at the bound).
	Run() (winner game.PlayerID, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
