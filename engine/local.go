package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"uttt/agent"
	"uttt/experiments/metrics"
	"uttt/game"
	"uttt/utils"
)

// LocalEngine owns the authoritative state of a single game and runs two
// agents against each other in-process.
type LocalEngine struct {
	board  game.Board
	state  game.State
	agents map[game.PlayerID]agent.Agent
}

func NewLocalEngine(board game.Board, state game.State, agent1, agent2 agent.Agent) *LocalEngine {
	if agent1 == nil || agent2 == nil {
		panic("need an agent for each player")
	}
	return &LocalEngine{
		board: board,
		state: state,
		agents: map[game.PlayerID]agent.Agent{
			game.Player1: agent1,
			game.Player2: agent2,
		},
	}
}

func (e *LocalEngine) Run() (game.PlayerID, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Info().Stringer("player", e.board.CurrentPlayer(e.state)).Msg("game starting")

	step := 0
	for !e.board.IsEnded(e.state) && step < MaxMoves {
		player := e.board.CurrentPlayer(e.state)
		action, metric := e.agents[player].FindMove(e.board, e.state)

		legal := e.board.LegalActions(e.state)
		if utils.FindIndex(legal, action) < 0 {
			panic(fmt.Sprintf("agent for %v returned illegal action %v", player, action))
		}

		e.state = e.board.NextState(e.state, action)
		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			SearchMetric: metric,
		})

		log.Debug().Int("step", step).Stringer("player", player).
			Msgf("played %v", action)
	}

	winner := e.winner()
	if !e.board.IsEnded(e.state) {
		log.Warn().Int("moves", step).Msg("game stopped at the move bound without a verdict")
	} else {
		log.Info().Stringer("winner", winner).Int("moves", step).Msg("game over")
	}

	gameMetric := metrics.GameMetric{
		Winner:     winner,
		StartTime:  start,
		Duration:   time.Since(start),
		TotalMoves: step,
	}
	return winner, gameMetric, moveMetrics
}

// winner reads the verdict off the final state; 0 for a draw or an
// unfinished game.
func (e *LocalEngine) winner() game.PlayerID {
	if !e.board.IsEnded(e.state) {
		return 0
	}
	for player, points := range e.board.PointsValues(e.state) {
		if points == 1 {
			return player
		}
	}
	return 0
}
