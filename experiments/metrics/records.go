package metrics

import (
	"time"

	"uttt/game"
	"uttt/searcher"
)

// AgentConfig describes one searcher configuration under experiment.
type AgentConfig struct {
	ID         int
	Iterations int
	Explore    float64
	Expand     string // "single" or "bulk"
	Rollout    string // "uniform" or "heuristic"
	Seed       uint64
}

type MoveMetric struct {
	Step   int
	Player game.PlayerID
	searcher.SearchMetric
}

type GameMetric struct {
	Winner     game.PlayerID // 0 on a draw
	StartTime  time.Time
	Duration   time.Duration
	TotalMoves int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
