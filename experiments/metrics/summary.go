package metrics

import (
	"gonum.org/v1/gonum/stat"

	"uttt/game"
)

// Summary aggregates the games of one matchup.
type Summary struct {
	Agent1, Agent2 int
	Games          int
	Agent1Wins     int
	Agent2Wins     int
	Draws          int
	Agent1WinRate  float64
	MeanMoves      float64
	StddevMoves    float64
	MeanSeconds    float64
	StddevSeconds  float64
}

// Summarize groups game records by matchup, in first-seen order, and
// computes per-matchup win counts and game-length statistics.
func Summarize(records []GameRecord) []Summary {
	type key struct{ agent1, agent2 int }
	order := []key{}
	grouped := map[key][]GameRecord{}
	for _, record := range records {
		k := key{record.Agent1, record.Agent2}
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], record)
	}

	summaries := make([]Summary, 0, len(order))
	for _, k := range order {
		games := grouped[k]
		summary := Summary{
			Agent1: k.agent1,
			Agent2: k.agent2,
			Games:  len(games),
		}

		moves := make([]float64, len(games))
		seconds := make([]float64, len(games))
		for i, g := range games {
			moves[i] = float64(g.TotalMoves)
			seconds[i] = g.Duration.Seconds()
			switch g.Winner {
			case game.Player1:
				summary.Agent1Wins++
			case game.Player2:
				summary.Agent2Wins++
			default:
				summary.Draws++
			}
		}

		summary.Agent1WinRate = float64(summary.Agent1Wins) / float64(len(games))
		summary.MeanMoves = stat.Mean(moves, nil)
		summary.StddevMoves = stat.StdDev(moves, nil)
		summary.MeanSeconds = stat.Mean(seconds, nil)
		summary.StddevSeconds = stat.StdDev(seconds, nil)
		summaries = append(summaries, summary)
	}
	return summaries
}
