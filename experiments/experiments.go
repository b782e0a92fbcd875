package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"uttt/agent"
	"uttt/engine"
	"uttt/experiments/metrics"
	"uttt/game"
	"uttt/searcher"
)

const NumGames = 20 // Per matchup

// RunPolicyExperiment pits each expansion/rollout policy combination
// against the default single-expand uniform-rollout agent.
func RunPolicyExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Iterations: 100, Expand: "single", Rollout: "uniform", Seed: 1}
	configs := []metrics.AgentConfig{
		{ID: 1, Iterations: 100, Expand: "single", Rollout: "uniform", Seed: 2},
		{ID: 2, Iterations: 100, Expand: "bulk", Rollout: "uniform", Seed: 3},
		{ID: 3, Iterations: 100, Expand: "single", Rollout: "heuristic", Seed: 4},
		{ID: 4, Iterations: 100, Expand: "bulk", Rollout: "heuristic", Seed: 5},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		// TODO: alternate the starting agent between games
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("policies", append(configs, baseline), matchUps)
}

// RunIterationExperiment varies the iteration budget against a fixed
// 100-iteration baseline.
func RunIterationExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Iterations: 100, Expand: "single", Rollout: "uniform", Seed: 1}
	configs := []metrics.AgentConfig{
		{ID: 1, Iterations: 50, Expand: "single", Rollout: "uniform", Seed: 2},
		{ID: 2, Iterations: 100, Expand: "single", Rollout: "uniform", Seed: 3},
		{ID: 3, Iterations: 250, Expand: "single", Rollout: "uniform", Seed: 4},
		{ID: 4, Iterations: 500, Expand: "single", Rollout: "uniform", Seed: 5},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("iterations", append(configs, baseline), matchUps)
}

// RunExplorationExperiment varies the explore faction against the
// reference value of 2.0.
func RunExplorationExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Iterations: 100, Explore: 2.0, Expand: "single", Rollout: "uniform", Seed: 1}
	configs := []metrics.AgentConfig{
		{ID: 1, Iterations: 100, Explore: 0.5, Expand: "single", Rollout: "uniform", Seed: 2},
		{ID: 2, Iterations: 100, Explore: 1.0, Expand: "single", Rollout: "uniform", Seed: 3},
		{ID: 3, Iterations: 100, Explore: 2.0, Expand: "single", Rollout: "uniform", Seed: 4},
		{ID: 4, Iterations: 100, Explore: 4.0, Expand: "single", Rollout: "uniform", Seed: 5},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("exploration", append(configs, baseline), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			winner, gameMetric, moveMetrics := runGame(config1, config2, uint64(i))
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s",
				mi+1, len(matchUps), i+1, NumGames, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	for _, summary := range metrics.Summarize(gameRecords) {
		log.Info().Msgf("matchup agent%d vs agent%d: winrate=%.2f draws=%d moves=%.1f±%.1f seconds=%.3f±%.3f",
			summary.Agent1, summary.Agent2, summary.Agent1WinRate, summary.Draws,
			summary.MeanMoves, summary.StddevMoves, summary.MeanSeconds, summary.StddevSeconds)
	}

	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		panic(fmt.Sprintf("failed to write agent configs: %v", err))
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
}

func runGame(config1, config2 metrics.AgentConfig, gameIndex uint64) (game.PlayerID, metrics.GameMetric, []metrics.MoveMetric) {
	board := game.NewUltimate()
	e := engine.NewLocalEngine(board, game.NewPosition(),
		buildAgent(config1, gameIndex),
		buildAgent(config2, gameIndex),
	)
	return e.Run()
}

func buildAgent(config metrics.AgentConfig, gameIndex uint64) agent.Agent {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	}
	if config.Explore > 0 {
		options = append(options, searcher.WithExploration(config.Explore))
	}
	if config.Expand == "bulk" {
		options = append(options, searcher.WithExpandPolicy(searcher.BulkExpand))
	}
	if config.Rollout == "heuristic" {
		options = append(options, searcher.WithRolloutPolicy(searcher.HeuristicRollout))
	}
	// Offset the seed per game so repeated games within a matchup differ.
	options = append(options, searcher.WithSeed(config.Seed+gameIndex*1009))

	return agent.NewMCTSAgent(options...)
}
