package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"uttt/experiments"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	name := "policies"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}

	switch name {
	case "policies":
		experiments.RunPolicyExperiment()
	case "iterations":
		experiments.RunIterationExperiment()
	case "exploration":
		experiments.RunExplorationExperiment()
	default:
		log.Fatal().Msgf("unknown experiment %q", name)
	}
}
