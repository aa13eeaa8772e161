package main

import (
	"flag"
	"os"
	"time"

	"kamisado/experiments"
	"kamisado/game"
	"kamisado/meta"
	"kamisado/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "arena", "arena plays agents against each other, selfplay collects training examples")
	games := flag.Int("games", meta.NUM_GAMES, "Number of games or episodes")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of games played in parallel")
	seed := flag.Int64("seed", 0, "Base seed, 0 for a random run")
	agent1 := flag.String("agent1", experiments.GreedyLanesAgent, "Agent playing as player 0")
	agent2 := flag.String("agent2", experiments.RandomAgent, "Agent playing as player 1")
	out := flag.String("out", "", "Directory for experiment records, empty to skip writing")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	switch *mode {
	case "arena":
		runArena(*agent1, *agent2, *games, *goroutines, *seed, *out)
	case "selfplay":
		runSelfPlay(*agent1, *games, *seed)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func runArena(agent1, agent2 string, games, goroutines int, seed int64, out string) {
	options := []experiments.Option{
		experiments.WithGames(games),
		experiments.WithGoroutines(goroutines),
		experiments.WithSeed(seed),
	}
	if out != "" {
		options = append(options, experiments.WithOutput(out))
	}

	runner, err := experiments.NewRunner("arena", agent1, agent2, options...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up experiment")
	}
	if _, err := runner.Run(); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

func runSelfPlay(kind string, episodes int, seed int64) {
	examples := 0
	var wins [game.NumPlayers]int
	for i := 0; i < episodes; i++ {
		episodeSeed := seed
		if seed != 0 {
			episodeSeed = seed + int64(i)
		}
		a, err := experiments.NewAgent(kind, episodeSeed)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create agent")
		}

		batch, outcome, err := player.NewTrainingController(a, episodeSeed).Run()
		if err != nil {
			log.Fatal().Err(err).Msgf("episode %d failed", i+1)
		}
		examples += len(batch)
		if w := outcome.Winner(); w >= 0 {
			wins[w]++
		}
		log.Debug().Msgf("episode %d: %d examples, outcome %v", i+1, len(batch), outcome)
	}
	log.Info().Msgf("self-play finished: %d episodes, %d examples, player 0 won %d, player 1 won %d",
		episodes, examples, wins[0], wins[1])
}
