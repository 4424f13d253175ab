// Command blockfall-sim plays games headlessly with random input and prints a
// report of scores, piece statistics and tick timings.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/tetris"
)

func main() {
	games := flag.Int("games", 100, "The number of games to play.")
	maxTicks := flag.Int("max-ticks", 100000, "Stop a game that is still running after this many ticks.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for pieces and input.")
	flag.Parse()

	cfg := tetris.DefaultConfig()
	if lvl, err := cfg.Level(); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	log.Info().Int("games", *games).Uint64("seed", *seed).Msg("starting simulation")

	sim := Simulation{
		Config:   cfg,
		Catalog:  tetris.DefaultCatalog(),
		Games:    *games,
		MaxTicks: *maxTicks,
		Seed:     *seed,
	}
	report, err := sim.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	log.Info().Dur("elapsed", report.TotalTime).Msg("simulation finished")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}
