package main

import (
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/systems"
	"github.com/plus3/blockfall/tetris"
)

var playerActions = []tetris.Action{
	tetris.ActionMoveLeft,
	tetris.ActionMoveRight,
	tetris.ActionSoftDrop,
	tetris.ActionRotate,
}

// Simulation plays Games games through the tick scheduler. Game i deals
// pieces and picks input from a PCG stream seeded with (Seed, i).
type Simulation struct {
	Config   tetris.Config
	Catalog  tetris.Catalog
	Games    int
	MaxTicks int
	Seed     uint64
}

func (s Simulation) Run() (*Report, error) {
	report := &Report{
		Games:    s.Games,
		MaxTicks: s.MaxTicks,
		Seed:     s.Seed,
		Columns:  s.Config.Columns,
		Rows:     s.Config.Rows,
		Spawns:   make(map[string]int),
		Clears:   make(map[int]int),
	}

	start := time.Now()
	for i := range s.Games {
		rng := rand.New(rand.NewPCG(s.Seed, uint64(i)))
		game, err := tetris.NewGame(s.Config, s.Catalog, rng)
		if err != nil {
			return nil, err
		}
		ticks := s.play(game, rng, &report.TickTime)
		report.add(game, ticks)

		log.Debug().Int("game", i).Int("score", game.Score()).Int("ticks", ticks).Msg("game finished")
	}
	report.TotalTime = time.Since(start)
	report.TickTime.Finalize()
	return report, nil
}

// play feeds zero to two random actions per tick until the game ends or
// MaxTicks is reached, and returns the number of ticks run.
func (s Simulation) play(game *tetris.Game, rng *rand.Rand, timing *Stats) int {
	queue := input.NewQueue()
	scheduler := systems.NewTickScheduler(systems.NewResources(game, queue))
	dt := s.Config.TickInterval().Seconds()

	for {
		if halted, _ := scheduler.Halted(); halted || int(scheduler.Ticks()) >= s.MaxTicks {
			return int(scheduler.Ticks())
		}
		for range rng.IntN(3) {
			queue.Push(playerActions[rng.IntN(len(playerActions))])
		}

		tickStart := time.Now()
		scheduler.Once(dt)
		timing.Samples = append(timing.Samples, time.Since(tickStart))
	}
}
