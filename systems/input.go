// Package systems holds the per-tick game systems run by engine.Scheduler:
// input first, then gravity, then rendering.
package systems

import (
	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// InputSystem drains the action queue into the game. A quit halts the loop
// once the tick completes; actions queued after it are discarded.
type InputSystem struct {
	Game  engine.Singleton[tetris.Game]
	Queue engine.Singleton[input.Queue]
}

func (s *InputSystem) Execute(frame *engine.UpdateFrame) {
	game := s.Game.MustGet()
	for _, action := range s.Queue.MustGet().Drain() {
		game.Apply(action)
		if game.State() == tetris.Quit {
			log.Info().Int("score", game.Score()).Msg("player quit")
			frame.Commands.Halt("quit")
			return
		}
	}
}
