package systems

import (
	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// GravitySystem advances the falling piece one row per tick.
type GravitySystem struct {
	Game engine.Singleton[tetris.Game]
}

func (s *GravitySystem) Execute(frame *engine.UpdateFrame) {
	game := s.Game.MustGet()
	if !game.Running() {
		return
	}

	landing := game.Gravity()
	if landing.Locked {
		log.Debug().
			Uint64("tick", frame.Tick).
			Int("cleared", landing.Cleared).
			Int("score", game.Score()).
			Msg("piece locked")
	}
	if landing.Overflow {
		log.Info().Int("score", game.Score()).Msg("game over")
		frame.Commands.Halt("board overflow")
	}
}
