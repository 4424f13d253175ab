package termview

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/systems"
	"github.com/plus3/blockfall/tetris"
)

// Session plays one game on a terminal screen.
type Session struct {
	game      *tetris.Game
	surface   *Surface
	scheduler *engine.Scheduler
}

func NewSession(screen tcell.Screen, events <-chan tcell.Event, game *tetris.Game) *Session {
	cfg := game.Config()
	surface := NewSurface(screen, cfg.CellSize)
	resources := systems.NewResources(game, input.NewQueue())

	return &Session{
		game:    game,
		surface: surface,
		scheduler: systems.NewLoop(resources, surface, render.NewRenderer(cfg.CellSize),
			NewEventSystem(screen, events)),
	}
}

// Run ticks the game at the configured rate until it ends or ctx is done.
// When the board overflowed, the final score is left on screen.
func (s *Session) Run(ctx context.Context, clock engine.Clock) error {
	if err := s.scheduler.Run(ctx, clock, s.game.Config().TickInterval()); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}

	_, reason := s.scheduler.Halted()
	log.Debug().Str("reason", reason).Uint64("ticks", s.scheduler.Ticks()).Msg("terminal session ended")

	if s.game.State() == tetris.Over {
		s.surface.Text(0, 0, fmt.Sprintf("Score: %d", s.game.Score()))
		s.surface.Present()
	}
	return nil
}

func (s *Session) Scheduler() *engine.Scheduler { return s.scheduler }
