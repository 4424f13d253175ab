package systems

import (
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

// RenderSystem draws the board and the falling piece. Nothing is drawn on the
// tick the player quits.
type RenderSystem struct {
	Game     engine.Singleton[tetris.Game]
	Surface  render.Surface
	Renderer *render.Renderer
}

func NewRenderSystem(surface render.Surface, renderer *render.Renderer) *RenderSystem {
	return &RenderSystem{Surface: surface, Renderer: renderer}
}

func (s *RenderSystem) Execute(frame *engine.UpdateFrame) {
	game := s.Game.MustGet()
	if game.State() == tetris.Quit {
		return
	}
	s.Renderer.Frame(s.Surface, game.Board(), game.Current())
}
