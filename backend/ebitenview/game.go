package ebitenview

import (
	"fmt"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/systems"
	"github.com/plus3/blockfall/tetris"
)

// TPS is the ebiten update rate. Keys are polled every update while game
// ticks run at the configured tick rate.
const TPS = 60

const defaultGameOverLinger = 2 * time.Second

// Overlay is drawn over the board, such as the debug UI.
type Overlay interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
	Toggle()
	WantsKeyboard() bool
}

// Game implements ebiten.Game around a tetris.Game.
type Game struct {
	game     *tetris.Game
	queue    *input.Queue
	tick     *engine.Scheduler
	draw     *engine.Scheduler
	surface  *Surface
	pacer    *engine.Pacer
	keyboard Keyboard
	overlay  Overlay
	frame    time.Duration
	linger   time.Duration
}

func NewGame(game *tetris.Game, keyboard Keyboard) *Game {
	cfg := game.Config()
	queue := input.NewQueue()
	resources := systems.NewResources(game, queue)
	surface := &Surface{}

	return &Game{
		game:     game,
		queue:    queue,
		tick:     systems.NewTickScheduler(resources),
		draw:     systems.NewRenderScheduler(resources, surface, render.NewRenderer(cfg.CellSize)),
		surface:  surface,
		pacer:    engine.NewPacer(cfg.TickInterval()),
		keyboard: keyboard,
		frame:    time.Second / TPS,
		linger:   defaultGameOverLinger,
	}
}

// SetOverlay installs an overlay toggled with ToggleOverlayKey.
func (g *Game) SetOverlay(o Overlay) {
	g.overlay = o
}

// SetGameOverLinger sets how long the final board and score stay on screen
// after an overflow.
func (g *Game) SetGameOverLinger(d time.Duration) {
	g.linger = d
}

// TickScheduler returns the scheduler running input and gravity.
func (g *Game) TickScheduler() *engine.Scheduler { return g.tick }

func (g *Game) Update() error {
	if g.overlay != nil && g.keyboard.JustPressed(ToggleOverlayKey) {
		g.overlay.Toggle()
	}

	actions := Actions(g.keyboard)
	if g.overlay != nil && g.overlay.WantsKeyboard() {
		actions = slices.DeleteFunc(actions, func(a tetris.Action) bool { return a != tetris.ActionQuit })
	}
	g.queue.Push(actions...)

	if halted, _ := g.tick.Halted(); !halted {
		for range g.pacer.Advance(g.frame) {
			g.tick.Once(g.pacer.Interval().Seconds())
			if halted, _ := g.tick.Halted(); halted {
				break
			}
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	halted, reason := g.tick.Halted()
	if !halted {
		return nil
	}
	if g.game.State() == tetris.Over && g.linger > 0 && !slices.Contains(actions, tetris.ActionQuit) {
		g.linger -= g.frame
		return nil
	}

	log.Info().Str("reason", reason).Int("score", g.game.Score()).Msg("closing window")
	return ebiten.Termination
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.draw.Once(0)

	if g.game.State() == tetris.Over {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.game.Score()), 4, 4)
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.game.Config().ScreenSize()
	if g.overlay != nil {
		g.overlay.Layout(w, h)
	}
	return w, h
}
