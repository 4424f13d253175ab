package systems_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/systems"
	"github.com/plus3/blockfall/tetris"
)

type fixed int

func (f fixed) IntN(n int) int { return int(f) % n }

type harness struct {
	game      *tetris.Game
	queue     *input.Queue
	surface   *render.Recorder
	scheduler *engine.Scheduler
	clock     *engine.ManualClock
}

func newHarness(t *testing.T, cfg tetris.Config, catalog tetris.Catalog) *harness {
	t.Helper()
	game, err := tetris.NewGame(cfg, catalog, fixed(0))
	require.NoError(t, err)

	queue := input.NewQueue()
	surface := &render.Recorder{}
	resources := systems.NewResources(game, queue)
	return &harness{
		game:      game,
		queue:     queue,
		surface:   surface,
		scheduler: systems.NewLoop(resources, surface, render.NewRenderer(cfg.CellSize)),
		clock:     engine.NewManualClock(time.Unix(0, 0)),
	}
}

func (h *harness) run(t *testing.T) {
	t.Helper()
	err := h.scheduler.Run(context.Background(), h.clock, time.Second/7)
	require.NoError(t, err)
}

func defaultConfig() tetris.Config {
	return tetris.Config{CellSize: 30, Columns: 10, Rows: 20, TickRate: 7}
}

func TestLoop(t *testing.T) {
	t.Run("tick applies input then gravity then renders", func(t *testing.T) {
		h := newHarness(t, defaultConfig(), tetris.DefaultCatalog())
		h.queue.Push(tetris.ActionMoveLeft, tetris.ActionMoveLeft)

		h.scheduler.Once(0)

		current := h.game.Current()
		assert.Equal(t, 1, current.X)
		assert.Equal(t, 1, current.Y)
		assert.Equal(t, 0, h.queue.Len())
		assert.Equal(t, 1, h.surface.Presents)
		assert.Len(t, h.surface.Ops, 200+4)
	})

	t.Run("quit halts before gravity and render", func(t *testing.T) {
		h := newHarness(t, defaultConfig(), tetris.DefaultCatalog())
		h.queue.Push(tetris.ActionMoveRight, tetris.ActionQuit, tetris.ActionMoveRight)

		h.run(t)

		halted, reason := h.scheduler.Halted()
		assert.True(t, halted)
		assert.Equal(t, "quit", reason)
		assert.Equal(t, tetris.Quit, h.game.State())
		assert.Equal(t, uint64(1), h.scheduler.Ticks())
		assert.Equal(t, 0, h.surface.Presents)

		current := h.game.Current()
		assert.Equal(t, 4, current.X)
		assert.Equal(t, 0, current.Y)
	})

	t.Run("overflow renders the final frame then halts", func(t *testing.T) {
		cfg := tetris.Config{CellSize: 10, Columns: 3, Rows: 2, TickRate: 7}
		catalog := tetris.Catalog{
			Shapes: []tetris.Shape{tetris.MustShape("11", "11")},
			Colors: []tetris.Color{1},
		}
		h := newHarness(t, cfg, catalog)

		h.run(t)

		halted, reason := h.scheduler.Halted()
		assert.True(t, halted)
		assert.Equal(t, "board overflow", reason)
		assert.Equal(t, tetris.Over, h.game.State())
		assert.Equal(t, 0, h.game.Score())
		assert.Equal(t, uint64(1), h.scheduler.Ticks())
		assert.Equal(t, 1, h.surface.Presents)
		assert.Len(t, h.surface.Filled(), 4+4)

		_, sleeps := h.clock.Slept()
		assert.Zero(t, sleeps)
	})

	t.Run("run keeps ticking while the game is running", func(t *testing.T) {
		h := newHarness(t, defaultConfig(), tetris.DefaultCatalog())

		for range 5 {
			h.scheduler.Once(1.0 / 7)
		}

		halted, _ := h.scheduler.Halted()
		assert.False(t, halted)
		assert.Equal(t, 5, h.game.Current().Y)
		assert.Equal(t, 5, h.surface.Presents)
	})
}

func TestTickAndRenderSchedulers(t *testing.T) {
	game, err := tetris.NewGame(defaultConfig(), tetris.DefaultCatalog(), fixed(0))
	require.NoError(t, err)
	queue := input.NewQueue()
	resources := systems.NewResources(game, queue)

	surface := &render.Recorder{}
	tick := systems.NewTickScheduler(resources)
	draw := systems.NewRenderScheduler(resources, surface, render.NewRenderer(30))

	draw.Once(0)
	draw.Once(0)
	assert.Equal(t, 0, game.Current().Y)
	assert.Equal(t, 2, surface.Presents)

	queue.Push(tetris.ActionSoftDrop)
	tick.Once(0)
	assert.Equal(t, 2, game.Current().Y)
	assert.Equal(t, 2, surface.Presents)
	assert.Equal(t, 2, tick.GetStats().SystemCount)
}
