package termview_test

import (
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/backend/termview"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func background(t *testing.T, screen tcell.Screen, x, y int) tcell.Color {
	t.Helper()
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestSurfaceMapsRectsToCells(t *testing.T) {
	screen := newScreen(t, 20, 20)
	surface := termview.NewSurface(screen, 30)
	red := color.RGBA{255, 0, 0, 255}

	surface.Clear(render.Background)
	surface.DrawRect(render.Rect{X: 0, Y: 0, W: 30, H: 30}, nil, render.GridLine)
	surface.DrawRect(render.Rect{X: 30, Y: 60, W: 30, H: 30}, red, render.GridLine)
	surface.Present()

	primary, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, '·', primary)

	assert.Equal(t, tcell.FromImageColor(red), background(t, screen, 2, 2))
	assert.Equal(t, tcell.FromImageColor(red), background(t, screen, 3, 2))
	assert.Equal(t, tcell.FromImageColor(render.Background), background(t, screen, 4, 2))
	assert.Equal(t, tcell.FromImageColor(render.Background), background(t, screen, 2, 3))
}

func TestAction(t *testing.T) {
	tests := []struct {
		name   string
		key    tcell.Key
		ch     rune
		mod    tcell.ModMask
		action tetris.Action
		ok     bool
	}{
		{"left", tcell.KeyLeft, 0, tcell.ModNone, tetris.ActionMoveLeft, true},
		{"right", tcell.KeyRight, 0, tcell.ModNone, tetris.ActionMoveRight, true},
		{"down", tcell.KeyDown, 0, tcell.ModNone, tetris.ActionSoftDrop, true},
		{"up", tcell.KeyUp, 0, tcell.ModNone, tetris.ActionRotate, true},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, tetris.ActionQuit, true},
		{"ctrl-c", tcell.KeyCtrlC, 0, tcell.ModCtrl, tetris.ActionQuit, true},
		{"q", tcell.KeyRune, 'q', tcell.ModNone, tetris.ActionQuit, true},
		{"other rune", tcell.KeyRune, 'x', tcell.ModNone, 0, false},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := termview.Action(tcell.NewEventKey(tt.key, tt.ch, tt.mod))
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.action, action)
			}
		})
	}
}

type fixed int

func (f fixed) IntN(n int) int { return int(f) % n }

func keys(keys ...tcell.Key) <-chan tcell.Event {
	events := make(chan tcell.Event, len(keys))
	for _, k := range keys {
		events <- tcell.NewEventKey(k, 0, tcell.ModNone)
	}
	return events
}

func TestSessionQuit(t *testing.T) {
	screen := newScreen(t, 20, 20)
	game, err := tetris.NewGame(tetris.DefaultConfig(), tetris.DefaultCatalog(), fixed(0))
	require.NoError(t, err)

	session := termview.NewSession(screen, keys(tcell.KeyLeft, tcell.KeyEscape), game)
	err = session.Run(context.Background(), engine.NewManualClock(time.Unix(0, 0)))

	require.NoError(t, err)
	assert.Equal(t, tetris.Quit, game.State())
	assert.Equal(t, 2, game.Current().X)
	assert.Equal(t, 0, game.Current().Y)

	halted, reason := session.Scheduler().Halted()
	assert.True(t, halted)
	assert.Equal(t, "quit", reason)
}

func TestSessionOverflowShowsScore(t *testing.T) {
	screen := newScreen(t, 12, 2)
	cfg := tetris.Config{CellSize: 1, Columns: 3, Rows: 2, TickRate: 7}
	catalog := tetris.Catalog{
		Shapes: []tetris.Shape{tetris.MustShape("11", "11")},
		Colors: []tetris.Color{1},
	}
	game, err := tetris.NewGame(cfg, catalog, fixed(0))
	require.NoError(t, err)

	session := termview.NewSession(screen, keys(), game)
	err = session.Run(context.Background(), engine.NewManualClock(time.Unix(0, 0)))

	require.NoError(t, err)
	assert.Equal(t, tetris.Over, game.State())

	var line []rune
	for x := range 8 {
		primary, _, _, _ := screen.GetContent(x, 0)
		line = append(line, primary)
	}
	assert.Equal(t, "Score: 0", string(line))
}

func TestSessionCancelled(t *testing.T) {
	screen := newScreen(t, 20, 20)
	game, err := tetris.NewGame(tetris.DefaultConfig(), tetris.DefaultCatalog(), fixed(0))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := termview.NewSession(screen, keys(), game)
	err = session.Run(ctx, engine.NewManualClock(time.Unix(0, 0)))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, tetris.Running, game.State())
}
