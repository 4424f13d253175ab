package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/tetris"
)

// Keyboard reports key presses for the current frame.
type Keyboard interface {
	JustPressed(key ebiten.Key) bool
	// Closing reports whether the user asked to close the window.
	Closing() bool
}

// LiveKeyboard reads ebiten's input state.
type LiveKeyboard struct{}

func (LiveKeyboard) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }
func (LiveKeyboard) Closing() bool                   { return ebiten.IsWindowBeingClosed() }

const ToggleOverlayKey = ebiten.KeyF3

var bindings = []struct {
	key    ebiten.Key
	action tetris.Action
}{
	{ebiten.KeyArrowLeft, tetris.ActionMoveLeft},
	{ebiten.KeyArrowRight, tetris.ActionMoveRight},
	{ebiten.KeyArrowDown, tetris.ActionSoftDrop},
	{ebiten.KeyArrowUp, tetris.ActionRotate},
	{ebiten.KeyEscape, tetris.ActionQuit},
}

// Actions returns the actions for keys pressed this frame. A window close
// counts as a quit.
func Actions(kb Keyboard) []tetris.Action {
	var actions []tetris.Action
	for _, b := range bindings {
		if kb.JustPressed(b.key) {
			actions = append(actions, b.action)
		}
	}
	if kb.Closing() {
		actions = append(actions, tetris.ActionQuit)
	}
	return actions
}
