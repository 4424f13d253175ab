package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// Listen forwards screen events to a channel from a helper goroutine. The
// goroutine exits once the screen is finalized.
func Listen(screen tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	return events
}

// Action maps a key to a game action. Escape, Ctrl-C and q quit.
func Action(ev *tcell.EventKey) (tetris.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return tetris.ActionMoveLeft, true
	case tcell.KeyRight:
		return tetris.ActionMoveRight, true
	case tcell.KeyDown:
		return tetris.ActionSoftDrop, true
	case tcell.KeyUp:
		return tetris.ActionRotate, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return tetris.ActionQuit, true
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return tetris.ActionQuit, true
		}
	}
	return 0, false
}

// EventSystem drains pending terminal events into the action queue without
// blocking. It must run before the input system.
type EventSystem struct {
	Queue  engine.Singleton[input.Queue]
	screen tcell.Screen
	events <-chan tcell.Event
}

func NewEventSystem(screen tcell.Screen, events <-chan tcell.Event) *EventSystem {
	return &EventSystem{screen: screen, events: events}
}

func (s *EventSystem) Execute(frame *engine.UpdateFrame) {
	queue := s.Queue.MustGet()
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if action, ok := Action(ev); ok {
					queue.Push(action)
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return
		}
	}
}
