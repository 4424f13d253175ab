package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

const historyFrames = 120

// Overlay hosts the debug panels on top of an ebiten window. It is hidden
// until toggled.
type Overlay struct {
	backend    *ebitenbackend.EbitenBackend
	scheduler  *engine.Scheduler
	inputState *engine.Singleton[ImguiInputState]
	perf       *PerformanceStats
	timer      *FrameTimer
	visible    bool
}

// NewOverlay builds the panels for game. tick is the scheduler whose timings
// are shown.
func NewOverlay(backend *ebitenbackend.EbitenBackend, game *tetris.Game, tick *engine.Scheduler) *Overlay {
	resources := engine.NewResources()
	panels := engine.NewSingleton[Panels](resources)
	inputState := engine.NewSingleton[ImguiInputState](resources)

	perf := NewPerformanceStats(tick, historyFrames)
	panels.MustGet().Add(perf.Render)
	panels.MustGet().Add(NewGameStats(game).Render)

	scheduler := engine.NewScheduler(resources)
	scheduler.Register(&ImguiSystem{})

	return &Overlay{
		backend:    backend,
		scheduler:  scheduler,
		inputState: inputState,
		perf:       perf,
		timer:      NewFrameTimer(),
	}
}

func (o *Overlay) Toggle() {
	o.visible = !o.visible
	log.Debug().Bool("visible", o.visible).Msg("debug overlay toggled")
}

func (o *Overlay) Visible() bool { return o.visible }

// WantsKeyboard reports whether ImGui is consuming keyboard input, in which
// case game keys should be ignored.
func (o *Overlay) WantsKeyboard() bool {
	return o.visible && o.inputState.MustGet().WantCaptureKeyboard
}

// Update builds this frame's ImGui draw lists.
func (o *Overlay) Update() {
	dt := o.timer.GetDeltaTime()
	o.perf.Sample(dt)
	if !o.visible {
		return
	}

	o.backend.BeginFrame()
	o.scheduler.Once(float64(dt))
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.visible {
		o.backend.Draw(screen)
	}
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}
