// Package debugui draws the in-game debug overlay with Dear ImGui. Panels are
// plain render functions queued by ImguiSystem and run after the frame's other
// systems, inside the ImGui frame opened by Overlay.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/engine"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// Panels is the singleton list of items drawn every overlay frame.
type Panels struct {
	Items []ImguiItem
}

// Add appends a panel.
func (p *Panels) Add(render func()) {
	p.Items = append(p.Items, ImguiItem{Render: render})
}

// ImguiInputState tracks whether ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates the input capture state and defers every panel's
// render function.
type ImguiSystem struct {
	Panels     engine.Singleton[Panels]
	InputState engine.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	state := i.InputState.MustGet()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Panels.MustGet().Items {
		frame.Commands.Defer(item.Render)
	}
}
