// Package debugui draws Dear ImGui inspector windows for a running session.
// Panels are collected in a Panels resource and rendered by ImguiSystem
// after every other system in the frame has run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/loop"
)

// Panel is one ImGui window.
type Panel interface {
	Render(frame *loop.Frame)
}

// PanelFunc adapts a function to the Panel interface.
type PanelFunc func(frame *loop.Frame)

func (f PanelFunc) Render(frame *loop.Frame) {
	f(frame)
}

// Panels is the resource listing the windows to draw each frame.
type Panels struct {
	list []Panel
}

// Add appends panels in draw order.
func (p *Panels) Add(panels ...Panel) {
	p.list = append(p.list, panels...)
}

// Len returns the number of panels.
func (p *Panels) Len() int {
	return len(p.list)
}

// InputState tracks whether ImGui is consuming mouse or keyboard input.
// Hosts check it before handing keys to the game.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates InputState and defers every panel's Render to the
// end of the frame. It must run between the backend's BeginFrame and
// EndFrame.
type ImguiSystem struct {
	Panels     loop.Resource[Panels]
	InputState loop.Resource[InputState]
}

func (s *ImguiSystem) Execute(frame *loop.Frame) {
	if state := s.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	panels := s.Panels.Get()
	if panels == nil {
		return
	}
	for _, p := range panels.list {
		frame.Commands.Defer(func() { p.Render(frame) })
	}
}

// Install adds the Panels and InputState resources to w and returns the
// panel list.
func Install(w *loop.World, panels ...Panel) *Panels {
	list := loop.AddResource(w, Panels{})
	list.Add(panels...)
	loop.AddResource(w, InputState{})
	return list
}
