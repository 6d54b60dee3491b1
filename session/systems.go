package session

import (
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

// InputSystem applies every queued action to the game, in arrival order.
type InputSystem struct {
	Match  loop.Resource[Match]
	Inputs loop.Resource[Inputs]

	Applied  int
	Rejected int
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	match := s.Match.Get()
	inputs := s.Inputs.Get()
	if match == nil || inputs == nil {
		return
	}

	for _, a := range inputs.queue {
		if match.Game.Apply(a) {
			s.Applied++
		} else {
			s.Rejected++
		}
	}
	inputs.queue = inputs.queue[:0]
}

// ClockSystem feeds the frame's elapsed time to the game's gravity.
type ClockSystem struct {
	Match loop.Resource[Match]

	Steps int
}

func (s *ClockSystem) Execute(frame *loop.Frame) {
	match := s.Match.Get()
	if match == nil {
		return
	}
	if match.Game.Advance(frame.DeltaTime) {
		s.Steps++
	}
}

// EventSystem hands the frame's engine events to the registered handlers
// after every system has run.
type EventSystem struct {
	Events loop.Resource[Events]
}

func (s *EventSystem) Execute(frame *loop.Frame) {
	events := s.Events.Get()
	if events == nil || len(events.pending) == 0 {
		return
	}

	pending := events.pending
	events.pending = nil
	handlers := events.handlers
	frame.Commands.Defer(func() {
		for _, e := range pending {
			for _, h := range handlers {
				h(e)
			}
		}
	})
}

// DisplaySystem refreshes the Display resource from the game.
type DisplaySystem struct {
	Match   loop.Resource[Match]
	Display loop.Resource[Display]
}

func (s *DisplaySystem) Execute(frame *loop.Frame) {
	match := s.Match.Get()
	display := s.Display.Get()
	if match == nil || display == nil {
		return
	}
	display.Snapshot = match.Game.Snapshot()
	display.Frame = frame.Index
}

var (
	_ loop.System = (*InputSystem)(nil)
	_ loop.System = (*ClockSystem)(nil)
	_ loop.System = (*EventSystem)(nil)
	_ loop.System = (*DisplaySystem)(nil)
)

// Snapshot is a convenience for presenters holding only a World.
func Snapshot(w *loop.World) (engine.Snapshot, bool) {
	d := loop.GetResource[Display](w)
	if d == nil {
		return engine.Snapshot{}, false
	}
	return d.Snapshot, true
}
