package loop

import "time"

// System is one stage of the frame pipeline. Systems may declare
// Resource[T] fields; they are bound when the system is registered.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a function to the System interface.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}

// Frame is the per-update context passed to every system.
type Frame struct {
	Index     uint64
	DeltaTime time.Duration
	Commands  *Commands
	World     *World
}
