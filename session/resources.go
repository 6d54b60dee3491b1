package session

import (
	"github.com/plus3/blockfall/engine"
)

// Match is the resource holding the session's game.
type Match struct {
	Game *engine.Game
}

// Inputs queues player actions until the next frame applies them.
type Inputs struct {
	queue []engine.Action
}

// Push appends an action to the queue.
func (in *Inputs) Push(a engine.Action) {
	in.queue = append(in.queue, a)
}

// Pending returns the number of queued actions.
func (in *Inputs) Pending() int {
	return len(in.queue)
}

// Events collects engine events raised during a frame and the handlers
// they are delivered to once the frame completes.
type Events struct {
	pending  []engine.Event
	handlers []func(engine.Event)
}

func (ev *Events) record(e engine.Event) {
	ev.pending = append(ev.pending, e)
}

// Display is the latest render-ready snapshot.
type Display struct {
	Snapshot engine.Snapshot
	Frame    uint64
}
