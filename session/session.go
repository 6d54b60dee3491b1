// Package session runs one game on a frame scheduler: inputs are queued
// and applied at the start of a frame, gravity advances with the frame's
// elapsed time, and presenters read a snapshot refreshed every frame.
package session

import (
	"context"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

// DefaultTick is the frame interval used by Run, about 60 frames per second.
const DefaultTick = 16667 * time.Microsecond

type options struct {
	source  engine.PieceSource
	ghost   bool
	board   *engine.Board
	tick    time.Duration
	systems []loop.System
}

// Option configures a Session.
type Option func(*options)

// WithSource sets the piece source for the game.
func WithSource(src engine.PieceSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithGhost toggles the ghost projection in snapshots.
func WithGhost(on bool) Option {
	return func(o *options) {
		o.ghost = on
	}
}

// WithBoard starts the first round on a prepared board.
func WithBoard(b engine.Board) Option {
	return func(o *options) {
		o.board = &b
	}
}

// WithTick sets the frame interval used by Run.
func WithTick(d time.Duration) Option {
	return func(o *options) {
		o.tick = d
	}
}

// WithSystems registers extra systems after the built-in ones, typically a
// presenter that draws the Display resource.
func WithSystems(systems ...loop.System) Option {
	return func(o *options) {
		o.systems = append(o.systems, systems...)
	}
}

// Session owns a game, its World and the scheduler driving it. Submit,
// Step and Run must be called from one goroutine; Run serializes actions
// received on its channel with the frame ticks.
type Session struct {
	world     *loop.World
	scheduler *loop.Scheduler
	game      *engine.Game
	inputs    *Inputs
	events    *Events
	display   *Display
	tick      time.Duration
}

// New builds a session with a fresh game and the built-in systems.
func New(opts ...Option) *Session {
	o := options{ghost: true, tick: DefaultTick}
	for _, opt := range opts {
		opt(&o)
	}

	world := loop.NewWorld()
	events := loop.AddResource(world, Events{})

	gameOpts := []engine.Option{
		engine.WithGhost(o.ghost),
		engine.WithListener(events.record),
	}
	if o.source != nil {
		gameOpts = append(gameOpts, engine.WithSource(o.source))
	}
	if o.board != nil {
		gameOpts = append(gameOpts, engine.WithBoard(*o.board))
	}
	game := engine.NewGame(gameOpts...)

	s := &Session{
		world:   world,
		game:    game,
		events:  events,
		inputs:  loop.AddResource(world, Inputs{}),
		display: loop.AddResource(world, Display{Snapshot: game.Snapshot()}),
		tick:    o.tick,
	}
	loop.AddResource(world, Match{Game: game})

	s.scheduler = loop.NewScheduler(world)
	s.scheduler.Register(&InputSystem{})
	s.scheduler.Register(&ClockSystem{})
	s.scheduler.Register(&EventSystem{})
	s.scheduler.Register(&DisplaySystem{})
	for _, sys := range o.systems {
		s.scheduler.Register(sys)
	}
	return s
}

// Game returns the session's game.
func (s *Session) Game() *engine.Game { return s.game }

// World returns the session's resource table.
func (s *Session) World() *loop.World { return s.world }

// Scheduler returns the scheduler driving the session.
func (s *Session) Scheduler() *loop.Scheduler { return s.scheduler }

// Submit queues an action for the next frame.
func (s *Session) Submit(a engine.Action) {
	s.inputs.Push(a)
}

// OnEvent registers fn to receive engine events at the end of the frame
// that raised them.
func (s *Session) OnEvent(fn func(engine.Event)) {
	s.events.handlers = append(s.events.handlers, fn)
}

// Step runs one frame with the given elapsed time.
func (s *Session) Step(dt time.Duration) {
	s.scheduler.Once(dt)
}

// Snapshot returns the display snapshot from the most recent frame.
func (s *Session) Snapshot() engine.Snapshot {
	return s.display.Snapshot
}

// Run steps the session every tick until ctx is cancelled, queuing actions
// received on inputs between frames. A nil channel disables input.
func (s *Session) Run(ctx context.Context, inputs <-chan engine.Action) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case a, ok := <-inputs:
			if !ok {
				inputs = nil
				continue
			}
			s.Submit(a)
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			s.Step(dt)
		}
	}
}
