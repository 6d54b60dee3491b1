package engine

import (
	"fmt"
	"time"
)

//go:generate go tool stringer -type=State -output=state_string.go
//go:generate go tool stringer -type=Action -output=action_string.go
//go:generate go tool stringer -type=EventKind -trimprefix=Event -output=eventkind_string.go

// State is the lifecycle phase of a game.
type State int

const (
	Running State = iota
	Paused
	GameOver
)

// Action is a discrete player input.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	SoftDrop
	HardDrop
	RotateCW
	RotateCCW
	TogglePause
	Reset
)

// EventKind classifies an Event.
type EventKind int

const (
	EventLocked EventKind = iota
	EventCleared
	EventLevelUp
	EventGameOver
	EventReset
)

// Event reports a progression change to the game's listener. Score, Level
// and Lines are the values after the change.
type Event struct {
	Kind  EventKind
	Piece PieceType
	Rows  int
	Score int
	Level int
	Lines int
}

// Snapshot is everything a presenter needs to draw one frame.
type Snapshot struct {
	Board        Board
	Current      Piece
	Next         Piece
	State        State
	Score        int
	Level        int
	Lines        int
	Pieces       int
	DropInterval time.Duration
}

// Option configures a Game.
type Option func(*Game)

// WithSource sets the piece source. The default is a time-seeded UniformSource.
func WithSource(src PieceSource) Option {
	return func(g *Game) {
		g.source = src
	}
}

// WithListener registers fn to receive every Event synchronously.
func WithListener(fn func(Event)) Option {
	return func(g *Game) {
		g.listener = fn
	}
}

// WithGhost toggles the ghost projection in snapshots. It is on by default.
func WithGhost(on bool) Option {
	return func(g *Game) {
		g.ghost = on
	}
}

// WithBoard starts the first round on b instead of an empty board. Reset
// always returns to an empty board. A lock that completes more than four
// rows of b at once panics, as LineReward does.
func WithBoard(b Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

// Game orchestrates one play session: spawning, gravity, input, locking,
// scoring and level progression. It is not safe for concurrent use; the
// host serializes ticks and inputs.
type Game struct {
	source   PieceSource
	listener func(Event)
	ghost    bool

	board    Board
	current  Piece
	next     Piece
	state    State
	score    int
	level    int
	lines    int
	pieces   int
	interval time.Duration
	elapsed  time.Duration
}

// NewGame starts a running game.
func NewGame(opts ...Option) *Game {
	g := &Game{ghost: true}
	for _, opt := range opts {
		opt(g)
	}
	if g.source == nil {
		g.source = NewUniformSource(uint64(time.Now().UnixNano()))
	}
	board := g.board
	g.restart()
	g.board = board
	return g
}

func (g *Game) restart() {
	g.board = NewBoard()
	g.state = Running
	g.score = 0
	g.level = 1
	g.lines = 0
	g.pieces = 0
	g.interval = DropInterval(1)
	g.elapsed = 0
	g.current = g.spawn()
	g.next = g.spawn()
}

func (g *Game) spawn() Piece {
	return NewPiece(g.source.Next())
}

func (g *Game) emit(kind EventKind, piece PieceType, rows int) {
	if g.listener == nil {
		return
	}
	g.listener(Event{
		Kind:  kind,
		Piece: piece,
		Rows:  rows,
		Score: g.score,
		Level: g.level,
		Lines: g.lines,
	})
}

func (g *Game) Board() Board                { return g.board }
func (g *Game) Current() Piece              { return g.current }
func (g *Game) Next() Piece                 { return g.next }
func (g *Game) State() State                { return g.state }
func (g *Game) Score() int                  { return g.score }
func (g *Game) Level() int                  { return g.level }
func (g *Game) Lines() int                  { return g.lines }
func (g *Game) Pieces() int                 { return g.pieces }
func (g *Game) DropInterval() time.Duration { return g.interval }

// Snapshot composites the active piece onto the board for display.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:        Composite(&g.board, g.current, g.ghost),
		Current:      g.current,
		Next:         g.next,
		State:        g.state,
		Score:        g.score,
		Level:        g.level,
		Lines:        g.lines,
		Pieces:       g.pieces,
		DropInterval: g.interval,
	}
}

// Advance feeds elapsed wall time into the gravity accumulator. Once the
// accumulated time exceeds the level's drop interval one descent step runs
// and the accumulator restarts. It reports whether a step ran.
func (g *Game) Advance(dt time.Duration) bool {
	if g.state != Running {
		return false
	}
	g.elapsed += dt
	if g.elapsed <= g.interval {
		return false
	}
	g.elapsed = 0
	g.step()
	return true
}

// Apply handles one input and reports whether it changed the game.
// Piece inputs are ignored unless the game is running.
func (g *Game) Apply(a Action) bool {
	switch a {
	case TogglePause:
		return g.togglePause()
	case Reset:
		g.Reset()
		return true
	case MoveLeft, MoveRight, SoftDrop, HardDrop, RotateCW, RotateCCW:
	default:
		panic(fmt.Sprintf("engine: unknown action %d", int(a)))
	}

	if g.state != Running {
		return false
	}

	switch a {
	case MoveLeft:
		return g.shift(-1)
	case MoveRight:
		return g.shift(1)
	case SoftDrop:
		g.step()
	case HardDrop:
		g.current = g.current.Moved(0, DropDistance(g.current, &g.board))
		g.step()
	case RotateCW:
		return g.rotate(Clockwise)
	case RotateCCW:
		return g.rotate(CounterClockwise)
	}
	return true
}

// Reset starts a new round on an empty board from any state.
func (g *Game) Reset() {
	g.restart()
	g.emit(EventReset, PieceNone, 0)
}

func (g *Game) togglePause() bool {
	switch g.state {
	case Running:
		g.state = Paused
	case Paused:
		g.state = Running
	default:
		return false
	}
	return true
}

func (g *Game) shift(dx int) bool {
	if Collides(g.current, &g.board, Point{X: dx}) {
		return false
	}
	g.current = g.current.Moved(dx, 0)
	return true
}

func (g *Game) rotate(dir Direction) bool {
	candidate := Rotate(g.current, dir)
	if Collides(candidate, &g.board, Point{}) {
		return false
	}
	g.current = candidate
	return true
}

// step is one gravity tick: level check, then descend or lock. A clear
// scores at the level the step started on.
func (g *Game) step() {
	level := g.level
	if g.lines >= g.level*LinesPerLevel {
		g.level++
		g.interval = DropInterval(g.level)
		g.emit(EventLevelUp, PieceNone, 0)
	}

	if !Collides(g.current, &g.board, Point{Y: 1}) {
		g.current = g.current.Moved(0, 1)
		return
	}

	if g.current.Pos.Y < 1 {
		g.state = GameOver
		g.emit(EventGameOver, g.current.Type, 0)
		return
	}

	g.lock(level)
}

func (g *Game) lock(level int) {
	locked := g.current
	board, rows := LockAndClear(&g.board, locked)
	g.board = board
	g.pieces++
	g.emit(EventLocked, locked.Type, rows)

	if rows > 0 {
		g.score += LineReward(rows, level)
		g.lines += rows
		g.emit(EventCleared, locked.Type, rows)
	}

	g.current = g.next
	g.next = g.spawn()
}
