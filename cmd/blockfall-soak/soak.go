package main

import (
	"context"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
)

// frameTime is the simulated time between frames. Gravity follows it, not
// the wall clock, so a seed replays the same games.
const frameTime = 16 * time.Millisecond

// maxViolations caps how many violations the report lists.
const maxViolations = 50

// bot picks one action per frame, favouring hard drops so games end.
type bot struct {
	rng *rand.Rand
}

func newBot(seed uint64) *bot {
	return &bot{rng: rand.New(rand.NewPCG(seed, ^seed))}
}

var botMoves = []engine.Action{
	engine.MoveLeft,
	engine.MoveRight,
	engine.RotateCW,
	engine.RotateCCW,
	engine.SoftDrop,
}

func (b *bot) next() (engine.Action, bool) {
	switch n := b.rng.IntN(10); {
	case n < 3:
		return 0, false
	case n < 5:
		return engine.HardDrop, true
	default:
		return botMoves[b.rng.IntN(len(botMoves))], true
	}
}

// checkSystem verifies the invariants after each frame and records the
// game totals.
type checkSystem struct {
	Match loop.Resource[session.Match]

	report *Report
	prev   engine.Snapshot
	fresh  bool
}

func (c *checkSystem) Execute(frame *loop.Frame) {
	match := c.Match.Get()
	if match == nil {
		return
	}
	g := match.Game
	snap := g.Snapshot()
	board := g.Board()

	if !c.fresh {
		for _, v := range checkFrame(c.prev, snap, &board) {
			c.report.violation(frame.Index, v)
		}
	}
	c.prev, c.fresh = snap, false
}

func soak(ctx context.Context, cfg config.Config, games int) *Report {
	report := &Report{
		Seed:       cfg.Seed,
		Randomizer: string(cfg.Randomizer),
		GameLimit:  games,
	}
	if deadline, ok := ctx.Deadline(); ok {
		report.Duration = time.Until(deadline)
	}

	checker := &checkSystem{report: report, fresh: true}
	s := session.New(
		session.WithSource(cfg.PieceSource()),
		session.WithSystems(checker),
	)
	b := newBot(cfg.Seed)

	s.OnEvent(func(e engine.Event) {
		switch e.Kind {
		case engine.EventLocked:
			report.Pieces++
		case engine.EventCleared:
			report.Lines += e.Rows
			report.Clears[e.Rows-1]++
		case engine.EventGameOver:
			report.finishGame(e)
			s.Submit(engine.Reset)
			// The reset lands next frame; its totals restart from zero.
			checker.fresh = true
		}
	})

	runtime.ReadMemStats(&report.MemStatsStart)
	start := time.Now()

Loop:
	for games == 0 || report.Games < games {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		if a, ok := b.next(); ok {
			s.Submit(a)
		}
		updateStart := time.Now()
		s.Step(frameTime)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.Frames++
	}

	report.TotalTime = time.Since(start)
	report.UpdateTime.Finalize()
	report.Systems = s.Scheduler().Stats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)
	return report
}
