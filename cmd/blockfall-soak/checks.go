package main

import (
	"fmt"

	"github.com/plus3/blockfall/engine"
)

// checkFrame compares consecutive snapshots of one round and returns a
// description of every broken invariant.
func checkFrame(prev, cur engine.Snapshot, locked *engine.Board) []string {
	var out []string
	fail := func(format string, args ...any) {
		out = append(out, fmt.Sprintf(format, args...))
	}

	// A freshly spawned piece may overlap; the next step ends the game.
	spawned := cur.Current == engine.NewPiece(cur.Current.Type)
	if cur.State == engine.Running && !spawned && engine.Collides(cur.Current, locked, engine.Point{}) {
		fail("active %s at (%d, %d) overlaps the board", cur.Current.Type, cur.Current.Pos.X, cur.Current.Pos.Y)
	}
	if n := locked.Count(engine.Ghost); n > 0 {
		fail("board holds %d ghost cells", n)
	}
	for y := range engine.Height {
		if locked.RowComplete(y) {
			fail("row %d is full after clearing", y)
		}
	}

	if cur.Score < prev.Score {
		fail("score fell from %d to %d", prev.Score, cur.Score)
	}
	if cur.Lines < prev.Lines {
		fail("lines fell from %d to %d", prev.Lines, cur.Lines)
	}
	if cur.Level < prev.Level || cur.Level > prev.Level+1 {
		fail("level moved from %d to %d", prev.Level, cur.Level)
	}
	if cur.Level > cur.Lines/engine.LinesPerLevel+1 {
		fail("level %d ahead of %d lines", cur.Level, cur.Lines)
	}
	if want := engine.DropInterval(cur.Level); cur.DropInterval != want {
		fail("level %d drops every %s, want %s", cur.Level, cur.DropInterval, want)
	}
	if prev.State == engine.GameOver && cur.State != engine.GameOver {
		fail("left game over without a reset")
	}
	return out
}
