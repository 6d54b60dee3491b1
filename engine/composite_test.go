package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

func TestComposite(t *testing.T) {
	t.Run("does not modify the board", func(t *testing.T) {
		b := engine.MustParseBoard("ZZZ.......")
		before := b
		engine.Composite(&b, engine.NewPiece(engine.PieceT), true)
		assert.Equal(t, before, b)
	})

	t.Run("ghost marks the landing rows", func(t *testing.T) {
		b := engine.NewBoard()
		out := engine.CompositeForDisplay(&b, engine.NewPiece(engine.PieceI))

		assert.Equal(t, 4, out.Count(engine.Ghost))
		assert.Equal(t, 4, out.Count(engine.CellI))
		for x := 3; x <= 6; x++ {
			assert.Equal(t, engine.CellI, out.At(x, 1))
			assert.Equal(t, engine.Ghost, out.At(x, 19))
		}
	})

	t.Run("no ghost for a grounded piece", func(t *testing.T) {
		b := engine.NewBoard()
		out := engine.CompositeForDisplay(&b, engine.NewPiece(engine.PieceI).Moved(0, 18))
		assert.Equal(t, 0, out.Count(engine.Ghost))
		assert.Equal(t, 4, out.Count(engine.CellI))
	})

	t.Run("piece overwrites its own ghost", func(t *testing.T) {
		b := engine.NewBoard()
		out := engine.CompositeForDisplay(&b, engine.NewPiece(engine.PieceO).Moved(0, 17))
		assert.Equal(t, 4, out.Count(engine.CellO))
		assert.Equal(t, 2, out.Count(engine.Ghost))
		assert.Equal(t, engine.Ghost, out.At(3, 19))
		assert.Equal(t, engine.CellO, out.At(3, 18))
	})

	t.Run("cells above the board are skipped", func(t *testing.T) {
		b := engine.NewBoard()
		out := engine.Composite(&b, engine.NewPiece(engine.PieceO).Moved(0, -1), false)
		assert.Equal(t, 2, out.Count(engine.CellO))
		assert.Equal(t, engine.CellO, out.At(3, 0))
	})

	t.Run("lock never writes a ghost", func(t *testing.T) {
		b := engine.NewBoard()
		out := engine.Lock(&b, engine.NewPiece(engine.PieceS))
		assert.Equal(t, 0, out.Count(engine.Ghost))
		assert.Equal(t, 4, out.Count(engine.CellS))
	})
}

func TestGhostNeverCoversOccupiedCells(t *testing.T) {
	b := engine.MustParseBoard(
		"......L...",
		"..S...LL..",
		".SS..TTT.J",
		"ZS.OO.IIIJ",
		"ZZ.OO..IJJ",
	)
	for _, p := range engine.PieceTypes {
		piece := engine.NewPiece(p)
		for dx := -3; dx <= 6; dx++ {
			candidate := piece.Moved(dx, 0)
			if engine.Collides(candidate, &b, engine.Point{}) {
				continue
			}
			out := engine.CompositeForDisplay(&b, candidate)
			for pt, c := range out.Cells() {
				if c == engine.Ghost {
					assert.Equal(t, engine.Empty, b.At(pt.X, pt.Y), "%s at dx=%d ghost over %v", p, dx, pt)
				}
			}
		}
	}
}
