package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

func TestTemplates(t *testing.T) {
	sizes := map[engine.PieceType]int{
		engine.PieceI: 4,
		engine.PieceO: 2,
		engine.PieceJ: 3,
		engine.PieceL: 3,
		engine.PieceS: 3,
		engine.PieceT: 3,
		engine.PieceZ: 3,
	}
	for p, size := range sizes {
		t.Run(p.String(), func(t *testing.T) {
			shape := engine.Template(p)
			assert.Equal(t, size, shape.Size())

			filled := 0
			for off := range shape.Filled() {
				assert.Equal(t, p.Cell(), shape.At(off.Y, off.X))
				filled++
			}
			assert.Equal(t, 4, filled, "a tetromino has four cells")
		})
	}

	assert.Equal(t, "....\nIIII\n....\n....", engine.Template(engine.PieceI).String())
	assert.Equal(t, "...\nTTT\n.T.", engine.Template(engine.PieceT).String())
	assert.Equal(t, 1, engine.Template(engine.PieceNone).Size())
}

func TestCatalogContract(t *testing.T) {
	assert.Panics(t, func() { engine.Template(engine.PieceType(42)) })
	assert.Panics(t, func() { engine.PieceType(42).Cell() })
	assert.Panics(t, func() { engine.NewPiece(engine.PieceNone) })

	assert.Equal(t, "I", engine.PieceI.String())
	assert.Equal(t, "None", engine.PieceNone.String())
	assert.Equal(t, "PieceType(42)", engine.PieceType(42).String())
}

func TestNewPiece(t *testing.T) {
	p := engine.NewPiece(engine.PieceL)
	assert.Equal(t, engine.SpawnPoint, p.Pos)
	assert.Equal(t, engine.Template(engine.PieceL), p.Shape)

	moved := p.Moved(-1, 2)
	assert.Equal(t, engine.Point{X: 2, Y: 2}, moved.Pos)
	assert.Equal(t, engine.SpawnPoint, p.Pos, "Moved returns a copy")

	var cells []engine.Point
	for pt := range engine.NewPiece(engine.PieceO).Cells() {
		cells = append(cells, pt)
	}
	assert.Equal(t, []engine.Point{{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 1}, {X: 4, Y: 1}}, cells)
}

func TestPreview(t *testing.T) {
	o := engine.Preview(engine.PieceO)
	assert.Equal(t, engine.Empty, o[0][0])
	assert.Equal(t, engine.CellO, o[0][1])
	assert.Equal(t, engine.CellO, o[1][2])
	assert.Equal(t, engine.Empty, o[0][3])

	i := engine.Preview(engine.PieceI)
	for x := 0; x < engine.PreviewSize; x++ {
		assert.Equal(t, engine.CellI, i[1][x])
		assert.Equal(t, engine.Empty, i[0][x])
	}

	j := engine.Preview(engine.PieceJ)
	assert.Equal(t, engine.CellJ, j[2][0])
	assert.Equal(t, engine.Empty, j[2][2])
}
