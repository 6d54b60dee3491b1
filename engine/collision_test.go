package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	empty := engine.NewBoard()
	blocked := engine.NewBoard()
	blocked[1][4] = engine.CellT
	ghosted := engine.NewBoard()
	ghosted[1][4] = engine.Ghost

	i := engine.NewPiece(engine.PieceI)

	tests := []struct {
		name   string
		piece  engine.Piece
		board  engine.Board
		offset engine.Point
		want   bool
	}{
		{"spawn on empty board", i, empty, engine.Point{}, false},
		{"left edge inside", i, empty, engine.Point{X: -3}, false},
		{"left wall", i, empty, engine.Point{X: -4}, true},
		{"right edge inside", i, empty, engine.Point{X: 3}, false},
		{"right wall", i, empty, engine.Point{X: 4}, true},
		{"resting on floor", i.Moved(0, 18), empty, engine.Point{}, false},
		{"floor", i.Moved(0, 18), empty, engine.Point{Y: 1}, true},
		{"above the top is allowed", engine.NewPiece(engine.PieceO).Moved(0, -1), empty, engine.Point{}, false},
		{"occupied cell", i, blocked, engine.Point{}, true},
		{"ghost is not occupied", i, ghosted, engine.Point{}, false},
		{"empty shape cells may leave the board", engine.NewPiece(engine.PieceJ).Moved(5, 0), empty, engine.Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Collides(tt.piece, &tt.board, tt.offset))
		})
	}
}

func TestDropDistance(t *testing.T) {
	b := engine.NewBoard()
	assert.Equal(t, 18, engine.DropDistance(engine.NewPiece(engine.PieceI), &b))
	assert.Equal(t, 18, engine.DropDistance(engine.NewPiece(engine.PieceO), &b))

	b = engine.MustParseBoard("...Z......")
	assert.Equal(t, 17, engine.DropDistance(engine.NewPiece(engine.PieceO), &b))
}
