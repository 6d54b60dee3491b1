package engine

import (
	"fmt"
	"iter"
)

//go:generate go tool stringer -type=PieceType -trimprefix=Piece

// PieceType identifies one of the seven tetrominoes, or the empty placeholder.
type PieceType int

const (
	PieceNone PieceType = iota
	PieceI
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// PieceTypes lists the playable tetrominoes in catalog order.
var PieceTypes = [...]PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}

// Cell returns the label a piece of this type stamps onto the board.
func (p PieceType) Cell() Cell {
	switch p {
	case PieceI:
		return CellI
	case PieceJ:
		return CellJ
	case PieceL:
		return CellL
	case PieceO:
		return CellO
	case PieceS:
		return CellS
	case PieceT:
		return CellT
	case PieceZ:
		return CellZ
	case PieceNone:
		return Empty
	}
	panic(fmt.Sprintf("engine: piece type %d is not in the catalog", int(p)))
}

// Point is an (x, y) coordinate or offset. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// MaxShapeSize is the edge length of the largest template (I).
const MaxShapeSize = 4

// Shape is a square grid of cell labels. Shapes are values: copying one
// copies its cells, and two shapes compare equal with == when their size and
// cells match.
type Shape struct {
	size  int
	cells [MaxShapeSize][MaxShapeSize]Cell
}

// Size returns the edge length of the shape grid.
func (s Shape) Size() int {
	return s.size
}

// At returns the cell at the given row and column of the shape grid.
func (s Shape) At(row, col int) Cell {
	return s.cells[row][col]
}

// Filled yields the (column, row) offset of every non-empty cell, row-major.
func (s Shape) Filled() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for row := 0; row < s.size; row++ {
			for col := 0; col < s.size; col++ {
				if s.cells[row][col] == Empty {
					continue
				}
				if !yield(Point{X: col, Y: row}) {
					return
				}
			}
		}
	}
}

func (s Shape) String() string {
	buf := make([]rune, 0, s.size*(s.size+1))
	for row := 0; row < s.size; row++ {
		if row > 0 {
			buf = append(buf, '\n')
		}
		for col := 0; col < s.size; col++ {
			buf = append(buf, s.cells[row][col].Rune())
		}
	}
	return string(buf)
}

// mustShape builds a template from row strings. Rows must form a square.
func mustShape(rows ...string) Shape {
	if len(rows) == 0 || len(rows) > MaxShapeSize {
		panic(fmt.Sprintf("engine: template has %d rows", len(rows)))
	}
	s := Shape{size: len(rows)}
	for r, line := range rows {
		if len(line) != s.size {
			panic(fmt.Sprintf("engine: template row %q is not %d wide", line, s.size))
		}
		for c, ch := range line {
			cell, ok := cellFromRune(ch)
			if !ok || cell == Ghost {
				panic(fmt.Sprintf("engine: bad template cell %q", ch))
			}
			s.cells[r][c] = cell
		}
	}
	return s
}

var catalog = map[PieceType]Shape{
	PieceNone: mustShape("."),
	PieceI: mustShape(
		"....",
		"IIII",
		"....",
		"....",
	),
	PieceJ: mustShape(
		".J.",
		".J.",
		"JJ.",
	),
	PieceL: mustShape(
		".L.",
		".L.",
		".LL",
	),
	PieceO: mustShape(
		"OO",
		"OO",
	),
	PieceS: mustShape(
		".SS",
		"SS.",
		"...",
	),
	PieceT: mustShape(
		"...",
		"TTT",
		".T.",
	),
	PieceZ: mustShape(
		"ZZ.",
		".ZZ",
		"...",
	),
}

// Template returns the unrotated shape for a piece type. It panics for a
// value outside the catalog.
func Template(p PieceType) Shape {
	s, ok := catalog[p]
	if !ok {
		panic(fmt.Sprintf("engine: piece type %d is not in the catalog", int(p)))
	}
	return s
}

// SpawnPoint is where new pieces place their shape's top-left corner.
var SpawnPoint = Point{X: 3, Y: 0}

// Piece is the active, falling tetromino. Every transform returns a new
// Piece; the receiver is never modified.
type Piece struct {
	Type  PieceType
	Shape Shape
	Pos   Point
}

// NewPiece returns a piece of type p at the spawn point in its template orientation.
func NewPiece(p PieceType) Piece {
	if p == PieceNone {
		panic("engine: cannot spawn the empty placeholder")
	}
	return Piece{Type: p, Shape: Template(p), Pos: SpawnPoint}
}

// Moved returns a copy of the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Pos = p.Pos.Add(Point{X: dx, Y: dy})
	return p
}

// Cells yields the absolute board coordinate of every non-empty shape cell.
func (p Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for off := range p.Shape.Filled() {
			if !yield(p.Pos.Add(off)) {
				return
			}
		}
	}
}
