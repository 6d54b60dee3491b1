package engine

import (
	"fmt"
	"iter"
	"strings"
)

const (
	Width  = 10
	Height = 20
)

// Board is the grid of locked cells. Row 0 is the top (spawn side) and row
// Height-1 the floor. Being an array, a Board is always exactly Height×Width
// and assigning it makes an independent copy.
type Board [Height][Width]Cell

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// ParseBoard builds a board from text rows using the runes of Cell.Rune.
// The rows fill the bottom of the board; missing rows at the top stay empty.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) > Height {
		return b, fmt.Errorf("board has %d rows, at most %d allowed", len(rows), Height)
	}
	top := Height - len(rows)
	for i, line := range rows {
		runes := []rune(line)
		if len(runes) != Width {
			return b, fmt.Errorf("row %d: %q is %d wide, want %d", i, line, len(runes), Width)
		}
		for x, r := range runes {
			cell, ok := cellFromRune(r)
			if !ok {
				return b, fmt.Errorf("row %d: unknown cell %q", i, r)
			}
			b[top+i][x] = cell
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard that panics on error. Intended for fixtures.
func MustParseBoard(rows ...string) Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// At returns the cell at column x, row y.
func (b Board) At(x, y int) Cell {
	return b[y][x]
}

// Contains reports whether (x, y) lies on the board.
func Contains(pt Point) bool {
	return pt.X >= 0 && pt.X < Width && pt.Y >= 0 && pt.Y < Height
}

// RowComplete reports whether every cell in row y is occupied.
func (b Board) RowComplete(y int) bool {
	for _, c := range b[y] {
		if !c.Occupied() {
			return false
		}
	}
	return true
}

// Cells yields every coordinate of the board with its cell, row by row.
func (b Board) Cells() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for y := range b {
			for x, c := range b[y] {
				if !yield(Point{X: x, Y: y}, c) {
					return
				}
			}
		}
	}
}

// Count returns how many cells hold the given label.
func (b Board) Count(label Cell) int {
	n := 0
	for _, c := range b.Cells() {
		if c == label {
			n++
		}
	}
	return n
}

func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for y := range b {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range b[y] {
			sb.WriteRune(c.Rune())
		}
	}
	return sb.String()
}
