package engine

import "fmt"

// Direction is the sense of a quarter turn.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Rotate returns a candidate piece with its shape turned a quarter in dir.
// Position and type are unchanged. The result is not validated; callers
// check it with Collides at a zero offset before accepting it.
func Rotate(p Piece, dir Direction) Piece {
	n := p.Shape.size
	var cells [MaxShapeSize][MaxShapeSize]Cell
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch dir {
			case Clockwise:
				cells[r][c] = p.Shape.cells[n-1-c][r]
			case CounterClockwise:
				cells[r][c] = p.Shape.cells[c][n-1-r]
			default:
				panic(fmt.Sprintf("engine: invalid rotation direction %d", int(dir)))
			}
		}
	}
	p.Shape = Shape{size: n, cells: cells}
	return p
}
