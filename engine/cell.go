package engine

import "fmt"

// Cell is the label stored in one board or shape square.
type Cell uint8

const (
	Empty Cell = iota
	CellI
	CellJ
	CellL
	CellO
	CellS
	CellT
	CellZ
	// Ghost marks the landing preview of the active piece. It only ever appears
	// in composited display boards and never counts as occupied.
	Ghost
)

// Occupied reports whether the cell holds tetromino material.
func (c Cell) Occupied() bool {
	switch c {
	case CellI, CellJ, CellL, CellO, CellS, CellT, CellZ:
		return true
	case Empty, Ghost:
		return false
	}
	panic(fmt.Sprintf("engine: invalid cell %d", uint8(c)))
}

// Piece returns the piece type a locked or falling cell belongs to.
func (c Cell) Piece() (PieceType, bool) {
	if !c.Occupied() {
		return PieceNone, false
	}
	return PieceType(c), true
}

// Rune is the single character used by text renderings of a board.
func (c Cell) Rune() rune {
	switch c {
	case Empty:
		return '.'
	case Ghost:
		return '+'
	case CellI:
		return 'I'
	case CellJ:
		return 'J'
	case CellL:
		return 'L'
	case CellO:
		return 'O'
	case CellS:
		return 'S'
	case CellT:
		return 'T'
	case CellZ:
		return 'Z'
	}
	return '?'
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Ghost:
		return "ghost"
	}
	return string(c.Rune())
}

// cellFromRune is the inverse of Rune. A space is accepted as Empty.
func cellFromRune(r rune) (Cell, bool) {
	switch r {
	case '.', ' ':
		return Empty, true
	case '+':
		return Ghost, true
	case 'I':
		return CellI, true
	case 'J':
		return CellJ, true
	case 'L':
		return CellL, true
	case 'O':
		return CellO, true
	case 'S':
		return CellS, true
	case 'T':
		return CellT, true
	case 'Z':
		return CellZ, true
	}
	return Empty, false
}
