package engine

// PreviewSize is the edge length of the next-piece preview grid.
const PreviewSize = 4

// Preview lays out a piece type's template on a 4×4 grid for a next-piece
// display. O is pushed one column right so it sits centered; the other
// templates keep their own coordinates.
func Preview(p PieceType) [PreviewSize][PreviewSize]Cell {
	var grid [PreviewSize][PreviewSize]Cell
	shift := 0
	if p == PieceO {
		shift = 1
	}
	label := p.Cell()
	for off := range Template(p).Filled() {
		x := off.X + shift
		if x < PreviewSize && off.Y < PreviewSize {
			grid[off.Y][x] = label
		}
	}
	return grid
}
