package engine

// Composite returns a copy of b with p stamped onto it. With ghost set, the
// landing position of p is first marked with Ghost wherever the board is
// empty. Cells outside the board (a piece still spawning above row 0) are
// skipped. b is never modified.
func Composite(b *Board, p Piece, ghost bool) Board {
	out := *b

	if ghost {
		if dy := DropDistance(p, b); dy > 0 {
			for pt := range p.Moved(0, dy).Cells() {
				if Contains(pt) && out[pt.Y][pt.X] == Empty {
					out[pt.Y][pt.X] = Ghost
				}
			}
		}
	}

	label := p.Type.Cell()
	for pt := range p.Cells() {
		if Contains(pt) {
			out[pt.Y][pt.X] = label
		}
	}
	return out
}

// CompositeForDisplay is the render-ready board: the active piece and its ghost.
func CompositeForDisplay(b *Board, p Piece) Board {
	return Composite(b, p, true)
}

// Lock returns b with p permanently merged into it.
func Lock(b *Board, p Piece) Board {
	return Composite(b, p, false)
}
