package engine

// Collides reports whether p, translated by offset, would overlap an
// occupied board cell or leave the board through a wall or the floor.
// Cells above the top row are allowed so pieces can spawn partly hidden.
func Collides(p Piece, b *Board, offset Point) bool {
	for pt := range p.Cells() {
		pt = pt.Add(offset)
		if pt.X < 0 || pt.X >= Width || pt.Y >= Height {
			return true
		}
		if pt.Y >= 0 && b[pt.Y][pt.X].Occupied() {
			return true
		}
	}
	return false
}

// DropDistance returns how many rows p can fall before it is blocked.
func DropDistance(p Piece, b *Board) int {
	dy := 0
	for !Collides(p, b, Point{Y: dy + 1}) {
		dy++
	}
	return dy
}
