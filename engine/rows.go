package engine

// ClearRows removes every complete row in a single top-to-bottom pass. The
// retained rows keep their order and settle at the bottom; one empty row is
// inserted at the top per removed row.
func ClearRows(b Board) (Board, int) {
	kept := make([][Width]Cell, 0, Height)
	cleared := 0
	for y := range b {
		if b.RowComplete(y) {
			cleared++
			continue
		}
		kept = append(kept, b[y])
	}
	if cleared == 0 {
		return b, 0
	}

	var out Board
	copy(out[cleared:], kept)
	return out, cleared
}

// LockAndClear merges p into b and clears the rows it completed.
func LockAndClear(b *Board, p Piece) (Board, int) {
	return ClearRows(Lock(b, p))
}
