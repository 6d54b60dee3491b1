package main

import "github.com/plus3/blockfall/engine"

const (
	margin       = 1
	sidebarCells = 6
)

// layout places the board and sidebar in cell units scaled to pixels.
type layout struct {
	cell int
}

func newLayout(scale int) layout {
	return layout{cell: scale}
}

func (l layout) windowSize() (int, int) {
	w := (margin + engine.Width + margin + sidebarCells + margin) * l.cell
	h := (margin + engine.Height + margin) * l.cell
	return w, h
}

func (l layout) boardCell(pt engine.Point) (float32, float32) {
	return float32((margin + pt.X) * l.cell), float32((margin + pt.Y) * l.cell)
}

func (l layout) sidebar() (int, int) {
	return (margin + engine.Width + margin) * l.cell, margin * l.cell
}
