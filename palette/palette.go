// Package palette maps board cells to display colors for every host.
package palette

import (
	"image/color"

	"github.com/plus3/blockfall/engine"
)

var (
	Background = rgb(0x11, 0x18, 0x27)
	Frame      = rgb(0x37, 0x41, 0x51)
	Outline    = rgb(0x4b, 0x55, 0x63)
	Text       = rgb(0xe5, 0xe7, 0xeb)
)

var cells = [...]color.RGBA{
	engine.Empty: Background,
	engine.CellI: rgb(0x06, 0xb6, 0xd4),
	engine.CellJ: rgb(0x3b, 0x82, 0xf6),
	engine.CellL: rgb(0xf9, 0x73, 0x16),
	engine.CellO: rgb(0xea, 0xb3, 0x08),
	engine.CellS: rgb(0x22, 0xc5, 0x5e),
	engine.CellT: rgb(0xa8, 0x55, 0xf7),
	engine.CellZ: rgb(0xef, 0x44, 0x44),
	engine.Ghost: Frame,
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Cell returns the fill color for c. Unknown labels draw as empty.
func Cell(c engine.Cell) color.RGBA {
	if int(c) >= len(cells) {
		return Background
	}
	return cells[c]
}

// Piece returns the fill color for a piece type.
func Piece(p engine.PieceType) color.RGBA {
	return Cell(p.Cell())
}

// Bordered reports whether c is drawn with an Outline border.
func Bordered(c engine.Cell) bool {
	return c == engine.Ghost
}
