package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/palette"
	"github.com/plus3/blockfall/session"
)

// Each board cell is two columns wide so squares look square.
const (
	cellWidth = 2
	boardLeft = 2
	boardTop  = 1
	sideLeft  = boardLeft + engine.Width*cellWidth + 4
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	frameStyle = tcell.StyleDefault.Foreground(rgb(palette.Outline)).Background(rgb(palette.Background))
	textStyle  = tcell.StyleDefault.Foreground(rgb(palette.Text)).Background(rgb(palette.Background))
)

// renderer draws the display snapshot once per frame.
type renderer struct {
	screen tcell.Screen
	// last is the snapshot drawn most recently, to skip redundant redraws.
	last  engine.Snapshot
	drawn bool
}

func (r *renderer) Execute(frame *loop.Frame) {
	snap, ok := session.Snapshot(frame.World)
	if !ok || (r.drawn && snap == r.last) {
		return
	}
	r.last, r.drawn = snap, true

	r.screen.Clear()
	r.drawBoard(&snap)
	r.drawSidebar(&snap)
	r.screen.Show()
}

func (r *renderer) drawCell(x, y int, c engine.Cell) {
	style := tcell.StyleDefault.Background(rgb(palette.Cell(c)))
	left, right := ' ', ' '
	if palette.Bordered(c) {
		style = frameStyle
		left, right = '[', ']'
	}
	r.screen.SetContent(x, y, left, nil, style)
	r.screen.SetContent(x+1, y, right, nil, style)
}

func (r *renderer) drawBoard(snap *engine.Snapshot) {
	for y := range engine.Height + 2 {
		r.screen.SetContent(boardLeft-1, boardTop-1+y, '│', nil, frameStyle)
		r.screen.SetContent(boardLeft+engine.Width*cellWidth, boardTop-1+y, '│', nil, frameStyle)
	}
	for x := range engine.Width * cellWidth {
		r.screen.SetContent(boardLeft+x, boardTop-1, '─', nil, frameStyle)
		r.screen.SetContent(boardLeft+x, boardTop+engine.Height, '─', nil, frameStyle)
	}

	for pt, c := range snap.Board.Cells() {
		r.drawCell(boardLeft+pt.X*cellWidth, boardTop+pt.Y, c)
	}

	switch snap.State {
	case engine.Paused:
		r.print(boardLeft+6, boardTop+9, "PAUSED")
	case engine.GameOver:
		r.print(boardLeft+5, boardTop+9, "GAME OVER")
		r.print(boardLeft+3, boardTop+10, "R to restart")
	}
}

func (r *renderer) drawSidebar(snap *engine.Snapshot) {
	r.print(sideLeft, boardTop, "NEXT")
	preview := engine.Preview(snap.Next.Type)
	for row := range engine.PreviewSize {
		for col := range engine.PreviewSize {
			r.drawCell(sideLeft+col*cellWidth, boardTop+1+row, preview[row][col])
		}
	}

	y := boardTop + engine.PreviewSize + 2
	r.print(sideLeft, y, fmt.Sprintf("SCORE %d", snap.Score))
	r.print(sideLeft, y+1, fmt.Sprintf("LEVEL %d", snap.Level))
	r.print(sideLeft, y+2, fmt.Sprintf("LINES %d", snap.Lines))
}

func (r *renderer) print(x, y int, s string) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, textStyle)
	}
}
