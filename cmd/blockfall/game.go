package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/palette"
	"github.com/plus3/blockfall/session"
)

// game implements ebiten.Game on top of a session.
type game struct {
	session *session.Session
	layout  layout
	keys    *keyboard

	backend *debugui_ebiten.ImguiBackend
	input   *debugui.InputState
}

func (g *game) Update() error {
	if g.input == nil || !g.input.WantCaptureKeyboard {
		for _, a := range g.keys.actions() {
			g.session.Submit(a)
		}
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	if g.backend != nil {
		g.backend.Frame(func() { g.session.Step(dt) })
		return nil
	}
	g.session.Step(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(palette.Frame)
	snap := g.session.Snapshot()
	g.drawBoard(screen, &snap)
	g.drawSidebar(screen, &snap)

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.layout.windowSize()
}

func (g *game) drawCell(screen *ebiten.Image, x, y float32, c engine.Cell) {
	size := float32(g.layout.cell)
	vector.DrawFilledRect(screen, x, y, size-1, size-1, palette.Cell(c), false)
	if palette.Bordered(c) {
		vector.StrokeRect(screen, x+0.5, y+0.5, size-2, size-2, 1, palette.Outline, false)
	}
}

func (g *game) drawBoard(screen *ebiten.Image, snap *engine.Snapshot) {
	for pt, c := range snap.Board.Cells() {
		x, y := g.layout.boardCell(pt)
		g.drawCell(screen, x, y, c)
	}

	bx, by := g.layout.boardCell(engine.Point{})
	switch snap.State {
	case engine.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED\nP to resume", int(bx)+8, int(by)+g.layout.cell*9)
	case engine.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nR to play again", int(bx)+8, int(by)+g.layout.cell*9)
	}
}

func (g *game) drawSidebar(screen *ebiten.Image, snap *engine.Snapshot) {
	x, y := g.layout.sidebar()
	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)

	preview := engine.Preview(snap.Next.Type)
	size := float32(g.layout.cell)
	for row := range engine.PreviewSize {
		for col := range engine.PreviewSize {
			g.drawCell(screen, float32(x)+float32(col)*size, float32(y+16)+float32(row)*size, preview[row][col])
		}
	}

	stats := fmt.Sprintf("SCORE\n%d\n\nLEVEL\n%d\n\nLINES\n%d", snap.Score, snap.Level, snap.Lines)
	ebitenutil.DebugPrintAt(screen, stats, x, y+24+engine.PreviewSize*g.layout.cell)
}

func logEvent(e engine.Event) {
	switch e.Kind {
	case engine.EventCleared:
		log.Printf("cleared %d rows: score=%d lines=%d", e.Rows, e.Score, e.Lines)
	case engine.EventLevelUp:
		log.Printf("level %d", e.Level)
	case engine.EventGameOver:
		log.Printf("game over: score=%d level=%d lines=%d", e.Score, e.Level, e.Lines)
	}
}
