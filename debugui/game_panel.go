package debugui

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/palette"
	"github.com/plus3/blockfall/session"
)

// GamePanel shows the session's progression, a miniature of the board and
// buttons that submit actions through Submit.
type GamePanel struct {
	Submit func(engine.Action)
	// CellSize is the miniature's cell edge in pixels.
	CellSize float32

	events []string
}

// NewGamePanel returns a panel that records the session's recent events.
func NewGamePanel(s *session.Session) *GamePanel {
	p := &GamePanel{Submit: s.Submit, CellSize: 8}
	s.OnEvent(p.record)
	return p
}

const eventLogSize = 12

func (p *GamePanel) record(e engine.Event) {
	line := fmt.Sprintf("%-8s %s rows=%d score=%d", e.Kind, e.Piece, e.Rows, e.Score)
	p.events = append(p.events, line)
	if len(p.events) > eventLogSize {
		p.events = p.events[len(p.events)-eventLogSize:]
	}
}

func (p *GamePanel) Render(frame *loop.Frame) {
	snap, ok := session.Snapshot(frame.World)
	if !ok {
		return
	}

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 420), imgui.CondOnce)
	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Level: %d  Lines: %d", snap.Level, snap.Lines))
	imgui.Text(fmt.Sprintf("Pieces: %d", snap.Pieces))
	imgui.Text(fmt.Sprintf("Drop interval: %s", snap.DropInterval))
	imgui.Text(fmt.Sprintf("Current: %s at (%d, %d)", snap.Current.Type, snap.Current.Pos.X, snap.Current.Pos.Y))
	imgui.Text(fmt.Sprintf("Next: %s", snap.Next.Type))

	if p.Submit != nil {
		label := "Pause"
		if snap.State == engine.Paused {
			label = "Resume"
		}
		if imgui.Button(label) {
			p.Submit(engine.TogglePause)
		}
		imgui.SameLine()
		if imgui.Button("Reset") {
			p.Submit(engine.Reset)
		}
	}

	imgui.Separator()
	p.drawBoard(&snap.Board)

	if imgui.TreeNodeStr("Events") {
		for _, line := range p.events {
			imgui.BulletText(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (p *GamePanel) drawBoard(b *engine.Board) {
	size := p.CellSize
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()

	for pt, c := range b.Cells() {
		x := origin.X + float32(pt.X)*size
		y := origin.Y + float32(pt.Y)*size
		drawList.AddRectFilled(
			imgui.NewVec2(x, y),
			imgui.NewVec2(x+size-1, y+size-1),
			u32(palette.Cell(c)),
		)
	}
	imgui.Dummy(imgui.NewVec2(size*engine.Width, size*engine.Height))
}

func u32(c color.RGBA) uint32 {
	return imgui.ColorU32Vec4(imgui.NewVec4(
		float32(c.R)/255,
		float32(c.G)/255,
		float32(c.B)/255,
		float32(c.A)/255,
	))
}
