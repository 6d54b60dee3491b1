package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/session"
)

// MockScreen records drawn runes and counts presents.
type MockScreen struct {
	tcell.Screen
	cells map[[2]int]rune
	shows int
}

func newMockScreen() *MockScreen {
	return &MockScreen{cells: make(map[[2]int]rune)}
}

func (m *MockScreen) Clear() { clear(m.cells) }
func (m *MockScreen) Show()  { m.shows++ }
func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
}

func (m *MockScreen) text(x, y, n int) string {
	out := make([]rune, n)
	for i := range n {
		out[i] = m.cells[[2]int{x + i, y}]
	}
	return string(out)
}

type repeat engine.PieceType

func (r repeat) Next() engine.PieceType { return engine.PieceType(r) }

func TestRenderer(t *testing.T) {
	screen := newMockScreen()
	s := session.New(
		session.WithSource(repeat(engine.PieceO)),
		session.WithSystems(&renderer{screen: screen}),
	)

	t.Run("draws board and sidebar", func(t *testing.T) {
		s.Step(0)
		assert.Equal(t, 1, screen.shows)
		assert.Equal(t, "SCORE 0", screen.text(sideLeft, boardTop+engine.PreviewSize+2, 7))
		assert.Equal(t, '│', screen.cells[[2]int{boardLeft - 1, boardTop}])

		ghostRow := boardTop + engine.Height - 1
		assert.Equal(t, "[][]", screen.text(boardLeft+3*cellWidth, ghostRow, 4))
	})

	t.Run("skips unchanged frames", func(t *testing.T) {
		s.Step(0)
		assert.Equal(t, 1, screen.shows)
	})

	t.Run("shows pause", func(t *testing.T) {
		s.Submit(engine.TogglePause)
		s.Step(0)
		assert.Equal(t, 2, screen.shows)
		assert.Equal(t, "PAUSED", screen.text(boardLeft+6, boardTop+9, 6))
	})
}

func TestMelody(t *testing.T) {
	assert.Len(t, melody(engine.Event{Kind: engine.EventLocked}), 1)
	assert.Empty(t, melody(engine.Event{Kind: engine.EventLocked, Rows: 2}))
	assert.Len(t, melody(engine.Event{Kind: engine.EventCleared, Rows: 4}), 4)
	assert.Len(t, melody(engine.Event{Kind: engine.EventGameOver}), 3)
	assert.Empty(t, melody(engine.Event{Kind: engine.EventReset}))

	sfx := &sounds{rate: sampleRate}
	st, err := sfx.stream(melody(engine.Event{Kind: engine.EventLevelUp}))
	assert.NoError(t, err)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := st.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sampleRate.N(200_000_000), total)
}
