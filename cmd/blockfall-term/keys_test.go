package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/engine"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want engine.Action
		ok   bool
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), engine.MoveLeft, true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), engine.MoveRight, true},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), engine.SoftDrop, true},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), engine.RotateCW, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), engine.HardDrop, true},
		{"z", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), engine.RotateCCW, true},
		{"shift P", tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModShift), engine.TogglePause, true},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), engine.Reset, true},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), 0, false},
		{"unbound key", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := translate(tc.ev)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestQuits(t *testing.T) {
	assert.True(t, quits(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, quits(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, quits(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModShift)))
	assert.False(t, quits(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))
}
