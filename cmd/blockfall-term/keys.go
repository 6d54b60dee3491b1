package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/engine"
)

var keyActions = map[tcell.Key]engine.Action{
	tcell.KeyLeft:  engine.MoveLeft,
	tcell.KeyRight: engine.MoveRight,
	tcell.KeyDown:  engine.SoftDrop,
	tcell.KeyUp:    engine.RotateCW,
}

var runeActions = map[rune]engine.Action{
	' ': engine.HardDrop,
	'x': engine.RotateCW,
	'z': engine.RotateCCW,
	'p': engine.TogglePause,
	'r': engine.Reset,
	'h': engine.MoveLeft,
	'l': engine.MoveRight,
	'j': engine.SoftDrop,
	'k': engine.RotateCW,
}

// translate maps a key press to a game action.
func translate(ev *tcell.EventKey) (engine.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := runeActions[unicode.ToLower(ev.Rune())]
		return a, ok
	}
	a, ok := keyActions[ev.Key()]
	return a, ok
}

func quits(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return unicode.ToLower(ev.Rune()) == 'q'
	}
	return false
}
