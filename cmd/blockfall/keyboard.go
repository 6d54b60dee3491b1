package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/engine"
)

// Auto-repeat timing in ticks.
const (
	repeatDelay = 10
	repeatRate  = 3
)

type binding struct {
	key    ebiten.Key
	action engine.Action
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, engine.MoveLeft, true},
	{ebiten.KeyArrowRight, engine.MoveRight, true},
	{ebiten.KeyArrowDown, engine.SoftDrop, true},
	{ebiten.KeyArrowUp, engine.RotateCW, false},
	{ebiten.KeyX, engine.RotateCW, false},
	{ebiten.KeyZ, engine.RotateCCW, false},
	{ebiten.KeySpace, engine.HardDrop, false},
	{ebiten.KeyP, engine.TogglePause, false},
	{ebiten.KeyR, engine.Reset, false},
}

// keyboard turns key state into actions, with auto-repeat on movement.
type keyboard struct {
	held func(ebiten.Key) int
	buf  []engine.Action
}

func newKeyboard() *keyboard {
	return &keyboard{held: inpututil.KeyPressDuration}
}

func (k *keyboard) actions() []engine.Action {
	k.buf = k.buf[:0]
	for _, b := range bindings {
		if fires(k.held(b.key), b.repeat) {
			k.buf = append(k.buf, b.action)
		}
	}
	return k.buf
}

// fires reports whether a key held for ticks frames triggers this frame.
func fires(ticks int, repeat bool) bool {
	switch {
	case ticks == 1:
		return true
	case !repeat || ticks < repeatDelay:
		return false
	default:
		return (ticks-repeatDelay)%repeatRate == 0
	}
}
