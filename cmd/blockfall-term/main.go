// Command blockfall-term plays the game in a terminal.
//
// Arrow keys move and soft drop, Up or X rotates clockwise, Z rotates
// counter-clockwise, Space hard drops, P pauses, R restarts and Q or Esc
// quits.
package main

import (
	"context"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/session"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("blockfall-term: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("blockfall-term: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("blockfall-term: init screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	s := session.New(
		session.WithSource(cfg.PieceSource()),
		session.WithGhost(cfg.Ghost),
		session.WithTick(cfg.TickInterval),
		session.WithSystems(&renderer{screen: screen}),
	)

	if cfg.Sound {
		sfx, err := newSounds()
		if err != nil {
			// The game runs without sound.
			log.Printf("blockfall-term: audio disabled: %v", err)
		} else {
			s.OnEvent(sfx.play)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	actions := make(chan engine.Action, 16)
	go readInput(screen, actions, cancel)

	s.Run(ctx, actions)
}

// readInput forwards key presses as actions until the player quits.
func readInput(screen tcell.Screen, actions chan<- engine.Action, quit func()) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if quits(ev) {
				quit()
				return
			}
			if a, ok := translate(ev); ok {
				actions <- a
			}
		}
	}
}
