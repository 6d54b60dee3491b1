// Command blockfall plays the game in an Ebiten window. With -debug it
// overlays Dear ImGui panels for the game state and scheduler timings.
package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("blockfall: %v", err)
	}

	var opts []session.Option
	opts = append(opts,
		session.WithSource(cfg.PieceSource()),
		session.WithGhost(cfg.Ghost),
	)
	if cfg.Debug {
		opts = append(opts, session.WithSystems(&debugui.ImguiSystem{}))
	}
	s := session.New(opts...)

	layout := newLayout(cfg.Scale)
	g := &game{session: s, layout: layout, keys: newKeyboard()}

	width, height := layout.windowSize()
	if cfg.Debug {
		width, height = max(width, 1280), max(height, 720)
		g.backend = debugui_ebiten.New("blockfall", width, height)
		debugui.Install(s.World(),
			debugui.NewGamePanel(s),
			debugui.NewPerformancePanel(s.Scheduler(), 120),
			&debugui.Inspector{Title: "Config", Value: func() any { return cfg }},
		)
		g.input = loop.GetResource[debugui.InputState](s.World())
	} else {
		ebiten.SetWindowTitle("blockfall")
		ebiten.SetWindowSize(width, height)
	}

	s.OnEvent(logEvent)
	log.Printf("blockfall: seed=%d randomizer=%s debug=%t", cfg.Seed, cfg.Randomizer, cfg.Debug)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("blockfall: %v", err)
	}
}
