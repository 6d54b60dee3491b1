package session_test

import (
	"fmt"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/session"
)

func ExampleSession() {
	s := session.New(session.WithSource(repeat(engine.PieceI)))
	s.OnEvent(func(e engine.Event) {
		fmt.Println(e.Kind, e.Piece)
	})

	s.Submit(engine.HardDrop)
	s.Step(0)

	snap := s.Snapshot()
	fmt.Println(snap.Pieces, snap.State)
	// Output:
	// Locked I
	// 1 Running
}
