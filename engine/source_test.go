package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

func TestBagSource(t *testing.T) {
	src := engine.NewBagSource(7)
	for round := 0; round < 5; round++ {
		seen := make(map[engine.PieceType]int)
		for range engine.PieceTypes {
			seen[src.Next()]++
		}
		assert.Len(t, seen, len(engine.PieceTypes), "round %d", round)
	}
}

func TestSourcesAreDeterministic(t *testing.T) {
	sources := map[string]func(uint64) engine.PieceSource{
		"uniform": func(seed uint64) engine.PieceSource { return engine.NewUniformSource(seed) },
		"bag":     func(seed uint64) engine.PieceSource { return engine.NewBagSource(seed) },
	}
	for name, newSource := range sources {
		t.Run(name, func(t *testing.T) {
			a, b := newSource(42), newSource(42)
			for range 50 {
				assert.Equal(t, a.Next(), b.Next())
			}
		})
	}
}

func TestUniformSourceCoversCatalog(t *testing.T) {
	src := engine.NewUniformSource(1)
	seen := make(map[engine.PieceType]int)
	for range 700 {
		p := src.Next()
		assert.NotEqual(t, engine.PieceNone, p)
		seen[p]++
	}
	assert.Len(t, seen, len(engine.PieceTypes))
}

func TestRandomPiece(t *testing.T) {
	for range 20 {
		p := engine.RandomPiece()
		assert.Equal(t, engine.SpawnPoint, p.Pos)
		assert.Contains(t, engine.PieceTypes[:], p.Type)
		assert.Equal(t, engine.Template(p.Type), p.Shape)
	}
}
