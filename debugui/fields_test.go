package debugui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

func TestFields(t *testing.T) {
	t.Run("snapshot", func(t *testing.T) {
		g := engine.NewGame(engine.WithSource(engine.NewUniformSource(1)))
		fields := debugui.Fields(g.Snapshot())

		byName := map[string]debugui.Field{}
		for _, f := range fields {
			byName[f.Name] = f
		}

		assert.Equal(t, "Running", byName["State"].Value)
		assert.Equal(t, "1", byName["Level"].Value)
		assert.Equal(t, time.Second.String(), byName["DropInterval"].Value)
		assert.Equal(t, g.Snapshot().Board.String(), byName["Board"].Value)

		current := byName["Current"]
		require.NotEmpty(t, current.Nested)
		assert.Equal(t, "Type", current.Nested[0].Name)
		assert.Equal(t, g.Current().Type.String(), current.Nested[0].Value)
	})

	t.Run("skips unexported", func(t *testing.T) {
		type sample struct {
			Name    string
			hidden  int
			Handler func()
			Tags    []string
			Ptr     *int
		}
		fields := debugui.Fields(&sample{Name: "x", hidden: 3, Tags: []string{"a"}})
		assert.Equal(t, []debugui.Field{
			{Name: "Name", Value: "x"},
			{Name: "Handler", Value: "func"},
			{Name: "Tags", Value: "[1 items]"},
			{Name: "Ptr", Value: "nil"},
		}, fields)
	})

	t.Run("non-struct", func(t *testing.T) {
		assert.Nil(t, debugui.Fields(42))
		assert.Nil(t, debugui.Fields((*engine.Snapshot)(nil)))
	})
}

func TestInstall(t *testing.T) {
	w := loop.NewWorld()
	panels := debugui.Install(w, debugui.PanelFunc(func(*loop.Frame) {}))

	assert.Equal(t, 1, panels.Len())
	assert.Same(t, panels, loop.GetResource[debugui.Panels](w))
	assert.NotNil(t, loop.GetResource[debugui.InputState](w))
}
