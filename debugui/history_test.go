package debugui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/debugui"
)

func TestHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h := debugui.NewHistory(4)
		assert.Zero(t, h.Len())
		assert.Zero(t, h.Average())
		assert.Empty(t, h.Ordered())
	})

	t.Run("partial", func(t *testing.T) {
		h := debugui.NewHistory(4)
		h.Push(2)
		h.Push(4)
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, float32(3), h.Average())
		assert.Equal(t, []float32{2, 4}, h.Ordered())
	})

	t.Run("wraps oldest first", func(t *testing.T) {
		h := debugui.NewHistory(3)
		for _, v := range []float32{1, 2, 3, 4, 5} {
			h.Push(v)
		}
		assert.Equal(t, 3, h.Len())
		assert.Equal(t, []float32{3, 4, 5}, h.Ordered())
		assert.Equal(t, float32(4), h.Average())
		assert.Equal(t, float32(5), h.Max())
	})

	t.Run("size must be positive", func(t *testing.T) {
		assert.Panics(t, func() { debugui.NewHistory(0) })
	})
}
