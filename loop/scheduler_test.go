package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSystem struct {
	Counter loop.Resource[counter]
	Seen    []time.Duration
}

func (s *countingSystem) Execute(frame *loop.Frame) {
	s.Seen = append(s.Seen, frame.DeltaTime)
	if c := s.Counter.Get(); c != nil {
		c.N++
	}
}

type recordingSystem struct {
	name string
	log  *[]string
}

func (s *recordingSystem) Execute(frame *loop.Frame) {
	*s.log = append(*s.log, s.name)
	frame.Commands.Defer(func() {
		*s.log = append(*s.log, "deferred "+s.name)
	})
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in order and commands flush last", func(t *testing.T) {
		var log []string
		s := loop.NewScheduler(loop.NewWorld())
		s.Register(&recordingSystem{name: "input", log: &log})
		s.Register(&recordingSystem{name: "clock", log: &log})

		s.Once(time.Millisecond)
		assert.Equal(t, []string{"input", "clock", "deferred input", "deferred clock"}, log)
	})

	t.Run("resources persist between frames", func(t *testing.T) {
		w := loop.NewWorld()
		c := loop.AddResource(w, counter{})
		s := loop.NewScheduler(w)
		sys := &countingSystem{}
		s.Register(sys)

		s.Once(time.Millisecond)
		s.Once(2 * time.Millisecond)
		assert.Equal(t, 2, c.N)
		assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond}, sys.Seen)
	})

	t.Run("frame index", func(t *testing.T) {
		var indices []uint64
		s := loop.NewScheduler(loop.NewWorld())
		s.Register(loop.SystemFunc(func(f *loop.Frame) {
			indices = append(indices, f.Index)
		}))
		s.Once(0)
		s.Once(0)
		s.Once(0)
		assert.Equal(t, []uint64{1, 2, 3}, indices)
	})

	t.Run("nested defers run in the same flush", func(t *testing.T) {
		var order []int
		s := loop.NewScheduler(loop.NewWorld())
		s.Register(loop.SystemFunc(func(f *loop.Frame) {
			f.Commands.Defer(func() {
				order = append(order, 1)
				f.Commands.Defer(func() { order = append(order, 2) })
			})
		}))
		s.Once(0)
		assert.Equal(t, []int{1, 2}, order)
	})

	t.Run("run stops on cancel", func(t *testing.T) {
		w := loop.NewWorld()
		c := loop.AddResource(w, counter{})
		s := loop.NewScheduler(w)
		s.Register(&countingSystem{})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			s.Run(ctx, time.Millisecond)
			close(done)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after cancellation")
		}
		assert.Greater(t, c.N, 0)
	})
}

func TestSchedulerStats(t *testing.T) {
	s := loop.NewScheduler(loop.NewWorld())
	s.Register(&countingSystem{})
	s.Register(loop.SystemFunc(func(*loop.Frame) {}))

	for range 5 {
		s.Once(time.Millisecond)
	}

	stats := s.Stats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, uint64(5), stats.Frames)
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "countingSystem", stats.Systems[0].Name)
	assert.Equal(t, "SystemFunc", stats.Systems[1].Name)
	for _, sys := range stats.Systems {
		assert.Equal(t, int64(5), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.MaxDuration)
		assert.GreaterOrEqual(t, sys.TotalDuration, sys.MaxDuration)
	}
}
