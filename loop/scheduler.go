package loop

import (
	"context"
	"reflect"
	"time"
)

// Stats summarizes scheduler execution.
type Stats struct {
	SystemCount int
	Frames      uint64
	Systems     []SystemStats
}

// SystemStats holds timings for one registered system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTimer struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

// Scheduler runs registered systems in order, once per frame.
type Scheduler struct {
	world    *World
	systems  []System
	timers   []*systemTimer
	commands *Commands
	frames   uint64
}

// NewScheduler creates a scheduler over the given World.
func NewScheduler(world *World) *Scheduler {
	return &Scheduler{
		world:    world,
		commands: newCommands(),
	}
}

// World returns the World the scheduler's systems are bound to.
func (s *Scheduler) World() *World {
	return s.world
}

// Register appends a system and binds its Resource fields.
func (s *Scheduler) Register(system System) {
	s.bindResources(system)
	s.systems = append(s.systems, system)
	s.timers = append(s.timers, &systemTimer{
		name: systemName(system),
		min:  time.Duration(1<<63 - 1),
	})
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

func (s *Scheduler) bindResources(system System) {
	v := reflect.ValueOf(system)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanAddr() || field.Kind() != reflect.Struct {
			continue
		}
		if !v.Type().Field(i).IsExported() {
			continue
		}
		if b, ok := field.Addr().Interface().(binder); ok {
			b.bind(s.world)
		}
	}
}

// Once runs every system with the given elapsed time, then flushes the
// frame's deferred commands.
func (s *Scheduler) Once(dt time.Duration) {
	s.frames++
	frame := &Frame{
		Index:     s.frames,
		DeltaTime: dt,
		Commands:  s.commands,
		World:     s.world,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		elapsed := time.Since(start)

		t := s.timers[i]
		t.count++
		t.last = elapsed
		t.total += elapsed
		t.min = min(t.min, elapsed)
		t.max = max(t.max, elapsed)
	}

	s.commands.Flush()
}

// Run calls Once at the given interval until ctx is cancelled. Each frame
// receives the wall time elapsed since the previous one.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			s.Once(dt)
		}
	}
}

// Stats returns per-system execution statistics.
func (s *Scheduler) Stats() *Stats {
	stats := &Stats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.timers)),
	}
	for i, t := range s.timers {
		var avg time.Duration
		if t.count > 0 {
			avg = t.total / time.Duration(t.count)
		}
		stats.Systems[i] = SystemStats{
			Name:           t.name,
			ExecutionCount: t.count,
			MinDuration:    t.min,
			MaxDuration:    t.max,
			AvgDuration:    avg,
			LastDuration:   t.last,
			TotalDuration:  t.total,
		}
	}
	return stats
}
