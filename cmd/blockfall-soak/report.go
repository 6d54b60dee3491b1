package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

type Report struct {
	// Configuration
	Seed       uint64
	Randomizer string
	Duration   time.Duration
	GameLimit  int

	// Results
	Games      int
	Frames     int64
	Pieces     int
	Lines      int
	Clears     [4]int
	MaxScore   int
	MaxLevel   int
	ScoreTotal int
	Violations []Violation
	Dropped    int

	TotalTime      time.Duration
	UpdateTime     Stats
	Systems        []loop.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Violation is one broken invariant and the frame it was seen on.
type Violation struct {
	Frame  uint64
	Detail string
}

func (r *Report) violation(frame uint64, detail string) {
	if len(r.Violations) >= maxViolations {
		r.Dropped++
		return
	}
	r.Violations = append(r.Violations, Violation{Frame: frame, Detail: detail})
}

func (r *Report) finishGame(e engine.Event) {
	r.Games++
	r.ScoreTotal += e.Score
	r.MaxScore = max(r.MaxScore, e.Score)
	r.MaxLevel = max(r.MaxLevel, e.Level)
}

// AvgScore is the mean final score of finished games.
func (r *Report) AvgScore() int {
	if r.Games == 0 {
		return 0
	}
	return r.ScoreTotal / r.Games
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Seed:** {{.Seed}}
- **Randomizer:** {{.Randomizer}}
- **Time Limit:** {{.Duration | round}}
- **Game Limit:** {{if .GameLimit}}{{.GameLimit}}{{else}}none{{end}}

## Play
- **Finished Games:** {{.Games}}
- **Frames:** {{.Frames}}
- **Pieces Locked:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}} (singles {{index .Clears 0}}, doubles {{index .Clears 1}}, triples {{index .Clears 2}}, tetrises {{index .Clears 3}})
- **Max Score:** {{.MaxScore}} (avg {{.AvgScore}})
- **Max Level:** {{.MaxLevel}}

## Invariants
{{- if .Violations}}
| Frame | Violation |
|---|---|
{{- range .Violations}}
| {{.Frame}} | {{.Detail}} |
{{- end}}
{{- if .Dropped}}

{{.Dropped}} more not shown.
{{- end}}
{{- else}}
All checks passed.
{{- end}}

## Performance
- **Total Time:** {{.TotalTime | round}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

| System | Runs | Avg | Max |
|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{- end}}
`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"round": func(d time.Duration) string {
			return d.Round(time.Millisecond).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}
	return tmpl.Execute(w, r)
}
