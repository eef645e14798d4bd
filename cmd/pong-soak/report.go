package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/pong/sim"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Interval time.Duration
	Pattern  string
	Bounds   sim.Bounds

	// Results
	TotalTime     time.Duration
	Scheduler     *sim.SchedulerStats
	Left          sim.Vec2
	Right         sim.Vec2
	Observations  int64
	Violations    int64
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// observe records whether both paddles are inside bounds.
func (r *Report) observe(scene *sim.Scene, bounds sim.Bounds) {
	r.Observations++
	if !bounds.Contains(scene.Left.Pos.Y) || !bounds.Contains(scene.Right.Pos.Y) {
		r.Violations++
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Pong Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Advance Interval:** {{.Interval}}
- **Input Pattern:** {{.Pattern}}
- **Paddle Bounds:** [{{f .Bounds.Min}}, {{f .Bounds.Max}}]

## Results
- **Total Time:** {{.TotalTime}}
- **Ticks:** {{.Scheduler.Ticks}}
- **System Executions:** {{.Scheduler.TotalExecutions}}
{{range .Scheduler.Systems}}- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Final State
- Left paddle:  ({{f .Left.X}}, {{f .Left.Y}})
- Right paddle: ({{f .Right.X}}, {{f .Right.Y}})
- Bound checks: {{.Observations}} ({{.Violations}} violations)

## Memory Usage (Raw Bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc: {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end)
`

	fm := template.FuncMap{
		"f": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
