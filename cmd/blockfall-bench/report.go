package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/driver"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	MaxGames int
	Rows     int
	Columns  int

	// Results
	Games          int
	TotalTime      time.Duration
	TotalCommands  int64
	Rejected       int64
	Scores         Stats[int]
	Lines          Stats[int]
	Pieces         Stats[int]
	Ticks          int64
	TickTime       Stats[time.Duration]
	Commands       []CommandCount
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type CommandCount struct {
	Command driver.Command
	Count   int64
}

type sample interface {
	~int | ~int64
}

type Stats[T sample] struct {
	Min     T
	Max     T
	Avg     T
	Total   T
	Samples []T
}

func (s *Stats[T]) Add(v T) {
	s.Samples = append(s.Samples, v)
}

func (s *Stats[T]) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total T
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Total = total
	s.Avg = total / T(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Bench Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{if .Seed}}{{.Seed}}{{else}}random{{end}}
- **Game Limit:** {{if .MaxGames}}{{.MaxGames}}{{else}}none{{end}}
- **Field:** {{.Rows}}x{{.Columns}}

## Games
- **Games Finished:** {{.Games}}
- **Total Test Time:** {{.TotalTime}}
- **Score:** avg {{.Scores.Avg}}, min {{.Scores.Min}}, max {{.Scores.Max}}
- **Lines:** total {{.Lines.Total}}, avg {{.Lines.Avg}}, max {{.Lines.Max}}
- **Pieces:** total {{.Pieces.Total}}, avg {{.Pieces.Avg}}, max {{.Pieces.Max}}
{{- if .TotalTime}}
- **Pieces/sec:** {{rate .Pieces.Total .TotalTime}}
{{- end}}

## Gravity Ticks
- **Total Ticks:** {{.Ticks}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Commands
- **Total:** {{.TotalCommands}} ({{.Rejected}} rejected)
{{- range .Commands}}
- {{.Command}}: {{.Count}}
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

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
		"rate": func(n int, d time.Duration) string {
			return fmt.Sprintf("%.1f", float64(n)/d.Seconds())
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
