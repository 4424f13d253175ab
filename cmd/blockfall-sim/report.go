package main

import (
	"io"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Games    int
	MaxTicks int
	Seed     uint64
	Columns  int
	Rows     int

	// Results
	TotalTime  time.Duration
	TotalTicks int
	Finished   int
	BestScore  int
	TotalScore int
	Locked     int
	Spawns     map[string]int
	Clears     map[int]int
	TickTime   Stats
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
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) add(game *tetris.Game, ticks int) {
	stats := game.Stats()

	r.TotalTicks += ticks
	r.TotalScore += game.Score()
	r.BestScore = max(r.BestScore, game.Score())
	r.Locked += stats.Locked()
	if game.State() == tetris.Over {
		r.Finished++
	}
	for kind := tetris.KindI; kind <= tetris.KindZ; kind++ {
		r.Spawns[kind.String()] += stats.Spawned(kind)
	}
	for rows := 1; rows <= 4; rows++ {
		if n := stats.Clears(rows); n > 0 {
			r.Clears[rows] += n
		}
	}
}

// AvgScore is the mean score per game.
func (r *Report) AvgScore() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalScore) / float64(r.Games)
}

// ClearSizes lists the recorded clear sizes in ascending order.
func (r *Report) ClearSizes() []int {
	sizes := make([]int, 0, len(r.Clears))
	for rows := range r.Clears {
		sizes = append(sizes, rows)
	}
	slices.Sort(sizes)
	return sizes
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Games:** {{.Games}}
- **Max Ticks per Game:** {{.MaxTicks}}
- **Seed:** {{.Seed}}
- **Board:** {{.Columns}}x{{.Rows}}

## Results
- **Games Ended by Overflow:** {{.Finished}}
- **Total Ticks:** {{.TotalTicks}}
- **Pieces Locked:** {{.Locked}}
- **Best Score:** {{.BestScore}}
- **Average Score:** {{printf "%.2f" .AvgScore}}

## Shapes Dealt
{{range $kind, $n := .Spawns}}- {{$kind}}: {{$n}}
{{end}}
## Line Clears
{{range .ClearSizes}}- {{.}} rows: {{index $.Clears .}}
{{else}}- none
{{end}}
## Tick Time
- **Avg:** {{.TickTime.Avg}}
- **Min:** {{.TickTime.Min}}
- **Max:** {{.TickTime.Max}}
- **Total Run Time:** {{.TotalTime}}
`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
