package emulator

import (
	"io"

	"github.com/ezrec/tmachine/cpu"
	"github.com/ezrec/tmachine/translate"
)

// Stats are the totals of a batch of runs.
type Stats struct {
	ProgramBits int // Size of the program, in bits.

	Runs   int // Cases run.
	Halted int // Cases ending halted.
	Failed int // Cases ending failed.
	CutOff int // Cases cut off before a terminal state.

	Moves int // Total moves, all cases.
	Steps int // Total instructions executed, all cases.
}

// Add accumulates the counters of a report.
func (stats *Stats) Add(report Report) {
	m := report.Machine

	stats.Runs++
	stats.Moves += m.Moves
	stats.Steps += m.Steps

	switch {
	case report.Err != nil:
		stats.CutOff++
	case m.State == cpu.STATE_HALTED:
		stats.Halted++
	case m.State == cpu.STATE_FAILED:
		stats.Failed++
	}
}

// Render writes the totals, formatted for the current locale.
func (stats *Stats) Render(w io.Writer) (err error) {
	lines := []struct {
		format string
		args   []any
	}{
		{"program size: %d bits\n", []any{stats.ProgramBits}},
		{"runs: %d halted: %d failed: %d cut off: %d\n", []any{stats.Runs, stats.Halted, stats.Failed, stats.CutOff}},
		{"total moves: %d\n", []any{stats.Moves}},
		{"total instructions: %d\n", []any{stats.Steps}},
	}

	for _, line := range lines {
		err = translate.Fprint(w, line.format, line.args...)
		if err != nil {
			return
		}
	}

	return
}
