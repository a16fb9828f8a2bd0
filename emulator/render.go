package emulator

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/tmachine/cpu"
)

// DEFAULT_WIDTH is the default number of tape cells rendered.
const DEFAULT_WIDTH = 46

// Render writes the final state of the case: a window of width cells, one
// third of them left of the head, a caret under the head, the registers
// and the outcome.
func (report *Report) Render(w io.Writer, width int) (err error) {
	m := report.Machine

	if width < 1 {
		width = DEFAULT_WIDTH
	}
	before := width / 3
	after := width - before - 1

	var cells strings.Builder
	var caret strings.Builder
	for offset, cell := range m.Tape.Window(before, after) {
		symbol, ok := cell.Symbol()
		if !ok {
			symbol = ' '
		}
		cells.WriteByte('|')
		cells.WriteByte(symbol)
		if offset == 0 {
			caret.WriteString(" ^")
		} else {
			caret.WriteString("  ")
		}
	}
	cells.WriteByte('|')

	eq := 0
	if m.Eq {
		eq = 1
	}

	outcome := m.State.String()
	switch {
	case report.Err != nil:
		outcome = fmt.Sprintf("%v (%v)", m.State, report.Err)
	case m.Cause == cpu.CAUSE_SYMBOL:
		outcome = fmt.Sprintf("%v (%v)", m.State, m.Cause)
	}

	_, err = fmt.Fprintf(w, "%s\n%s\nPC: %d\tMoves: %d\nIR: 0x%04x %v\nEQ: %d\ninstructions processed: %d\n%s\n",
		cells.String(),
		strings.TrimRight(caret.String(), " "),
		m.Pc, m.Moves,
		uint16(m.Ir), cpu.Decode(m.Ir),
		eq,
		m.Steps,
		outcome,
	)

	return
}
