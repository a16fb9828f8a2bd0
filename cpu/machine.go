package cpu

import (
	"fmt"
	"iter"
	"log/slog"
	"maps"
)

// State is the execution state of a machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halt
	STATE_FAILED  = State(2) // fail
)

// Done returns true for the terminal states.
func (state State) Done() bool {
	return state != STATE_RUNNING
}

// Cause is the reason a machine stopped.
type Cause int

//go:generate go tool stringer -linecomment -type=Cause
const (
	CAUSE_NONE   = Cause(0) // none
	CAUSE_END    = Cause(1) // end
	CAUSE_SYMBOL = Cause(2) // invalid symbol
)

var _cpu_defines = map[string]string{
	"RAM_SIZE":  fmt.Sprintf("%d", RAM_SIZE),
	"WORD_BITS": fmt.Sprintf("%d", WORD_BITS),
	"ADDR_MASK": fmt.Sprintf("0x%x", ADDR_MASK),
}

// Defines returns the architectural constants, by name.
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Machine is the state of a single run of a program against one tape.
type Machine struct {
	Logger *slog.Logger // If set, each instruction is traced at debug level.

	Program  *Program // Instruction memory (read-only).
	Tape     *Tape    // Tape under the head.
	Alphabet Alphabet // Declared symbols.

	Pc Word // Program counter.
	Ir Word // Instruction register, the last word fetched.
	Eq bool // Equality flag.

	Steps int // Instructions executed.
	Moves int // MOVE instructions executed.

	State State // Execution state.
	Cause Cause // Reason for a terminal state.
}

// NewMachine creates a machine ready to run prog against tape.
// A nil tape is a single blank cell.
func NewMachine(prog *Program, tape *Tape) (m *Machine) {
	m = &Machine{
		Program: prog,
	}

	m.Reset(tape)

	return
}

// Reset the machine to run against a new tape.
// - Clears the registers, flag, and alphabet.
// - Zeros the statistics counters.
func (m *Machine) Reset(tape *Tape) {
	if tape == nil {
		tape = NewTape(nil)
	}

	m.Tape = tape
	m.Alphabet.Reset()
	m.Pc = 0
	m.Ir = 0
	m.Eq = false
	m.Steps = 0
	m.Moves = 0
	m.State = STATE_RUNNING
	m.Cause = CAUSE_NONE
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	regs := []string{
		"pc", "ir", "eq", "state", "steps", "moves", "alpha", "tape",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("0x%03x", uint16(m.Pc))
		case "ir":
			strval = fmt.Sprintf("0x%04x %v", uint16(m.Ir), Decode(m.Ir))
		case "eq":
			strval = fmt.Sprintf("%v", m.Eq)
		case "state":
			strval = m.State.String()
			if m.State == STATE_FAILED {
				strval += " (" + m.Cause.String() + ")"
			}
		case "steps":
			strval = fmt.Sprintf("%d", m.Steps)
		case "moves":
			strval = fmt.Sprintf("%d", m.Moves)
		case "alpha":
			for symbol := range m.Alphabet.All() {
				strval += MakeCell(symbol).String()
			}
		case "tape":
			strval = m.Tape.String()
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
