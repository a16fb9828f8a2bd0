// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Fetch loads the word at Pc into Ir, advances Pc, and returns the decoded
// instruction. Pc wraps at RAM_SIZE.
func (m *Machine) Fetch() (ins Instruction) {
	m.Ir = m.Program.Fetch(m.Pc)
	m.Pc = (m.Pc + 1) & ADDR_MASK

	return Decode(m.Ir)
}

// Tick executes a single instruction cycle, and returns the resulting state.
// A machine in a terminal state is not changed.
func (m *Machine) Tick() State {
	if m.State.Done() {
		return m.State
	}

	pc := m.Pc
	ins := m.Fetch()

	if m.Logger != nil {
		m.Logger.Debug("tick",
			"pc", pc,
			"ir", m.Ir,
			"op", ins,
			"eq", m.Eq,
			"head", m.Tape.Head(),
			"cell", m.Tape.Read(),
		)
	}

	m.Execute(ins)
	m.Steps++

	return m.State
}

// Run ticks until the machine reaches a terminal state.
// A program that never executes END never returns.
func (m *Machine) Run() State {
	for !m.Tick().Done() {
	}

	return m.State
}

// Execute executes a single decoded instruction.
func (m *Machine) Execute(ins Instruction) {
	switch ins := ins.(type) {
	case Alpha:
		m.Alphabet.Declare(ins.Letter)
	case Cmp:
		m.compare(ins)
	case Brac:
		if m.Eq == ins.Eq {
			m.Pc = Word(ins.Addr) & ADDR_MASK
		}
	case Bra:
		m.Pc = Word(ins.Addr) & ADDR_MASK
	case Draw:
		if ins.Blank {
			m.Tape.Write(CELL_BLANK)
		} else {
			m.Tape.Write(MakeCell(ins.Letter))
		}
	case Move:
		m.Moves++
		m.Tape.Move(ins.Left)
	case End:
		m.Cause = CAUSE_END
		if ins.Halt {
			m.State = STATE_HALTED
		} else {
			m.State = STATE_FAILED
		}
	case Nop:
		// Unassigned opcode; ignored.
	}
}

// compare executes a CMP instruction.
func (m *Machine) compare(ins Cmp) {
	cell := m.Tape.Read()

	symbol, ok := cell.Symbol()
	if ok && !m.Alphabet.Contains(symbol) {
		m.State = STATE_FAILED
		m.Cause = CAUSE_SYMBOL
		return
	}

	if ins.Oring && m.Eq {
		return
	}

	var eq bool
	if ins.Blank {
		eq = !ok
	} else {
		eq = ok && symbol == ins.Letter
	}

	m.Eq = eq
}
