package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tmachine/cpu"
)

func TestEvalLimit(t *testing.T) {
	assert := assert.New(t)

	emu := loaded(t, cpu.Move{}, cpu.Move{Left: true}, cpu.End{Halt: true})

	table := [](struct {
		expr  string
		limit int
	}){
		{"0", 0},
		{"1000", 1000},
		{"RAM_SIZE * 2", 8192},
		{"PROGRAM_BITS + PROGRAM_WORDS", 51},
		{"1 << WORD_BITS", 65536},
		{"ADDR_MASK", 4095},
	}

	for _, entry := range table {
		limit, err := emu.EvalLimit(entry.expr)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.limit, limit, entry.expr)
	}
}

func TestEvalLimit_Invalid(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	for _, expr := range []string{"-1", "'many'", "1 +", "UNKNOWN", "1 << 70", "1.5"} {
		_, err := emu.EvalLimit(expr)
		assert.ErrorIs(err, ErrExpression, expr)
		assert.Contains(err.Error(), expr)
	}
}
