package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProgram(t *testing.T) {
	assert := assert.New(t)

	prog, err := NewProgram(EncodeAll(Alpha{Letter: 'a'}, Bra{Addr: 0}))
	assert.NoError(err)
	assert.Equal(2, prog.Size)
	assert.Equal(32, prog.Bits())
	assert.Equal(Word(0x0061), prog.Fetch(0))
	assert.Equal(Word(0x6000), prog.Fetch(1))
	assert.Equal(Word(0), prog.Fetch(2))

	// Fetch wraps at the address space.
	assert.Equal(Word(0x0061), prog.Fetch(RAM_SIZE))
}

func TestNewProgram_Full(t *testing.T) {
	assert := assert.New(t)

	words := make([]Word, RAM_SIZE)
	words[RAM_SIZE-1] = End{Halt: true}.Encode()
	prog, err := NewProgram(words)
	assert.NoError(err)
	assert.Equal(RAM_SIZE*WORD_BITS, prog.Bits())
	assert.Equal(Word(0xd000), prog.Fetch(ADDR_MASK))
}

func TestNewProgram_TooLarge(t *testing.T) {
	assert := assert.New(t)

	prog, err := NewProgram(make([]Word, RAM_SIZE+1))
	assert.Nil(prog)
	assert.Error(err)
	assert.True(errors.Is(err, ErrProgramSize(0)))
	assert.Equal(ErrProgramSize(RAM_SIZE+1), err)
}

func TestProgram_Instructions(t *testing.T) {
	assert := assert.New(t)

	prog, err := NewProgram(EncodeAll(Draw{Letter: 'x'}, Move{}, End{Halt: true}))
	assert.NoError(err)

	var listing []string
	for addr, ins := range prog.Instructions() {
		assert.Equal(Word(len(listing)), addr)
		listing = append(listing, ins.String())
	}

	assert.Equal([]string{"draw 'x'", "move.right", "end.halt"}, listing)
}
