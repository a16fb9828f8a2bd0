package cpu

import (
	"iter"
)

// Program is a loaded instruction memory image.
// It is never modified by execution, and may be shared by many machines.
type Program struct {
	Words [RAM_SIZE]Word // Instruction memory.
	Size  int            // Number of words loaded.
}

// NewProgram loads words into a new instruction memory.
// Unloaded memory is zero.
func NewProgram(words []Word) (prog *Program, err error) {
	if len(words) > RAM_SIZE {
		err = ErrProgramSize(len(words))
		return
	}

	prog = &Program{Size: len(words)}
	copy(prog.Words[:], words)

	return
}

// Fetch returns the word at the address in pc.
func (prog *Program) Fetch(pc Word) Word {
	return prog.Words[pc&ADDR_MASK]
}

// Bits returns the size of the loaded program, in bits.
func (prog *Program) Bits() int {
	return prog.Size * WORD_BITS
}

// Instructions iterates over the decoded instructions of the loaded
// program, by address.
func (prog *Program) Instructions() iter.Seq2[Word, Instruction] {
	return func(yield func(addr Word, ins Instruction) bool) {
		for n, word := range prog.Words[:prog.Size] {
			if !yield(Word(n), Decode(word)) {
				return
			}
		}
	}
}
