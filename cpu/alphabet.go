package cpu

import (
	"iter"
	"math/bits"
)

// Alphabet is the set of symbols declared valid by ALPHA instructions.
type Alphabet [256 / 64]uint64

// Declare adds symbol to the alphabet.
func (alpha *Alphabet) Declare(symbol byte) {
	alpha[symbol>>6] |= 1 << (symbol & 63)
}

// Contains returns true if symbol has been declared.
func (alpha *Alphabet) Contains(symbol byte) bool {
	return (alpha[symbol>>6] & (1 << (symbol & 63))) != 0
}

// Len returns the number of declared symbols.
func (alpha *Alphabet) Len() (count int) {
	for _, set := range alpha {
		count += bits.OnesCount64(set)
	}
	return
}

// All iterates over the declared symbols in ascending order.
func (alpha *Alphabet) All() iter.Seq[byte] {
	return func(yield func(symbol byte) bool) {
		for n := range 256 {
			symbol := byte(n)
			if alpha.Contains(symbol) && !yield(symbol) {
				return
			}
		}
	}
}

// Reset removes all symbols.
func (alpha *Alphabet) Reset() {
	clear(alpha[:])
}
