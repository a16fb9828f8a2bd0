package cpu

import (
	"fmt"
)

// Word is the unit of instruction memory and of the program counter.
type Word uint16

const (
	WORD_BITS = 16            // Bits in a Word.
	RAM_SIZE  = 4096          // Instruction memory capacity, in words.
	ADDR_MASK = RAM_SIZE - 1  // Addressable bits of a Word.
	OP_SHIFT  = WORD_BITS - 3 // Position of the opcode field.
)

// CodeOp is the opcode field, the top 3 bits of a Word.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_ALPHA = CodeOp(0) // alpha
	OP_CMP   = CodeOp(1) // cmp
	OP_BRAC  = CodeOp(2) // brac
	OP_BRA   = CodeOp(3) // bra
	OP_DRAW  = CodeOp(4) // draw
	OP_MOVE  = CodeOp(5) // move
	OP_END   = CodeOp(6) // end
	OP_NOP   = CodeOp(7) // nop
)

// Field positions, below the opcode.
const (
	fieldLetter = Word(0x00ff)  // alpha, cmp, draw
	fieldAddr   = Word(0x0fff)  // brac, bra
	fieldCmpBlk = Word(1 << 11) // cmp blank
	fieldFlag   = Word(1 << 12) // cmp oring, brac eq, draw blank, move left, end halt
)

// opFields is the mask of the defined (non-reserved) bits per opcode.
var opFields = [8]Word{
	OP_ALPHA: fieldLetter,
	OP_CMP:   fieldLetter | fieldCmpBlk | fieldFlag,
	OP_BRAC:  fieldAddr | fieldFlag,
	OP_BRA:   fieldAddr,
	OP_DRAW:  fieldLetter | fieldFlag,
	OP_MOVE:  fieldFlag,
	OP_END:   fieldFlag,
	OP_NOP:   ^Word(0),
}

// Instruction is the decoded view of a Word.
type Instruction interface {
	// Op returns the opcode of the instruction.
	Op() CodeOp
	// Encode returns the canonical instruction word.
	Encode() Word
	// String returns the disassembly of the instruction.
	String() string
}

// Alpha declares Letter as a valid tape symbol.
type Alpha struct {
	Letter byte
}

// Cmp compares the cell under the head against Letter, or against blank
// when Blank is set. When Oring is set the result is ORed into the
// equality flag instead of replacing it.
type Cmp struct {
	Letter byte
	Blank  bool
	Oring  bool
}

// Brac branches to Addr when the equality flag equals Eq.
type Brac struct {
	Addr uint16
	Eq   bool
}

// Bra branches to Addr.
type Bra struct {
	Addr uint16
}

// Draw writes Letter under the head, or a blank when Blank is set.
type Draw struct {
	Letter byte
	Blank  bool
}

// Move moves the head one cell left or right.
type Move struct {
	Left bool
}

// End terminates the run, halted when Halt is set, failed otherwise.
type End struct {
	Halt bool
}

// Nop is the unassigned opcode. It executes as an ignored step.
type Nop struct {
	Raw Word
}

func makeWord(op CodeOp, fields Word) Word {
	return Word(op)<<OP_SHIFT | (fields & opFields[op])
}

func flag(set bool, bit Word) Word {
	if set {
		return bit
	}
	return 0
}

func letterString(letter byte) string {
	if letter >= ' ' && letter <= '~' && letter != '\'' {
		return fmt.Sprintf("'%c'", letter)
	}
	return fmt.Sprintf("0x%02x", letter)
}

func (ins Alpha) Op() CodeOp { return OP_ALPHA }
func (ins Cmp) Op() CodeOp   { return OP_CMP }
func (ins Brac) Op() CodeOp  { return OP_BRAC }
func (ins Bra) Op() CodeOp   { return OP_BRA }
func (ins Draw) Op() CodeOp  { return OP_DRAW }
func (ins Move) Op() CodeOp  { return OP_MOVE }
func (ins End) Op() CodeOp   { return OP_END }
func (ins Nop) Op() CodeOp   { return OP_NOP }

func (ins Alpha) Encode() Word {
	return makeWord(OP_ALPHA, Word(ins.Letter))
}

func (ins Cmp) Encode() Word {
	return makeWord(OP_CMP, Word(ins.Letter)|flag(ins.Blank, fieldCmpBlk)|flag(ins.Oring, fieldFlag))
}

func (ins Brac) Encode() Word {
	return makeWord(OP_BRAC, Word(ins.Addr)|flag(ins.Eq, fieldFlag))
}

func (ins Bra) Encode() Word {
	return makeWord(OP_BRA, Word(ins.Addr))
}

func (ins Draw) Encode() Word {
	return makeWord(OP_DRAW, Word(ins.Letter)|flag(ins.Blank, fieldFlag))
}

func (ins Move) Encode() Word {
	return makeWord(OP_MOVE, flag(ins.Left, fieldFlag))
}

func (ins End) Encode() Word {
	return makeWord(OP_END, flag(ins.Halt, fieldFlag))
}

func (ins Nop) Encode() Word {
	return makeWord(OP_NOP, ins.Raw)
}

func (ins Alpha) String() string {
	return fmt.Sprintf("%v %v", OP_ALPHA, letterString(ins.Letter))
}

func (ins Cmp) String() string {
	op := OP_CMP.String()
	if ins.Oring {
		op += ".or"
	}
	if ins.Blank {
		return op + " blank"
	}
	return op + " " + letterString(ins.Letter)
}

func (ins Brac) String() string {
	cond := "ne"
	if ins.Eq {
		cond = "eq"
	}
	return fmt.Sprintf("%v.%v 0x%03x", OP_BRAC, cond, ins.Addr&uint16(ADDR_MASK))
}

func (ins Bra) String() string {
	return fmt.Sprintf("%v 0x%03x", OP_BRA, ins.Addr&uint16(ADDR_MASK))
}

func (ins Draw) String() string {
	if ins.Blank {
		return fmt.Sprintf("%v blank", OP_DRAW)
	}
	return fmt.Sprintf("%v %v", OP_DRAW, letterString(ins.Letter))
}

func (ins Move) String() string {
	if ins.Left {
		return fmt.Sprintf("%v.left", OP_MOVE)
	}
	return fmt.Sprintf("%v.right", OP_MOVE)
}

func (ins End) String() string {
	if ins.Halt {
		return fmt.Sprintf("%v.halt", OP_END)
	}
	return fmt.Sprintf("%v.fail", OP_END)
}

func (ins Nop) String() string {
	return fmt.Sprintf("%v 0x%04x", OP_NOP, uint16(ins.Encode()))
}

// Op returns the opcode field of the word.
func (word Word) Op() CodeOp {
	return CodeOp(word >> OP_SHIFT)
}

// Canonical returns the word with all reserved bits cleared.
func (word Word) Canonical() Word {
	return makeWord(word.Op(), word)
}

// Decode returns the instruction encoded by the word.
// Reserved bits are ignored, so Encode(Decode(word)) returns
// word.Canonical(): a word with reserved bits set does not round-trip.
// Opcode 7 words decode to Nop, which keeps every bit.
func Decode(word Word) (ins Instruction) {
	switch word.Op() {
	case OP_ALPHA:
		ins = Alpha{Letter: byte(word & fieldLetter)}
	case OP_CMP:
		ins = Cmp{
			Letter: byte(word & fieldLetter),
			Blank:  (word & fieldCmpBlk) != 0,
			Oring:  (word & fieldFlag) != 0,
		}
	case OP_BRAC:
		ins = Brac{
			Addr: uint16(word & fieldAddr),
			Eq:   (word & fieldFlag) != 0,
		}
	case OP_BRA:
		ins = Bra{Addr: uint16(word & fieldAddr)}
	case OP_DRAW:
		ins = Draw{
			Letter: byte(word & fieldLetter),
			Blank:  (word & fieldFlag) != 0,
		}
	case OP_MOVE:
		ins = Move{Left: (word & fieldFlag) != 0}
	case OP_END:
		ins = End{Halt: (word & fieldFlag) != 0}
	default:
		ins = Nop{Raw: word}
	}

	return
}

// Encode returns the canonical word for the instruction.
func Encode(ins Instruction) Word {
	return ins.Encode()
}

// EncodeAll encodes a sequence of instructions into program words.
func EncodeAll(ins ...Instruction) (words []Word) {
	words = make([]Word, len(ins))
	for n, in := range ins {
		words[n] = in.Encode()
	}
	return
}
