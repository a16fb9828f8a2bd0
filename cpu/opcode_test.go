package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word Word
		ins  Instruction
		str  string
	}){
		{0x0061, Alpha{Letter: 'a'}, "alpha 'a'"},
		{0x00ff, Alpha{Letter: 0xff}, "alpha 0xff"},
		{0x2061, Cmp{Letter: 'a'}, "cmp 'a'"},
		{0x2800, Cmp{Blank: true}, "cmp blank"},
		{0x3062, Cmp{Letter: 'b', Oring: true}, "cmp.or 'b'"},
		{0x3800, Cmp{Blank: true, Oring: true}, "cmp.or blank"},
		{0x5abc, Brac{Addr: 0xabc, Eq: true}, "brac.eq 0xabc"},
		{0x4010, Brac{Addr: 0x010}, "brac.ne 0x010"},
		{0x6fff, Bra{Addr: 0xfff}, "bra 0xfff"},
		{0x8078, Draw{Letter: 'x'}, "draw 'x'"},
		{0x9000, Draw{Blank: true}, "draw blank"},
		{0xb000, Move{Left: true}, "move.left"},
		{0xa000, Move{}, "move.right"},
		{0xd000, End{Halt: true}, "end.halt"},
		{0xc000, End{}, "end.fail"},
		{0xe123, Nop{Raw: 0xe123}, "nop 0xe123"},
	}

	for _, entry := range table {
		ins := Decode(entry.word)
		assert.Equal(entry.ins, ins, entry.str)
		assert.Equal(entry.str, ins.String())
		assert.Equal(entry.word, Encode(ins), entry.str)
		assert.Equal(entry.word.Op(), ins.Op(), entry.str)
	}
}

func TestDecode_Reserved(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word      Word
		canonical Word
	}){
		{0x1f61, 0x0061}, // alpha ignores bits 12..8
		{0x2761, 0x2061}, // cmp ignores bits 10..8
		{0x3fff, 0x38ff},
		{0x7fff, 0x6fff}, // bra ignores bit 12
		{0x8f78, 0x8078}, // draw ignores bits 11..8
		{0xafff, 0xa000}, // move ignores bits 11..0
		{0xdfff, 0xd000}, // end ignores bits 11..0
		{0x5fff, 0x5fff}, // brac has no reserved bits
		{0xffff, 0xffff}, // nop keeps everything
	}

	for _, entry := range table {
		assert.Equal(entry.canonical, entry.word.Canonical(), "0x%04x", entry.word)
		assert.Equal(entry.canonical, Encode(Decode(entry.word)), "0x%04x", entry.word)
		if entry.word != entry.canonical {
			assert.NotEqual(entry.word, Encode(Decode(entry.word)), "0x%04x", entry.word)
		}
	}
}

func TestDecode_Total(t *testing.T) {
	assert := assert.New(t)

	counts := map[CodeOp]int{}
	for n := range 0x10000 {
		word := Word(n)
		ins := Decode(word)
		counts[ins.Op()]++
		assert.Equal(word.Canonical(), ins.Encode())
		if word == word.Canonical() {
			assert.Equal(word, Encode(ins))
		}
	}

	for op := OP_ALPHA; op <= OP_NOP; op++ {
		assert.Equal(0x2000, counts[op], op.String())
	}
}

func TestEncode_AddrMasked(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Word(0x6234), Bra{Addr: 0x1234}.Encode())
	assert.Equal(Word(0x5234), Brac{Addr: 0xf234, Eq: true}.Encode())
}

func TestEncodeAll(t *testing.T) {
	assert := assert.New(t)

	words := EncodeAll(Alpha{Letter: 'a'}, Move{}, End{Halt: true})
	assert.Equal([]Word{0x0061, 0xa000, 0xd000}, words)
	assert.Empty(EncodeAll())
}

func TestCodeOp_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("alpha", OP_ALPHA.String())
	assert.Equal("end", OP_END.String())
	assert.Equal("nop", OP_NOP.String())
	assert.Equal("CodeOp(8)", CodeOp(8).String())
}
