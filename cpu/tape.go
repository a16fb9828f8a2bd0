package cpu

import (
	"iter"
	"strings"
)

// Cell is a tape cell: either blank, or holding a single symbol.
type Cell uint16

const (
	CELL_BLANK  = Cell(0)     // The blank cell.
	cellSymbol  = Cell(0x100) // Set on every non-blank cell.
	cellLetters = Cell(0x0ff)
)

// MakeCell returns the cell holding symbol.
func MakeCell(symbol byte) Cell {
	return cellSymbol | Cell(symbol)
}

// Blank returns true if the cell holds no symbol.
func (cell Cell) Blank() bool {
	return (cell & cellSymbol) == 0
}

// Symbol returns the symbol in the cell, if any.
func (cell Cell) Symbol() (symbol byte, ok bool) {
	if cell.Blank() {
		return
	}
	return byte(cell & cellLetters), true
}

// String returns the symbol as a string, or "_" for blank.
func (cell Cell) String() string {
	symbol, ok := cell.Symbol()
	if !ok {
		return "_"
	}
	return string(rune(symbol))
}

// Tape is a sequence of cells with a head, extended by one cell whenever the
// head moves past either end.
//
// Cells left of the origin are kept in reverse order, so growth on either
// side is an append.
type Tape struct {
	Fill Cell // Value of cells added by growth.

	left  []Cell // Positions -1, -2, ...
	right []Cell // Positions 0, 1, ...
	head  int    // Head position relative to the origin.
}

// NewTape creates a tape with one cell per byte of line, head on the first.
// An empty line is one blank cell. Trailing line terminators become a single
// blank marker cell.
func NewTape(line []byte) (tape *Tape) {
	tape = &Tape{}

	content := strings.TrimRight(string(line), "\r\n")
	for n := range len(content) {
		tape.right = append(tape.right, MakeCell(content[n]))
	}

	if len(content) != len(line) || len(tape.right) == 0 {
		tape.right = append(tape.right, CELL_BLANK)
	}

	return
}

// cell returns the cell under the head.
func (tape *Tape) cell() *Cell {
	if len(tape.right) == 0 && len(tape.left) == 0 {
		tape.right = append(tape.right, tape.Fill)
	}

	if tape.head < 0 {
		return &tape.left[-tape.head-1]
	}
	return &tape.right[tape.head]
}

// Read returns the cell under the head.
func (tape *Tape) Read() Cell {
	return *tape.cell()
}

// Write replaces the cell under the head.
func (tape *Tape) Write(cell Cell) {
	*tape.cell() = cell
}

// Move moves the head one cell, left or right. If the head moves past an
// end of the tape, exactly one Fill cell is added on that side and grew is
// true.
func (tape *Tape) Move(left bool) (grew bool) {
	tape.cell()

	if left {
		tape.head--
		if -tape.head > len(tape.left) {
			tape.left = append(tape.left, tape.Fill)
			grew = true
		}
	} else {
		tape.head++
		if tape.head >= len(tape.right) {
			tape.right = append(tape.right, tape.Fill)
			grew = true
		}
	}

	return
}

// Len returns the number of cells on the tape.
func (tape *Tape) Len() int {
	return len(tape.left) + len(tape.right)
}

// Head returns the index of the head into Cells().
func (tape *Tape) Head() int {
	return tape.head + len(tape.left)
}

// at returns the cell at a position relative to the origin, and whether it
// is on the tape.
func (tape *Tape) at(pos int) (cell Cell, ok bool) {
	switch {
	case pos < 0 && -pos <= len(tape.left):
		return tape.left[-pos-1], true
	case pos >= 0 && pos < len(tape.right):
		return tape.right[pos], true
	}
	return
}

// Cells returns a copy of the tape, leftmost cell first.
func (tape *Tape) Cells() (cells []Cell) {
	cells = make([]Cell, 0, tape.Len())
	for n := len(tape.left) - 1; n >= 0; n-- {
		cells = append(cells, tape.left[n])
	}
	cells = append(cells, tape.right...)
	return
}

// Window iterates over the cells from before cells left of the head to
// after cells right of it, yielding each offset from the head and its
// cell. Positions off the tape are yielded as CELL_BLANK, without growing
// the tape.
func (tape *Tape) Window(before, after int) iter.Seq2[int, Cell] {
	return func(yield func(offset int, cell Cell) bool) {
		for offset := -before; offset <= after; offset++ {
			cell, ok := tape.at(tape.head + offset)
			if !ok {
				cell = CELL_BLANK
			}
			if !yield(offset, cell) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the tape.
func (tape *Tape) Clone() *Tape {
	return &Tape{
		Fill:  tape.Fill,
		left:  append([]Cell(nil), tape.left...),
		right: append([]Cell(nil), tape.right...),
		head:  tape.head,
	}
}

// String returns the tape contents with the head cell in brackets.
func (tape *Tape) String() string {
	var sb strings.Builder
	head := tape.Head()
	for n, cell := range tape.Cells() {
		if n == head {
			sb.WriteString("[" + cell.String() + "]")
		} else {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}
