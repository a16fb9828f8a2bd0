package cpu

import (
	"github.com/ezrec/tmachine/translate"
)

var f = translate.From

// ErrProgramSize is returned when a program does not fit in instruction
// memory. The value is the rejected program size, in words.
type ErrProgramSize int

func (err ErrProgramSize) Error() string {
	return f("program of %d words exceeds %d words", int(err), RAM_SIZE)
}

func (err ErrProgramSize) Is(target error) (ok bool) {
	_, ok = target.(ErrProgramSize)
	return
}
