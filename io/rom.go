// Package io provides the program image and tape input readers for the
// tape machine.
package io

import (
	"encoding/binary"
	"io"
)

// Rom is a program image: 16-bit little-endian words, back to back.
type Rom struct {
	Capacity int      // Maximum number of words; 0 is unlimited.
	Data     []uint16 // Image words.
}

var (
	_ io.ReaderFrom = (*Rom)(nil)
	_ io.WriterTo   = (*Rom)(nil)
)

// ReadFrom replaces Data with the image read from r.
// An image with a trailing odd byte, or one larger than Capacity, is
// rejected and Data is left unchanged.
func (rom *Rom) ReadFrom(r io.Reader) (n int64, err error) {
	if rom.Capacity > 0 {
		// One byte past capacity is enough to detect an oversized image.
		r = io.LimitReader(r, int64(rom.Capacity)*2+1)
	}

	buf, err := io.ReadAll(r)
	n = int64(len(buf))
	if err != nil {
		return
	}

	if rom.Capacity > 0 && len(buf) > rom.Capacity*2 {
		err = ErrRomCapacity
		return
	}

	if len(buf)%2 != 0 {
		err = ErrRomAlign
		return
	}

	data := make([]uint16, len(buf)/2)
	for i := range data {
		data[i] = binary.LittleEndian.Uint16(buf[i*2:])
	}
	rom.Data = data

	return
}

// WriteTo writes the image in Data to w.
func (rom *Rom) WriteTo(w io.Writer) (n int64, err error) {
	buf := make([]byte, 0, len(rom.Data)*2)
	for _, word := range rom.Data {
		buf = binary.LittleEndian.AppendUint16(buf, word)
	}

	written, err := w.Write(buf)
	n = int64(written)
	if err == nil && written != len(buf) {
		err = io.ErrShortWrite
	}

	return
}
