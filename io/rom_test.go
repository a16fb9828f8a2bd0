package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRom_ReadFrom(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Capacity: 4}
	n, err := rom.ReadFrom(bytes.NewReader([]byte{0x78, 0x80, 0x00, 0xa0, 0x00, 0xd0}))
	assert.NoError(err)
	assert.Equal(int64(6), n)
	assert.Equal([]uint16{0x8078, 0xa000, 0xd000}, rom.Data)
}

func TestRom_ReadFrom_Empty(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Capacity: 4}
	n, err := rom.ReadFrom(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(int64(0), n)
	assert.Empty(rom.Data)
}

func TestRom_ReadFrom_Full(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Capacity: 4}
	_, err := rom.ReadFrom(bytes.NewReader(make([]byte, 8)))
	assert.NoError(err)
	assert.Len(rom.Data, 4)
}

func TestRom_ReadFrom_Capacity(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Capacity: 4096, Data: []uint16{0x1234}}
	n, err := rom.ReadFrom(bytes.NewReader(make([]byte, 8194)))
	assert.ErrorIs(err, ErrRomCapacity)
	assert.Equal(int64(8193), n)
	assert.Equal([]uint16{0x1234}, rom.Data)

	// Odd sized and too large is still too large.
	_, err = rom.ReadFrom(bytes.NewReader(make([]byte, 8193)))
	assert.ErrorIs(err, ErrRomCapacity)
}

func TestRom_ReadFrom_Unlimited(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}
	_, err := rom.ReadFrom(bytes.NewReader(make([]byte, 10000)))
	assert.NoError(err)
	assert.Len(rom.Data, 5000)
}

func TestRom_ReadFrom_Align(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Capacity: 4}
	_, err := rom.ReadFrom(bytes.NewReader([]byte{0x01, 0x02, 0x03}))
	assert.ErrorIs(err, ErrRomAlign)
	assert.Nil(rom.Data)
}

type failReader struct{}

var errFail = errors.New("fail")

func (failReader) Read([]byte) (int, error) {
	return 0, errFail
}

func TestRom_ReadFrom_Error(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Capacity: 4}
	_, err := rom.ReadFrom(failReader{})
	assert.ErrorIs(err, errFail)
}

func TestRom_WriteTo(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []uint16{0x8078, 0xa000, 0xd000}}

	var buf bytes.Buffer
	n, err := rom.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(6), n)
	assert.Equal([]byte{0x78, 0x80, 0x00, 0xa0, 0x00, 0xd0}, buf.Bytes())

	again := &Rom{}
	_, err = again.ReadFrom(&buf)
	assert.NoError(err)
	assert.Equal(rom.Data, again.Data)
}
