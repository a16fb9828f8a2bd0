package io

import (
	"errors"

	"github.com/ezrec/tmachine/translate"
)

var f = translate.From

var (
	// Rom errors
	ErrRomAlign    = errors.New(f("rom image is not word aligned"))
	ErrRomCapacity = errors.New(f("rom image exceeds capacity"))
)
