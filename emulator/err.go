package emulator

import (
	"errors"

	"github.com/ezrec/tmachine/translate"
)

var f = translate.From

var (
	ErrLimit      = errors.New(f("step limit reached"))
	ErrExpression = errors.New(f("expression invalid"))
)

// ErrRuntime indicates the case and step at which a run was cut off.
type ErrRuntime struct {
	Case  int
	Steps int
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("case %d step %d %v", err.Case, err.Steps, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrLimitExpression is returned for a step limit expression that does not
// evaluate to a non-negative integer.
type ErrLimitExpression struct {
	Expr string
	Err  error
}

func (err *ErrLimitExpression) Error() string {
	if err.Err == nil {
		return f("limit '%v' is not a non-negative integer", err.Expr)
	}
	return f("limit '%v' %v", err.Expr, err.Err)
}

func (err *ErrLimitExpression) Unwrap() error {
	if err.Err == nil {
		return ErrExpression
	}
	return errors.Join(ErrExpression, err.Err)
}
