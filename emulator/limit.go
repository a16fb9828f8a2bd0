package emulator

import (
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// EvalLimit evaluates a step limit expression, such as "RAM_SIZE * 100".
// The expression may use any integer valued define.
func (emu *Emulator) EvalLimit(expr string) (limit int, err error) {
	thread := starlark.Thread{Name: "limit"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range emu.Defines() {
		value, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer defines.
			continue
		}
		pred[key] = starlark.MakeInt64(value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "limit", prog, pred)
	if err != nil {
		err = &ErrLimitExpression{Expr: expr, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrLimitExpression{Expr: expr}
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 {
		err = &ErrLimitExpression{Expr: expr}
		return
	}

	limit = int(st_int64)
	return
}
