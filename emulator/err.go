package emulator

import (
	"github.com/ezrec/lc3/translate"
)

var f = translate.From

// ErrRuntime reports the program counter of a failed instruction.
type ErrRuntime struct {
	PC  uint16
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%04x %v", err.PC, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
