package cpu

import (
	"errors"

	"github.com/ezrec/lc3/translate"
)

var f = translate.From

var (
	// Image load errors
	ErrImageEmpty     = errors.New(f("image has no origin word"))
	ErrImageTruncated = errors.New(f("image ends in a partial word"))
	ErrImageTooLarge  = errors.New(f("image does not fit below the top of memory"))

	// Console errors
	ErrNoConsole = errors.New(f("no console attached"))
)

// ErrTrap reports the failing trap service vector.
type ErrTrap Vector

func (et ErrTrap) Error() string {
	return f("trap %v", Vector(et))
}

func (et ErrTrap) Is(err error) (ok bool) {
	_, ok = err.(ErrTrap)
	return
}
