// Package io provides the console collaborators for the LC-3 processor.
// The processor core consumes the Keyboard and Display capabilities; the
// surrounding application chooses between the interactive raw-mode
// Terminal and the deterministic Script console used by tests and piped
// runs.
package io

// Keyboard is the input capability consumed by the processor. The
// memory-mapped keyboard status register polls it, and the input trap
// services block on it.
type Keyboard interface {
	// Poll reports whether a key is ready without blocking.
	Poll() bool
	// ReadChar blocks until the next key arrives and returns it.
	ReadChar() (key byte, err error)
}

// Display is the output capability consumed by the trap services.
type Display interface {
	// WriteChar writes a single character to the display.
	WriteChar(key byte) error
}

// Console combines both capabilities of an attached terminal.
type Console interface {
	Keyboard
	Display
}
