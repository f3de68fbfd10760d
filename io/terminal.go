package io

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Terminal is the interactive console. OpenTerminal puts the controlling
// terminal into raw mode and starts a reader goroutine feeding an
// internal key buffer, so Poll never blocks and ReadChar does. Restore
// must be called before the process exits.
type Terminal struct {
	keys chan byte
	in   io.Reader
	out  io.Writer

	fd       int
	old      *term.State
	restored sync.Once
}

var _ Console = (*Terminal)(nil)

// OpenTerminal switches stdin to raw mode and returns the console. When
// stdin is not a terminal (a piped run) the mode switch is skipped and
// input is read as-is.
func OpenTerminal() (t *Terminal, err error) {
	t = &Terminal{
		keys: make(chan byte, 64),
		in:   os.Stdin,
		out:  os.Stdout,
		fd:   int(os.Stdin.Fd()),
	}

	if term.IsTerminal(t.fd) {
		t.old, err = term.MakeRaw(t.fd)
		if err != nil {
			return
		}
	}

	go t.reader()
	return
}

// reader feeds stdin into the key buffer one byte at a time. The buffer
// channel is closed when the input stream ends.
func (t *Terminal) reader() {
	var one [1]byte
	for {
		n, err := t.in.Read(one[:])
		if n > 0 {
			key := one[0]
			if key == '\r' {
				// Raw mode sends CR for Enter.
				key = '\n'
			}
			t.keys <- key
		}
		if err != nil {
			close(t.keys)
			return
		}
	}
}

// Poll reports whether a key is waiting in the buffer.
func (t *Terminal) Poll() bool {
	return len(t.keys) > 0
}

// ReadChar blocks until a key arrives. It returns io.EOF once the input
// stream is exhausted and the buffer has drained.
func (t *Terminal) ReadChar() (key byte, err error) {
	key, ok := <-t.keys
	if !ok {
		err = io.EOF
	}
	return
}

// WriteChar writes one character to the terminal. Raw mode leaves output
// post-processing off, so a newline needs an explicit carriage return.
func (t *Terminal) WriteChar(key byte) (err error) {
	if key == '\n' && t.old != nil {
		_, err = t.out.Write([]byte{'\r', '\n'})
		return
	}
	_, err = t.out.Write([]byte{key})
	return
}

// Restore returns the terminal to its original mode. It is safe to call
// from both the deferred path and a signal handler.
func (t *Terminal) Restore() {
	t.restored.Do(func() {
		if t.old != nil {
			_ = term.Restore(t.fd, t.old)
		}
	})
}
