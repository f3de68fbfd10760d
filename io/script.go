package io

import (
	"io"
)

// Script is a deterministic console: keys come from Input and display
// output goes to Output. A nil Input never has a key ready; a nil Output
// discards everything written to it.
type Script struct {
	Input  io.Reader
	Output io.Writer

	pending []byte
}

var _ Console = (*Script)(nil)

// Poll reports whether Input has a key ready. A key consumed from Input
// by the poll stays buffered for the next ReadChar.
func (s *Script) Poll() bool {
	if len(s.pending) > 0 {
		return true
	}
	if s.Input == nil {
		return false
	}

	var one [1]byte
	n, _ := s.Input.Read(one[:])
	if n == 0 {
		return false
	}
	s.pending = append(s.pending, one[0])
	return true
}

// ReadChar returns the next key from Input.
func (s *Script) ReadChar() (key byte, err error) {
	if len(s.pending) > 0 {
		key = s.pending[0]
		s.pending = s.pending[1:]
		return
	}
	if s.Input == nil {
		err = io.EOF
		return
	}

	var one [1]byte
	_, err = io.ReadFull(s.Input, one[:])
	key = one[0]
	return
}

// WriteChar writes one character to Output.
func (s *Script) WriteChar(key byte) (err error) {
	if s.Output == nil {
		return
	}
	_, err = s.Output.Write([]byte{key})
	return
}
