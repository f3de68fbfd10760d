package io

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTerminal(input string) (t *Terminal, output *bytes.Buffer) {
	output = &bytes.Buffer{}
	t = &Terminal{
		keys: make(chan byte, 64),
		in:   strings.NewReader(input),
		out:  output,
	}
	go t.reader()
	return
}

func TestTerminalReadChar(t *testing.T) {
	assert := assert.New(t)

	terminal, _ := testTerminal("a\r")

	key, err := terminal.ReadChar()
	assert.NoError(err)
	assert.Equal(byte('a'), key)

	// Raw mode sends CR for Enter; the reader folds it to LF.
	key, err = terminal.ReadChar()
	assert.NoError(err)
	assert.Equal(byte('\n'), key)

	_, err = terminal.ReadChar()
	assert.ErrorIs(err, io.EOF)
}

func TestTerminalPoll(t *testing.T) {
	assert := assert.New(t)

	terminal, _ := testTerminal("x")

	// The reader goroutine delivers the key; poll until it lands.
	for !terminal.Poll() {
	}

	key, err := terminal.ReadChar()
	assert.NoError(err)
	assert.Equal(byte('x'), key)
}

func TestTerminalWriteChar(t *testing.T) {
	assert := assert.New(t)

	terminal, output := testTerminal("")
	assert.NoError(terminal.WriteChar('h'))
	assert.NoError(terminal.WriteChar('\n'))

	// Not in raw mode here, so the newline passes through unadorned.
	assert.Equal("h\n", output.String())

	assert.NotPanics(terminal.Restore)
	assert.NotPanics(terminal.Restore)
}
