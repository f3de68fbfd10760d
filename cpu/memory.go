package cpu

import (
	"github.com/ezrec/lc3/io"
)

const (
	// MEMORY_SIZE is the number of 16-bit words in the address space.
	MEMORY_SIZE = 1 << 16
)

// Memory-mapped keyboard registers.
const (
	MR_KBSR = uint16(0xfe00) // keyboard status
	MR_KBDR = uint16(0xfe02) // keyboard data
)

// KBSR_READY is set in the keyboard status register when a key is waiting.
const KBSR_READY = uint16(1 << 15)

// Memory is the 64K-word address space of the processor. All cells are
// plain storage except the keyboard status register, whose Read polls the
// attached keyboard. Addresses are produced by 16-bit arithmetic and wrap
// at the top of the space.
type Memory struct {
	Keyboard io.Keyboard // Polled by MR_KBSR reads; may be nil.

	cell [MEMORY_SIZE]uint16
}

// Read returns the word at addr. Reading MR_KBSR first polls the
// keyboard: if a key is waiting, the status register is set to KBSR_READY
// and the key is stored in the data register; otherwise the status
// register is cleared. The data register is not consumed by reading it.
func (m *Memory) Read(addr uint16) (value uint16, err error) {
	if addr == MR_KBSR {
		err = m.pollKeyboard()
		if err != nil {
			return
		}
	}
	value = m.cell[addr]
	return
}

// Write stores value at addr.
func (m *Memory) Write(addr uint16, value uint16) {
	m.cell[addr] = value
}

func (m *Memory) pollKeyboard() (err error) {
	if m.Keyboard == nil || !m.Keyboard.Poll() {
		m.cell[MR_KBSR] = 0
		return
	}

	var key byte
	key, err = m.Keyboard.ReadChar()
	if err != nil {
		return
	}
	m.cell[MR_KBSR] = KBSR_READY
	m.cell[MR_KBDR] = uint16(key)
	return
}
