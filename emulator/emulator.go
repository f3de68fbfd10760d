// Package emulator wires the LC-3 processor to a console and owns the
// load/reset/run lifecycle of one program image.
package emulator

import (
	"log"

	"github.com/ezrec/lc3/cpu"
	"github.com/ezrec/lc3/io"
)

// Emulator is one processor attached to one console.
type Emulator struct {
	Verbose  bool // If set, enables per-instruction trace logging.
	*cpu.Cpu      // The processor being driven.

	Console io.Console // Console shared by the traps and the keyboard registers.
}

// NewEmulator creates an emulator attached to the given console.
func NewEmulator(console io.Console) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(console),
		Console: console,
	}
	return
}

// LoadImage loads the program image file at path into memory. Images can
// be stacked; each one carries its own load origin.
func (emu *Emulator) LoadImage(path string) (err error) {
	if emu.Verbose {
		log.Printf("emulator: load %v", path)
	}
	return emu.Cpu.Mem.LoadImageFile(path)
}

// Reset prepares the processor for a fresh run of the loaded image.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// Run executes the loaded image until the HALT service stops the
// processor. A runtime failure carries the program counter of the
// faulting instruction.
func (emu *Emulator) Run() (err error) {
	for !emu.Cpu.Halted() {
		pc := emu.Cpu.PC
		err = emu.Cpu.Step()
		if err != nil {
			return &ErrRuntime{PC: pc, Err: err}
		}
	}
	return
}
