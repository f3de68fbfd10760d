package cpu

import (
	"log"

	"github.com/ezrec/lc3/io"
)

// PC_START is the address where execution begins after a reset.
const PC_START = uint16(0x3000)

// Cpu is one LC-3 processor: register file, condition code, and address
// space. A single goroutine owns it for the duration of a run.
type Cpu struct {
	Verbose bool // Set to enable per-instruction trace logging.

	Reg  [8]uint16 // General-purpose registers r0-r7.
	PC   uint16    // Program counter.
	Cond Flag      // Condition code.

	Mem *Memory // Address space.

	Console io.Console // Console used by the trap service routines.

	running bool
}

// NewCpu creates a processor with a zeroed address space, attached to the
// given console. The console serves both the trap service routines and
// the memory-mapped keyboard registers.
func NewCpu(console io.Console) (c *Cpu) {
	c = &Cpu{
		Mem:     &Memory{Keyboard: console},
		Console: console,
	}
	return
}

// Reset prepares the processor for a fresh run: registers cleared,
// condition code ZRO, program counter at PC_START. Memory contents are
// preserved, so a previously loaded image survives the reset.
func (c *Cpu) Reset() {
	if c.Verbose {
		log.Printf("cpu: reset")
	}

	clear(c.Reg[:])
	c.PC = PC_START
	c.Cond = FL_ZRO
	c.running = true
}

// Halted reports whether the processor has executed the HALT service.
// A halted processor stays halted until the next Reset.
func (c *Cpu) Halted() bool { return !c.running }

// Step fetches, decodes, and executes a single instruction.
func (c *Cpu) Step() (err error) {
	word, err := c.Mem.Read(c.PC)
	if err != nil {
		return
	}
	in := Instruction(word)

	if c.Verbose {
		log.Printf("%04x: %04x  %s", c.PC, word, in.Disasm(c.PC+1))
	}

	c.PC++ // wraps at the top of memory
	return c.Execute(in)
}

// Run executes instructions until the HALT service stops the processor.
func (c *Cpu) Run() (err error) {
	for c.running {
		err = c.Step()
		if err != nil {
			return
		}
	}
	return
}

// Execute applies a single instruction to the processor state. The
// program counter has already been advanced past the instruction, so the
// PC-relative opcodes and the r7 linkage of JSR/TRAP see the address of
// the next instruction.
func (c *Cpu) Execute(in Instruction) (err error) {
	switch in.Opcode() {
	case OP_ADD:
		c.add(in)
	case OP_AND:
		c.and(in)
	case OP_NOT:
		c.not(in)
	case OP_BR:
		c.br(in)
	case OP_JMP:
		c.jmp(in)
	case OP_JSR:
		c.jsr(in)
	case OP_LD:
		err = c.ld(in)
	case OP_LDI:
		err = c.ldi(in)
	case OP_LDR:
		err = c.ldr(in)
	case OP_LEA:
		c.lea(in)
	case OP_ST:
		c.st(in)
	case OP_STI:
		err = c.sti(in)
	case OP_STR:
		c.str(in)
	case OP_TRAP:
		err = c.trap(in)
	case OP_RES, OP_RTI:
		// Reserved; executes as a no-op.
	}
	return
}

// setCC sets the condition code from the value just written to register r.
func (c *Cpu) setCC(r int) {
	switch {
	case c.Reg[r] == 0:
		c.Cond = FL_ZRO
	case c.Reg[r]>>15 != 0:
		c.Cond = FL_NEG
	default:
		c.Cond = FL_POS
	}
}

// add computes DR = SR1 + SR2, or DR = SR1 + imm5 in immediate mode.
func (c *Cpu) add(in Instruction) {
	if in.ImmBit() {
		c.Reg[in.DR()] = c.Reg[in.SR()] + in.Imm5()
	} else {
		c.Reg[in.DR()] = c.Reg[in.SR()] + c.Reg[in.SR2()]
	}
	c.setCC(in.DR())
}

// and computes DR = SR1 & SR2, or DR = SR1 & imm5 in immediate mode.
func (c *Cpu) and(in Instruction) {
	if in.ImmBit() {
		c.Reg[in.DR()] = c.Reg[in.SR()] & in.Imm5()
	} else {
		c.Reg[in.DR()] = c.Reg[in.SR()] & c.Reg[in.SR2()]
	}
	c.setCC(in.DR())
}

// not computes DR = ^SR.
func (c *Cpu) not(in Instruction) {
	c.Reg[in.DR()] = ^c.Reg[in.SR()]
	c.setCC(in.DR())
}

// br adds PCoffset9 to the program counter when the instruction's
// condition mask covers the current condition code.
func (c *Cpu) br(in Instruction) {
	if in.CondMask()&c.Cond != 0 {
		c.PC += in.PCoffset9()
	}
}

// jmp sets the program counter to the base register. BaseR=r7 is RET.
func (c *Cpu) jmp(in Instruction) {
	c.PC = c.Reg[in.SR()]
}

// jsr saves the return address in r7, then jumps PC-relative (JSR) or to
// the base register (JSRR).
func (c *Cpu) jsr(in Instruction) {
	c.Reg[7] = c.PC
	if in.LongBit() {
		c.PC += in.PCoffset11()
	} else {
		c.PC = c.Reg[in.SR()]
	}
}

// ld loads DR from memory at PC+PCoffset9.
func (c *Cpu) ld(in Instruction) (err error) {
	value, err := c.Mem.Read(c.PC + in.PCoffset9())
	if err != nil {
		return
	}
	c.Reg[in.DR()] = value
	c.setCC(in.DR())
	return
}

// ldi loads DR through the pointer stored at PC+PCoffset9.
func (c *Cpu) ldi(in Instruction) (err error) {
	ptr, err := c.Mem.Read(c.PC + in.PCoffset9())
	if err != nil {
		return
	}
	value, err := c.Mem.Read(ptr)
	if err != nil {
		return
	}
	c.Reg[in.DR()] = value
	c.setCC(in.DR())
	return
}

// ldr loads DR from memory at BaseR+offset6.
func (c *Cpu) ldr(in Instruction) (err error) {
	value, err := c.Mem.Read(c.Reg[in.SR()] + in.Offset6())
	if err != nil {
		return
	}
	c.Reg[in.DR()] = value
	c.setCC(in.DR())
	return
}

// lea loads DR with the address PC+PCoffset9 itself.
func (c *Cpu) lea(in Instruction) {
	c.Reg[in.DR()] = c.PC + in.PCoffset9()
	c.setCC(in.DR())
}

// st stores SR to memory at PC+PCoffset9.
func (c *Cpu) st(in Instruction) {
	c.Mem.Write(c.PC+in.PCoffset9(), c.Reg[in.DR()])
}

// sti stores SR through the pointer stored at PC+PCoffset9.
func (c *Cpu) sti(in Instruction) (err error) {
	ptr, err := c.Mem.Read(c.PC + in.PCoffset9())
	if err != nil {
		return
	}
	c.Mem.Write(ptr, c.Reg[in.DR()])
	return
}

// str stores SR to memory at BaseR+offset6.
func (c *Cpu) str(in Instruction) {
	c.Mem.Write(c.Reg[in.SR()]+in.Offset6(), c.Reg[in.DR()])
}
