package cpu

import (
	"errors"
	"fmt"
	"log"
)

// Vector is the 8-bit trap service selector in bits 7-0 of a TRAP
// instruction.
type Vector uint16

const (
	TRAP_GETC  = Vector(0x20) // getc
	TRAP_OUT   = Vector(0x21) // out
	TRAP_PUTS  = Vector(0x22) // puts
	TRAP_IN    = Vector(0x23) // in
	TRAP_PUTSP = Vector(0x24) // putsp
	TRAP_HALT  = Vector(0x25) // halt
)

func (v Vector) String() string {
	switch v {
	case TRAP_GETC:
		return "getc"
	case TRAP_OUT:
		return "out"
	case TRAP_PUTS:
		return "puts"
	case TRAP_IN:
		return "in"
	case TRAP_PUTSP:
		return "putsp"
	case TRAP_HALT:
		return "halt"
	}
	return fmt.Sprintf("0x%02x", uint16(v))
}

// trap saves the return address in r7 and dispatches the requested
// console service. Vectors outside the service table execute as no-ops.
func (c *Cpu) trap(in Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrTrap(in.Vector()), err)
		}
	}()

	c.Reg[7] = c.PC

	if c.Console == nil {
		return ErrNoConsole
	}

	switch in.Vector() {
	case TRAP_GETC:
		err = c.getc(false)
	case TRAP_OUT:
		err = c.Console.WriteChar(byte(c.Reg[0]))
	case TRAP_PUTS:
		err = c.puts()
	case TRAP_IN:
		err = c.getc(true)
	case TRAP_PUTSP:
		err = c.putsp()
	case TRAP_HALT:
		err = c.halt()
	default:
		if c.Verbose {
			log.Printf("trap: unknown vector %v", in.Vector())
		}
	}
	return
}

// getc reads one key into r0, zero-extended, and sets the condition
// code. With prompt set it implements IN: a prompt is printed first and
// the key is echoed.
func (c *Cpu) getc(prompt bool) (err error) {
	if prompt {
		err = c.print("Enter a character: ")
		if err != nil {
			return
		}
	}

	key, err := c.Console.ReadChar()
	if err != nil {
		return
	}

	if prompt {
		err = c.Console.WriteChar(key)
		if err != nil {
			return
		}
	}

	c.Reg[0] = uint16(key)
	c.setCC(0)
	return
}

// puts writes the string at r0, one character per word, up to but not
// including the first zero word. r0 is left unchanged.
func (c *Cpu) puts() (err error) {
	for addr := c.Reg[0]; ; addr++ {
		var word uint16
		word, err = c.Mem.Read(addr)
		if err != nil || word == 0 {
			return
		}
		err = c.Console.WriteChar(byte(word))
		if err != nil {
			return
		}
	}
}

// putsp writes the string at r0, two packed characters per word, low
// byte first. A zero high byte ends its word early; the first zero low
// byte ends the string.
func (c *Cpu) putsp() (err error) {
	for addr := c.Reg[0]; ; addr++ {
		var word uint16
		word, err = c.Mem.Read(addr)
		if err != nil {
			return
		}
		low := byte(word)
		if low == 0 {
			return
		}
		err = c.Console.WriteChar(low)
		if err != nil {
			return
		}
		if high := byte(word >> 8); high != 0 {
			err = c.Console.WriteChar(high)
			if err != nil {
				return
			}
		}
	}
}

// halt prints the halt notice and stops the processor.
func (c *Cpu) halt() (err error) {
	err = c.print("HALT\n")
	c.running = false
	return
}

func (c *Cpu) print(text string) (err error) {
	for _, b := range []byte(text) {
		err = c.Console.WriteChar(b)
		if err != nil {
			return
		}
	}
	return
}
