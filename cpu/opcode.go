package cpu

// Opcode is the 4-bit operation class in bits 15-12 of an instruction word.
type Opcode int

const (
	OP_BR   = Opcode(0)  // br
	OP_ADD  = Opcode(1)  // add
	OP_LD   = Opcode(2)  // ld
	OP_ST   = Opcode(3)  // st
	OP_JSR  = Opcode(4)  // jsr
	OP_AND  = Opcode(5)  // and
	OP_LDR  = Opcode(6)  // ldr
	OP_STR  = Opcode(7)  // str
	OP_RTI  = Opcode(8)  // rti
	OP_NOT  = Opcode(9)  // not
	OP_LDI  = Opcode(10) // ldi
	OP_STI  = Opcode(11) // sti
	OP_JMP  = Opcode(12) // jmp
	OP_RES  = Opcode(13) // res
	OP_LEA  = Opcode(14) // lea
	OP_TRAP = Opcode(15) // trap
)

var opcodeNames = [16]string{
	"br", "add", "ld", "st", "jsr", "and", "ldr", "str",
	"rti", "not", "ldi", "sti", "jmp", "res", "lea", "trap",
}

func (op Opcode) String() (name string) {
	return opcodeNames[int(op)&0xf]
}

// Flag is a condition code. Exactly one of the three flags is set at any
// time once execution has begun.
type Flag uint16

const (
	FL_POS = Flag(1 << 0) // p
	FL_ZRO = Flag(1 << 1) // z
	FL_NEG = Flag(1 << 2) // n
)

// String spells the set flags as branch condition letters, e.g. "nzp".
func (fl Flag) String() string {
	var letters []byte
	if fl&FL_NEG != 0 {
		letters = append(letters, 'n')
	}
	if fl&FL_ZRO != 0 {
		letters = append(letters, 'z')
	}
	if fl&FL_POS != 0 {
		letters = append(letters, 'p')
	}
	return string(letters)
}

// Instruction is a single fetched 16-bit instruction word. The accessor
// methods decode the operand fields; which fields are meaningful depends
// on the opcode.
type Instruction uint16

// Opcode returns the operation class in bits 15-12.
func (in Instruction) Opcode() Opcode { return Opcode(in >> 12) }

// DR returns the destination register field in bits 11-9. The same bits
// hold the source register of ST/STI/STR and the condition mask of BR.
func (in Instruction) DR() int { return int(in>>9) & 7 }

// SR returns the source register field in bits 8-6, which doubles as the
// base register of JMP/JSRR/LDR/STR.
func (in Instruction) SR() int { return int(in>>6) & 7 }

// SR2 returns the second source register field in bits 2-0.
func (in Instruction) SR2() int { return int(in) & 7 }

// ImmBit reports whether ADD/AND take an immediate second operand.
func (in Instruction) ImmBit() bool { return in&(1<<5) != 0 }

// LongBit reports whether JSR is PC-relative rather than register-based.
func (in Instruction) LongBit() bool { return in&(1<<11) != 0 }

// Imm5 returns the sign-extended 5-bit immediate in bits 4-0.
func (in Instruction) Imm5() uint16 { return SignExtend(uint16(in)&0x1f, 5) }

// Offset6 returns the sign-extended 6-bit base offset in bits 5-0.
func (in Instruction) Offset6() uint16 { return SignExtend(uint16(in)&0x3f, 6) }

// PCoffset9 returns the sign-extended 9-bit PC offset in bits 8-0.
func (in Instruction) PCoffset9() uint16 { return SignExtend(uint16(in)&0x1ff, 9) }

// PCoffset11 returns the sign-extended 11-bit PC offset in bits 10-0.
func (in Instruction) PCoffset11() uint16 { return SignExtend(uint16(in)&0x7ff, 11) }

// CondMask returns the n/z/p condition mask of a BR instruction.
func (in Instruction) CondMask() Flag { return Flag(in>>9) & 7 }

// Vector returns the trap service selector in bits 7-0.
func (in Instruction) Vector() Vector { return Vector(in & 0xff) }

// SignExtend treats the low bits of x as a bits-wide two's-complement
// value and widens it to 16 bits.
func SignExtend(x uint16, bits uint) uint16 {
	if (x>>(bits-1))&1 != 0 {
		x |= 0xffff << bits
	}
	return x
}
