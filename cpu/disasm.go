package cpu

import (
	"fmt"
)

// Disasm renders the instruction as LC-3 assembly. pc is the address of
// the following instruction, which is what the PC-relative operand
// fields are relative to; absolute targets are shown instead of raw
// offsets.
func (in Instruction) Disasm(pc uint16) string {
	switch in.Opcode() {
	case OP_ADD, OP_AND:
		if in.ImmBit() {
			return fmt.Sprintf("%v r%d, r%d, #%d",
				in.Opcode(), in.DR(), in.SR(), int16(in.Imm5()))
		}
		return fmt.Sprintf("%v r%d, r%d, r%d",
			in.Opcode(), in.DR(), in.SR(), in.SR2())
	case OP_NOT:
		return fmt.Sprintf("not r%d, r%d", in.DR(), in.SR())
	case OP_BR:
		return fmt.Sprintf("br%v 0x%04x", in.CondMask(), pc+in.PCoffset9())
	case OP_JMP:
		if in.SR() == 7 {
			return "ret"
		}
		return fmt.Sprintf("jmp r%d", in.SR())
	case OP_JSR:
		if in.LongBit() {
			return fmt.Sprintf("jsr 0x%04x", pc+in.PCoffset11())
		}
		return fmt.Sprintf("jsrr r%d", in.SR())
	case OP_LD, OP_LDI, OP_LEA:
		return fmt.Sprintf("%v r%d, 0x%04x",
			in.Opcode(), in.DR(), pc+in.PCoffset9())
	case OP_LDR:
		return fmt.Sprintf("ldr r%d, r%d, #%d",
			in.DR(), in.SR(), int16(in.Offset6()))
	case OP_ST, OP_STI:
		return fmt.Sprintf("%v r%d, 0x%04x",
			in.Opcode(), in.DR(), pc+in.PCoffset9())
	case OP_STR:
		return fmt.Sprintf("str r%d, r%d, #%d",
			in.DR(), in.SR(), int16(in.Offset6()))
	case OP_TRAP:
		return fmt.Sprintf("trap %v", in.Vector())
	}
	return in.Opcode().String()
}
