package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisasm(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		in   Instruction
		pc   uint16
		text string
	}){
		{"add_imm", encRRI(OP_ADD, 1, 2, -3), 0x3001, "add r1, r2, #-3"},
		{"add_reg", encRRR(OP_ADD, 0, 1, 2), 0x3001, "add r0, r1, r2"},
		{"and_imm", encRRI(OP_AND, 0, 0, 0), 0x3001, "and r0, r0, #0"},
		{"not", encRRR(OP_NOT, 0, 1, 0x3f), 0x3001, "not r0, r1"},
		{"br_nzp", encBR(FL_NEG|FL_ZRO|FL_POS, 0x10), 0x3001, "brnzp 0x3011"},
		{"br_z_back", encBR(FL_ZRO, -1), 0x3001, "brz 0x3000"},
		{"jmp", encRRR(OP_JMP, 0, 3, 0), 0x3001, "jmp r3"},
		{"ret", encRRR(OP_JMP, 0, 7, 0), 0x3001, "ret"},
		{"jsr", Instruction(0x4810), 0x3001, "jsr 0x3011"},
		{"jsrr", encRRR(OP_JSR, 0, 2, 0), 0x3001, "jsrr r2"},
		{"ld", encRO9(OP_LD, 2, 4), 0x3001, "ld r2, 0x3005"},
		{"ldi", encRO9(OP_LDI, 0, 3), 0x3001, "ldi r0, 0x3004"},
		{"ldr", encRRO6(OP_LDR, 1, 5, -2), 0x3001, "ldr r1, r5, #-2"},
		{"lea", encRO9(OP_LEA, 6, -1), 0x3001, "lea r6, 0x3000"},
		{"st", encRO9(OP_ST, 2, 4), 0x3001, "st r2, 0x3005"},
		{"sti", encRO9(OP_STI, 3, 3), 0x3001, "sti r3, 0x3004"},
		{"str", encRRO6(OP_STR, 0, 4, 3), 0x3001, "str r0, r4, #3"},
		{"trap_named", encTrap(TRAP_PUTS), 0x3001, "trap puts"},
		{"trap_raw", encTrap(Vector(0x7b)), 0x3001, "trap 0x7b"},
		{"rti", Instruction(0x8000), 0x3001, "rti"},
		{"res", Instruction(0xd000), 0x3001, "res"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.in.Disasm(entry.pc), entry.name)
	}
}
