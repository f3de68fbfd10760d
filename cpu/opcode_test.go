package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignExtend(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		x     uint16
		bits  uint
		value int16
	}){
		{"imm5_pos", 0x0f, 5, 15},
		{"imm5_neg", 0x1d, 5, -3},
		{"imm5_min", 0x10, 5, -16},
		{"imm5_zero", 0x00, 5, 0},
		{"offset6_pos", 0x1f, 6, 31},
		{"offset6_neg", 0x3f, 6, -1},
		{"offset6_min", 0x20, 6, -32},
		{"pcoffset9_pos", 0x0ff, 9, 255},
		{"pcoffset9_neg", 0x1ff, 9, -1},
		{"pcoffset9_min", 0x100, 9, -256},
		{"pcoffset11_pos", 0x3ff, 11, 1023},
		{"pcoffset11_neg", 0x7fe, 11, -2},
		{"pcoffset11_min", 0x400, 11, -1024},
	}

	for _, entry := range table {
		got := SignExtend(entry.x, entry.bits)
		assert.Equal(entry.value, int16(got), entry.name)
	}
}

func TestSignExtendExhaustive(t *testing.T) {
	assert := assert.New(t)

	// For every field width in use, extending the masked field must agree
	// with two's-complement reinterpretation of the low bits.
	for _, bits := range []uint{5, 6, 9, 11} {
		mask := uint16(1)<<bits - 1
		for x := uint16(0); x <= mask; x++ {
			want := int16(x)
			if x>>(bits-1) != 0 {
				want = int16(x) - int16(1)<<bits
			}
			if !assert.Equal(want, int16(SignExtend(x, bits)), "bits=%d x=0x%04x", bits, x) {
				return
			}
		}
	}
}

func TestInstructionFields(t *testing.T) {
	assert := assert.New(t)

	// ADD r1, r2, #-3
	in := Instruction(0x12bd)
	assert.Equal(OP_ADD, in.Opcode())
	assert.Equal(1, in.DR())
	assert.Equal(2, in.SR())
	assert.True(in.ImmBit())
	assert.Equal(int16(-3), int16(in.Imm5()))

	// AND r3, r4, r5
	in = Instruction(0x5705)
	assert.Equal(OP_AND, in.Opcode())
	assert.Equal(3, in.DR())
	assert.Equal(4, in.SR())
	assert.False(in.ImmBit())
	assert.Equal(5, in.SR2())

	// JSR with an 11-bit offset of -2
	in = Instruction(0x4ffe)
	assert.Equal(OP_JSR, in.Opcode())
	assert.True(in.LongBit())
	assert.Equal(int16(-2), int16(in.PCoffset11()))

	// BRnz with a 9-bit offset of 4
	in = Instruction(0x0c04)
	assert.Equal(OP_BR, in.Opcode())
	assert.Equal(FL_NEG|FL_ZRO, in.CondMask())
	assert.Equal(int16(4), int16(in.PCoffset9()))

	// TRAP halt
	in = Instruction(0xf025)
	assert.Equal(OP_TRAP, in.Opcode())
	assert.Equal(TRAP_HALT, in.Vector())
}

func TestOpcodeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("br", OP_BR.String())
	assert.Equal("add", OP_ADD.String())
	assert.Equal("res", OP_RES.String())
	assert.Equal("trap", OP_TRAP.String())
}

func TestFlagString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("p", FL_POS.String())
	assert.Equal("z", FL_ZRO.String())
	assert.Equal("n", FL_NEG.String())
	assert.Equal("nzp", (FL_NEG | FL_ZRO | FL_POS).String())
	assert.Equal("", Flag(0).String())
}

func TestVectorString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("getc", TRAP_GETC.String())
	assert.Equal("halt", TRAP_HALT.String())
	assert.Equal("0x7b", Vector(0x7b).String())
}
