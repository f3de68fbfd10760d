// Package cpu implements the LC-3 processor model.
//
// The processor consists of eight 16-bit general-purpose registers (r0-r7),
// a program counter, a condition-code register, and a 64K-word address
// space. Two addresses are mapped to the keyboard device; reading the
// keyboard status register polls the attached console. Programs are loaded
// from big-endian image files and executed one instruction at a time until
// the HALT service routine stops the processor.
package cpu
