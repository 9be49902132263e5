// Package program contains the translation result model shared by the
// assembler and the disassembler.
package program

import "fmt"

// Instruction is one successfully translated instruction.
type Instruction struct {
	Address uint16 // memory address the opcode loads at
	Opcode  uint16 // opcode value, stored big-endian in ROM form
	Text    string // source line when assembling, canonical form when disassembling
	Line    int    // 1-based source line, 0 for disassembled instructions
}

// HexOpcode returns the 4-digit hex text form of the opcode.
func (i Instruction) HexOpcode() string {
	return fmt.Sprintf("%04x", i.Opcode)
}

// Diagnostic records a source line that could not be translated.
type Diagnostic struct {
	Line int    // 1-based source line
	Text string // offending source text
	Err  error
}

// String implements the fmt.Stringer interface.
func (d Diagnostic) String() string {
	return fmt.Sprintf("[Line %d] %v", d.Line, d.Err)
}

// Program is an ordered sequence of translated instructions plus the
// diagnostics collected along the way. Failed lines produce diagnostics
// instead of instructions, the instruction sequence itself stays gapless.
type Program struct {
	Instructions []Instruction
	Diagnostics  []Diagnostic
}

// ROM returns the binary form of the program, the 2 bytes of every opcode
// in big-endian order, concatenated in instruction order.
func (p *Program) ROM() []byte {
	rom := make([]byte, 0, len(p.Instructions)*2)
	for _, ins := range p.Instructions {
		rom = append(rom, byte(ins.Opcode>>8), byte(ins.Opcode))
	}
	return rom
}
