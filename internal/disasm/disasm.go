// Package disasm translates CHIP-8 binary programs into assembly text.
package disasm

import (
	"github.com/retroenv/chip8asm/internal/chip8"
	"github.com/retroenv/chip8asm/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// Disasm translates a ROM with a linear sweep from the program load base.
type Disasm struct {
	logger *log.Logger
}

// New creates a new disassembler.
func New(logger *log.Logger) *Disasm {
	return &Disasm{
		logger: logger,
	}
}

// Disassemble decodes every opcode position of the ROM in address order.
// The sweep reads big-endian words at even offsets behind the program load
// base. ROMs can interleave sprite data with code, such words decode
// through the raw hex fallback and survive reassembly unchanged. A
// trailing byte after the last full word carries no decodable opcode and
// is dropped.
func (d *Disasm) Disassemble(rom []byte) *program.Program {
	prog := &program.Program{
		Instructions: make([]program.Instruction, 0, len(rom)/chip8.OpcodeSize),
	}

	for offset := 0; offset+chip8.OpcodeSize <= len(rom); offset += chip8.OpcodeSize {
		opcode := uint16(rom[offset])<<8 | uint16(rom[offset+1])

		prog.Instructions = append(prog.Instructions, program.Instruction{
			Address: uint16(chip8.ProgramStart + offset),
			Opcode:  opcode,
			Text:    chip8.Decode(opcode),
		})
	}

	if len(rom)%chip8.OpcodeSize != 0 {
		d.logger.Debug("Ignoring trailing byte after last full opcode",
			log.Int("offset", len(rom)-1))
	}
	return prog
}
