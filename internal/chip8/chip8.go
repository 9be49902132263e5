package chip8

// CHIP-8 memory layout:
//
//	0x000-0x1FF: interpreter and font data
//	0x200-0xFFF: program space
const (
	// ProgramStart is the memory address where CHIP-8 programs begin.
	// Programs load at 0x200 in the virtual machine's memory but are
	// stored from offset 0 in ROM files.
	ProgramStart = 0x200

	// MaxAddress is the highest addressable byte of CHIP-8 memory.
	MaxAddress = 0xFFF

	// MaxProgramSize is the number of bytes available to a program.
	MaxProgramSize = MaxAddress - ProgramStart + 1

	// OpcodeSize is the size of an instruction in bytes.
	OpcodeSize = 2
)
