// Package chip8 implements the CHIP-8 instruction codec shared by the
// assembler and the disassembler.
//
// # Instruction Set
//
// CHIP-8 instructions are 16 bits wide and stored big-endian. An opcode
// divides into four nibbles; the leading nibble selects the instruction
// family and the remaining bits hold either fixed identification bits or
// operand fields:
//
//	nnn - 12-bit address (bits 0-11)
//	kk  - 8-bit constant (bits 0-7)
//	n   - 4-bit constant (bits 0-3)
//	x   - register index (bits 8-11)
//	y   - register index (bits 4-7)
//
// # Instruction Table
//
// A single declarative table drives both translation directions. Every
// instruction form carries the mask and value bits that identify it in
// binary and the operand pattern that selects it in text. Families with a
// fixed low byte (0x0, 0xE, 0xF) match on mask 0xF0FF, the arithmetic
// family 0x8 on 0xF00F and all remaining families on the leading nibble
// alone.
//
// Mnemonics are not unique: LD names eleven instruction forms and the
// operand shapes resolve the overload. SE V1, V2 selects the register
// comparison 0x5120 while SE V1, 2 selects the constant comparison 0x3102.
//
// # Decoding
//
// Decoding is total. Opcode values that match no instruction form render
// as the raw 4-digit hex value, which the assembler accepts back through
// its raw opcode path. Disassembling arbitrary data therefore always
// produces source that reassembles.
package chip8
