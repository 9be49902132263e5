package chip8

import (
	"fmt"
	"strconv"
	"strings"
)

// FindInstruction returns the instruction form matching the opcode value,
// or nil if no form matches.
func FindInstruction(opcode uint16) *Instruction {
	firstNibble := (opcode & 0xF000) >> 12

	for _, ins := range Instructions[firstNibble] {
		if opcode&ins.Mask == ins.Value {
			return ins
		}
	}
	return nil
}

// Decode translates a 16-bit opcode into its canonical assembly text.
// Decoding is total: values matching no instruction form render as the
// raw 4-digit hex opcode, which assembles back through the raw line path.
func Decode(opcode uint16) string {
	ins := FindInstruction(opcode)
	if ins == nil {
		return fmt.Sprintf("%04x", opcode)
	}
	return ins.format(opcode)
}

// format renders the instruction with the operand fields of the opcode.
func (ins *Instruction) format(opcode uint16) string {
	if len(ins.Operands) == 0 {
		return ins.Name
	}

	operands := make([]string, len(ins.Operands))
	for i, pattern := range ins.Operands {
		operands[i] = pattern.format(opcode)
	}
	return ins.Name + " " + strings.Join(operands, ", ")
}

// format renders a single operand of the opcode.
func (o Operand) format(opcode uint16) string {
	switch {
	case o.Keyword != "":
		return o.Keyword
	case o.Kind == Register:
		return fmt.Sprintf("%s%d", registerSigil, o.Field.extract(opcode))
	default:
		return strconv.Itoa(int(o.Field.extract(opcode)))
	}
}
