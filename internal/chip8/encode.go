package chip8

import (
	"fmt"
	"strings"
)

// UnknownMnemonicError is returned by Encode when the keyword matches no
// instruction. The assembler uses it to route the line to the raw opcode
// path instead of failing outright.
type UnknownMnemonicError struct {
	Mnemonic string
}

func (e *UnknownMnemonicError) Error() string {
	return fmt.Sprintf("unknown mnemonic %q", e.Mnemonic)
}

// OperandError is returned by Encode when the operands do not fit any
// form of a known mnemonic.
type OperandError struct {
	Mnemonic string
	Operands []string
	Reason   string
}

func (e *OperandError) Error() string {
	if len(e.Operands) == 0 {
		return fmt.Sprintf("%s: %s", e.Mnemonic, e.Reason)
	}
	return fmt.Sprintf("%s %s: %s", e.Mnemonic, strings.Join(e.Operands, ", "), e.Reason)
}

// Encode assembles a single instruction from its mnemonic and operand
// tokens. Matching is case-insensitive and the operand shapes select the
// instruction form for overloaded mnemonics. The returned opcode is the
// canonical encoding of the matched form.
func Encode(mnemonic string, operands []string) (uint16, error) {
	forms := instructionsByName[strings.ToUpper(mnemonic)]
	if len(forms) == 0 {
		return 0, &UnknownMnemonicError{Mnemonic: mnemonic}
	}
	name := forms[0].Name

	values := make([]operandValue, len(operands))
	for i, operand := range operands {
		value, err := classifyOperand(operand)
		if err != nil {
			return 0, &OperandError{Mnemonic: name, Operands: operands, Reason: err.Error()}
		}
		values[i] = value
	}

	for _, form := range forms {
		if !form.matchOperands(values) {
			continue
		}
		return form.encode(values, operands)
	}
	return 0, &OperandError{Mnemonic: name, Operands: operands,
		Reason: "operands match no form of the instruction"}
}

// matchOperands reports whether the classified operands select this form.
func (ins *Instruction) matchOperands(values []operandValue) bool {
	if len(values) != len(ins.Operands) {
		return false
	}

	for i, pattern := range ins.Operands {
		value := values[i]
		if pattern.Kind != value.kind {
			return false
		}

		switch pattern.Kind {
		case Keyword:
			if pattern.Keyword != value.keyword {
				return false
			}
		case Register:
			// a fixed base register accepts only register 0
			if pattern.Keyword != "" && value.value != 0 {
				return false
			}
		case Immediate:
		}
	}
	return true
}

// encode packs the operand values into the opcode template of the form.
func (ins *Instruction) encode(values []operandValue, operands []string) (uint16, error) {
	opcode := ins.Value
	for i, pattern := range ins.Operands {
		if pattern.Field == FieldNone {
			continue
		}

		value := values[i].value
		if value > pattern.Field.limit() {
			return 0, &OperandError{Mnemonic: ins.Name, Operands: operands,
				Reason: rangeReason(pattern, value)}
		}
		opcode = pattern.Field.pack(opcode, value)
	}
	return opcode, nil
}

// rangeReason describes an operand value that does not fit its opcode field.
func rangeReason(pattern Operand, value uint16) string {
	if pattern.Kind == Register {
		return fmt.Sprintf("register %s%d out of range", registerSigil, value)
	}

	switch pattern.Field {
	case FieldN:
		return fmt.Sprintf("value %d does not fit in a nibble", value)
	case FieldKK:
		return fmt.Sprintf("value %d does not fit in a byte", value)
	case FieldNNN:
		return fmt.Sprintf("address %d does not fit in 12 bits", value)
	default:
		return fmt.Sprintf("value %d out of range", value)
	}
}
