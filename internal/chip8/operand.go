package chip8

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/retrogolib/set"
)

// registerSigil prefixes register references in assembly text.
const registerSigil = "V"

// operandKeywords contains the fixed keyword operands of the instruction
// set: the index register, the delay and sound timers and the LD pseudo
// targets for key input, font addressing and BCD conversion.
var operandKeywords = buildOperandKeywords()

func buildOperandKeywords() set.Set[string] {
	keywords := set.New[string]()
	for _, keyword := range []string{"I", "DT", "ST", "K", "F", "B"} {
		keywords.Add(keyword)
	}
	return keywords
}

// operandValue is a classified operand token.
type operandValue struct {
	kind    OperandKind
	keyword string // canonical spelling for keyword operands
	value   uint16 // register index or literal value
}

// classifyOperand determines the shape of a single operand token.
// Classification is case-insensitive and happens before form selection,
// so the shape of a token can disambiguate overloaded mnemonics.
func classifyOperand(token string) (operandValue, error) {
	upper := strings.ToUpper(token)

	if index, ok := parseRegister(upper); ok {
		return operandValue{kind: Register, value: index}, nil
	}
	if value, err := strconv.ParseUint(upper, 10, 16); err == nil {
		return operandValue{kind: Immediate, value: uint16(value)}, nil
	}
	if operandKeywords.Contains(upper) {
		return operandValue{kind: Keyword, keyword: upper}, nil
	}
	return operandValue{}, fmt.Errorf("unrecognized operand %q", token)
}

// parseRegister parses a register reference, the V sigil followed by a
// decimal register index. Any other shape is simply not a register and
// the caller falls through to the remaining operand shapes.
func parseRegister(token string) (uint16, bool) {
	rest, ok := strings.CutPrefix(token, registerSigil)
	if !ok || rest == "" {
		return 0, false
	}
	index, err := strconv.ParseUint(rest, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(index), true
}
