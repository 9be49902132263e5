package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// TestInstructionTableConsistency validates the structural invariants of
// the instruction table that both translation directions rely on: values
// stay inside their masks, every mask identifies the leading nibble and
// operand fields never overlap the identification bits or each other.
func TestInstructionTableConsistency(t *testing.T) {
	total := 0

	for nibble, bucket := range Instructions {
		for _, ins := range bucket {
			total++

			assert.Equal(t, uint16(nibble), ins.Value>>12, ins.Name)
			assert.Equal(t, uint16(0xF000), ins.Mask&0xF000, ins.Name)
			assert.Equal(t, uint16(0), ins.Value&^ins.Mask, ins.Name)

			used := ins.Mask
			for _, operand := range ins.Operands {
				if operand.Field == FieldNone {
					assert.NotEmpty(t, operand.Keyword, ins.Name)
					continue
				}

				bits := operand.Field.pack(0, operand.Field.limit())
				assert.Equal(t, uint16(0), used&bits, ins.Name)
				used |= bits
			}
		}
	}

	assert.Equal(t, 34, total)
}

func TestInstructionNameIndex(t *testing.T) {
	assert.Equal(t, 19, len(instructionsByName))
	assert.Equal(t, 11, len(instructionsByName["LD"]))
	assert.Equal(t, 3, len(instructionsByName["ADD"]))
	assert.Equal(t, 2, len(instructionsByName["SE"]))
	assert.Equal(t, 2, len(instructionsByName["SNE"]))
	assert.Equal(t, 2, len(instructionsByName["JP"]))
	assert.Equal(t, 1, len(instructionsByName["DRW"]))
}

func TestFieldExtractPack(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		opcode   uint16
		expected uint16
	}{
		{"x field", FieldX, 0xD235, 0x2},
		{"y field", FieldY, 0xD235, 0x3},
		{"n field", FieldN, 0xD235, 0x5},
		{"kk field", FieldKK, 0x63AB, 0xAB},
		{"nnn field", FieldNNN, 0x1234, 0x234},
		{"no field", FieldNone, 0xFFFF, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.field.extract(tt.opcode))
			assert.Equal(t, tt.expected, tt.field.extract(tt.field.pack(0, tt.expected)))
		})
	}
}
