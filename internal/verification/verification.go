// Package verification verifies that generated output recreates the input.
package verification

import (
	"bytes"
	"fmt"

	"github.com/retroenv/chip8asm/internal/assembler"
	"github.com/retroenv/chip8asm/internal/disasm"
	"github.com/retroenv/retrogolib/log"
)

// Verify checks that disassembling the ROM and assembling the result
// reproduces the ROM byte for byte. ROMs containing sprite data survive
// through the raw hex fallback, but non-canonical encodings with stray
// bits in unused opcode positions reassemble to their canonical form and
// fail the comparison.
func Verify(logger *log.Logger, rom []byte) error {
	prog := disasm.New(logger).Disassemble(rom)

	var source bytes.Buffer
	for _, ins := range prog.Instructions {
		source.WriteString(ins.Text)
		source.WriteByte('\n')
	}

	reassembled, err := assembler.New(logger).Assemble(&source)
	if err != nil {
		return fmt.Errorf("reassembling output: %w", err)
	}
	if len(reassembled.Diagnostics) > 0 {
		return fmt.Errorf("reassembling output: %s", reassembled.Diagnostics[0])
	}

	if err := checkBufferEqual(logger, rom, reassembled.ROM()); err != nil {
		return fmt.Errorf("comparing reassembled output: %w", err)
	}
	return nil
}

// checkBufferEqual compares the input with the reassembled output and logs
// the first mismatching offsets.
func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}

	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
