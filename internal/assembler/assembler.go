// Package assembler translates CHIP-8 assembly source into binary programs.
package assembler

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/retroenv/chip8asm/internal/chip8"
	"github.com/retroenv/chip8asm/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// Assembler translates assembly source line by line.
type Assembler struct {
	logger *log.Logger
}

// New creates a new assembler.
func New(logger *log.Logger) *Assembler {
	return &Assembler{
		logger: logger,
	}
}

// Assemble scans the source and encodes every non-blank line. Lines that
// fail to translate become diagnostics and do not interrupt the scan, the
// emitted instructions stay gapless and each is addressed by its position
// behind the program load base. Only a read failure aborts the pass.
func (a *Assembler) Assemble(source io.Reader) (*program.Program, error) {
	prog := &program.Program{}
	scanner := bufio.NewScanner(source)

	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		a.assembleLine(prog, line, text)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return prog, nil
}

// assembleLine encodes one source line and appends the result to the program.
func (a *Assembler) assembleLine(prog *program.Program, line int, text string) {
	opcode, err := encodeLine(text)
	if err == nil {
		address := chip8.ProgramStart + chip8.OpcodeSize*len(prog.Instructions)
		if address > chip8.MaxAddress {
			err = fmt.Errorf("no program space left at address $%04X", address)
		} else {
			prog.Instructions = append(prog.Instructions, program.Instruction{
				Address: uint16(address),
				Opcode:  opcode,
				Text:    text,
				Line:    line,
			})
			return
		}
	}

	prog.Diagnostics = append(prog.Diagnostics, program.Diagnostic{
		Line: line,
		Text: text,
		Err:  err,
	})
	a.logger.Warn("Skipping line",
		log.Int("line", line),
		log.String("text", text),
		log.Err(err))
}

// encodeLine translates a single trimmed source line into an opcode.
// Lines that do not start with a known mnemonic must be raw opcodes in
// 4-digit hex form, the escape hatch for data words and unsupported
// instructions that disassembled output can contain.
func encodeLine(text string) (uint16, error) {
	fields := tokenize(text)
	if len(fields) == 0 {
		return decodeRawOpcode(text)
	}

	opcode, err := chip8.Encode(fields[0], fields[1:])
	var unknownErr *chip8.UnknownMnemonicError
	if errors.As(err, &unknownErr) {
		return decodeRawOpcode(text)
	}
	if err != nil {
		return 0, err
	}
	return opcode, nil
}

// decodeRawOpcode interprets a line as an already encoded opcode in hex form.
func decodeRawOpcode(text string) (uint16, error) {
	data, err := hex.DecodeString(text)
	if err != nil {
		return 0, fmt.Errorf("line is neither an instruction nor a raw opcode: %w", err)
	}
	if len(data) != chip8.OpcodeSize {
		return 0, fmt.Errorf("raw opcode %q must be %d bytes, got %d", text, chip8.OpcodeSize, len(data))
	}
	return uint16(data[0])<<8 | uint16(data[1]), nil
}

// tokenize splits a source line into its keyword and operand tokens.
// Whitespace and commas both separate tokens, runs of separators collapse.
func tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}
