// Package writer implements the output forms of a translated program.
package writer

import (
	"fmt"
	"io"

	"github.com/retroenv/chip8asm/internal/program"
)

// Writer writes one output form of a program to a single destination.
type Writer struct {
	prog   *program.Program
	writer io.Writer
}

// New creates a new writer for the program.
func New(prog *program.Program, writer io.Writer) *Writer {
	return &Writer{
		prog:   prog,
		writer: writer,
	}
}

// WriteSource writes the assembly text form, one instruction per line.
func (w *Writer) WriteSource() error {
	for _, ins := range w.prog.Instructions {
		if _, err := fmt.Fprintf(w.writer, "%s\n", ins.Text); err != nil {
			return fmt.Errorf("writing instruction line: %w", err)
		}
	}
	return nil
}

// WriteROM writes the binary form of the program.
func (w *Writer) WriteROM() error {
	if _, err := w.writer.Write(w.prog.ROM()); err != nil {
		return fmt.Errorf("writing rom: %w", err)
	}
	return nil
}

// WriteListing writes the address, opcode and text of every instruction as
// a table. Addresses print in decimal, matching the classic console output
// of CHIP-8 tooling.
func (w *Writer) WriteListing() error {
	if _, err := fmt.Fprintln(w.writer, "Address  Opcode  Instruction"); err != nil {
		return fmt.Errorf("writing listing header: %w", err)
	}

	for _, ins := range w.prog.Instructions {
		if _, err := fmt.Fprintf(w.writer, "[%d]    %s    %s\n", ins.Address, ins.HexOpcode(), ins.Text); err != nil {
			return fmt.Errorf("writing listing row: %w", err)
		}
	}
	return nil
}
