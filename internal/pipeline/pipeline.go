// Package pipeline orchestrates the translation workflow stages.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/retroenv/chip8asm/internal/assembler"
	"github.com/retroenv/chip8asm/internal/detector"
	"github.com/retroenv/chip8asm/internal/disasm"
	"github.com/retroenv/chip8asm/internal/loader"
	"github.com/retroenv/chip8asm/internal/options"
	"github.com/retroenv/chip8asm/internal/program"
	"github.com/retroenv/chip8asm/internal/verification"
	"github.com/retroenv/chip8asm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete translation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new translation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the translation pipeline on in-memory input data, writing
// the output form to out and the instruction listing to listing. This is
// the entry point for tests and programmatic usage with pre-loaded data.
func (p *Pipeline) Execute(ctx context.Context, data []byte, opts options.Program,
	mode options.Mode, out io.Writer, listing io.Writer) (*program.Program, error) {

	p.printInfo(opts, mode, len(data))

	var (
		prog *program.Program
		err  error
	)
	switch mode {
	case options.ModeAssemble:
		prog, err = p.assemble(data, out)
	case options.ModeDisassemble:
		prog, err = p.disassemble(data, out, listing)
	default:
		return nil, fmt.Errorf("unsupported mode '%s'", mode)
	}
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Verify {
		if err := p.verify(prog, data, mode); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return prog, nil
}

// assemble translates assembly source into its ROM form.
func (p *Pipeline) assemble(source []byte, out io.Writer) (*program.Program, error) {
	prog, err := assembler.New(p.logger).Assemble(bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("assembling: %w", err)
	}

	if len(prog.Diagnostics) > 0 {
		p.logger.Warn("Some lines could not be assembled",
			log.Int("lines", len(prog.Diagnostics)))
	}

	if err := writer.New(prog, out).WriteROM(); err != nil {
		return nil, fmt.Errorf("writing rom: %w", err)
	}
	return prog, nil
}

// disassemble translates a ROM into its assembly text form.
func (p *Pipeline) disassemble(rom []byte, out io.Writer, listing io.Writer) (*program.Program, error) {
	prog := disasm.New(p.logger).Disassemble(rom)

	if err := writer.New(prog, listing).WriteListing(); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}
	if err := writer.New(prog, out).WriteSource(); err != nil {
		return nil, fmt.Errorf("writing source: %w", err)
	}
	return prog, nil
}

// verify re-translates the produced output and compares it byte for byte
// against the ROM form of the translation.
func (p *Pipeline) verify(prog *program.Program, data []byte, mode options.Mode) error {
	rom := data
	if mode == options.ModeAssemble {
		rom = prog.ROM()
	}
	return verification.Verify(p.logger, rom)
}

// printInfo prints information about the input being processed.
func (p *Pipeline) printInfo(opts options.Program, mode options.Mode, size int) {
	if opts.Quiet {
		return
	}

	switch mode {
	case options.ModeAssemble:
		p.logger.Info("Assembling CHIP-8 source",
			log.String("file", opts.Input),
			log.Int("bytes", size),
		)
	case options.ModeDisassemble:
		p.logger.Info("Disassembling CHIP-8 ROM",
			log.String("file", opts.Input),
			log.Int("bytes", size),
		)
	}
}
