package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8asm/internal/config"
	"github.com/retroenv/chip8asm/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete translation workflow for one input file.
func (p *Pipeline) ProcessFile(ctx context.Context, opts options.Program) error {
	mode := p.detector.Detect(opts)
	if opts.Output == "" {
		opts.Output = GenerateOutputFilename(opts.Input, mode)
	}

	data, err := p.loader.Load(opts, mode)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}

	out, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := p.Execute(ctx, data, opts, mode, out, config.ListingWriter(opts)); err != nil {
		return err
	}

	p.logFileResult(opts, mode)
	return nil
}

// logFileResult reports the written output file.
func (p *Pipeline) logFileResult(opts options.Program, mode options.Mode) {
	if opts.Quiet {
		return
	}

	switch mode {
	case options.ModeAssemble:
		p.logger.Info("File assembled", log.String("output", opts.Output))
	case options.ModeDisassemble:
		p.logger.Info("File disassembled", log.String("output", opts.Output))
	}
}

// GetFilesToProcess returns the list of files to process based on options
func GetFilesToProcess(opts options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files matched pattern %s", opts.Batch)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates the output filename for an input file.
// Assembled programs get an _a.ch8 suffix to avoid overwriting the ROM the
// source may have been disassembled from, disassembled ROMs get a .chasm
// suffix.
func GenerateOutputFilename(inputFile string, mode options.Mode) string {
	if mode == options.ModeAssemble {
		name, _, _ := strings.Cut(inputFile, ".chasm")
		return name + "_a.ch8"
	}

	name, _, _ := strings.Cut(inputFile, ".ch8")
	return name + ".chasm"
}

func createWriter(opts options.Program) (io.WriteCloser, error) {
	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8asm", log.String("version", buildinfo.Version(version, commit, date)))
}
