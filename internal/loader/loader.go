// Package loader handles input file loading.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/chip8asm/internal/chip8"
	"github.com/retroenv/chip8asm/internal/options"
)

// Loader handles loading source and ROM files from disk.
type Loader struct{}

// New creates a new input loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input file for the given translation mode. ROMs larger
// than the CHIP-8 program space are rejected, memory ends at 0xFFF and no
// valid program can exceed it. Assembly source has no size limit, its
// instruction count is checked during assembly instead.
func (l *Loader) Load(opts options.Program, mode options.Mode) ([]byte, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	if mode == options.ModeDisassemble && len(data) > chip8.MaxProgramSize {
		return nil, fmt.Errorf("ROM size %d exceeds the %d byte program space", len(data), chip8.MaxProgramSize)
	}
	return data, nil
}
