// Package detector handles translation mode detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8asm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles translation mode detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new mode detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the translation mode from options or file auto-detection.
// It first checks if a mode is explicitly specified in options, otherwise
// detects the mode from the input filename extension.
func (d *Detector) Detect(opts options.Program) options.Mode {
	mode, ok := options.ModeFromString(opts.Mode)
	if !ok {
		mode = d.detectFromFile(opts.Input)
		d.logger.Debug("Auto-detected mode",
			log.Stringer("mode", mode),
			log.String("file", opts.Input))
	}
	return mode
}

// detectFromFile determines the translation mode based on file extension.
func (d *Detector) detectFromFile(filename string) options.Mode {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".chasm":
		return options.ModeAssemble
	case ".ch8", ".rom":
		return options.ModeDisassemble
	default:
		// decoding is total, disassembly produces output for any input
		return options.ModeDisassemble
	}
}
