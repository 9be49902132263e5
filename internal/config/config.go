// Package config handles application configuration and setup
package config

import (
	"io"
	"os"

	"github.com/retroenv/chip8asm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// ListingWriter returns the destination for the console instruction
// listing. The listing is suppressed in quiet mode and by the nolisting
// flag.
func ListingWriter(opts options.Program) io.Writer {
	if opts.Quiet || opts.NoListing {
		return io.Discard
	}
	return os.Stdout
}
