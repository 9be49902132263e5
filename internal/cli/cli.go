// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/chip8asm/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	} else if opts.Output != "" {
		return opts, &UsageError{
			msg: "-o can not be combined with -batch, output names are derived from the input names",
		}
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: chip8asm [options] <file to translate>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to translate, please pass the file to translate as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Mode = strings.ToLower(opts.Mode)
	switch opts.Mode {
	case "asm":
		opts.Mode = string(options.ModeAssemble)
	case "dis", "disasm":
		opts.Mode = string(options.ModeDisassemble)
	}

	if opts.Mode == "" {
		return nil
	}
	if _, ok := options.ModeFromString(opts.Mode); !ok {
		return fmt.Errorf("unsupported mode: %s. Valid options: %s, %s",
			opts.Mode, options.ModeAssemble, options.ModeDisassemble)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output file, derived from the input name if no name given")
	flags.StringVar(&opts.Mode, "m", "", "translation mode (assemble, disassemble) - if not auto-detected from file extension")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask with automatic output file naming, for example *.ch8")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the generated output by translating it back and checking if it matches the input")
	flags.BoolVar(&opts.NoListing, "nolisting", false, "do not print the instruction listing to the console")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
