// Package options contains the program options.
package options

import "strings"

// Mode selects the translation direction.
type Mode string

// Translation directions.
const (
	ModeAssemble    Mode = "assemble"
	ModeDisassemble Mode = "disassemble"
)

// String implements the fmt.Stringer interface.
func (m Mode) String() string {
	return string(m)
}

// ModeFromString returns the mode matching the given name.
func ModeFromString(name string) (Mode, bool) {
	switch Mode(strings.ToLower(name)) {
	case ModeAssemble:
		return ModeAssemble, true
	case ModeDisassemble:
		return ModeDisassemble, true
	default:
		return "", false
	}
}

// Parameters contains file path options.
type Parameters struct {
	Input  string `arg:"positional" usage:"file to translate"`
	Output string `flag:"o" usage:"output file (default: derived from input name)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.ch8)"`
}

// Flags contains behavior options.
type Flags struct {
	Mode      string `flag:"m" usage:"translation mode: assemble, disassemble (default: detect from extension)"`
	Verify    bool   `flag:"verify" usage:"verify output by translating it back and comparing to the input"`
	NoListing bool   `flag:"nolisting" usage:"omit the instruction listing on the console"`
	Debug     bool   `flag:"debug" usage:"enable debug logging"`
	Quiet     bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the translator.
type Program struct {
	Parameters
	Flags
}
