package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8asm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "input file only",
			args: []string{"prog", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
			},
		},
		{
			name: "explicit mode",
			args: []string{"prog", "-m", "assemble", "game.txt"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.txt"},
				Flags:      options.Flags{Mode: "assemble"},
			},
		},
		{
			name: "mode alias",
			args: []string{"prog", "-m", "disasm", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags:      options.Flags{Mode: "disassemble"},
			},
		},
		{
			name: "uppercase mode alias",
			args: []string{"prog", "-m", "ASM", "source.chasm"},
			want: options.Program{
				Parameters: options.Parameters{Input: "source.chasm"},
				Flags:      options.Flags{Mode: "assemble"},
			},
		},
		{
			name: "output file",
			args: []string{"prog", "-o", "out.chasm", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8", Output: "out.chasm"},
			},
		},
		{
			name: "verify and quiet",
			args: []string{"prog", "-verify", "-q", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags:      options.Flags{Verify: true, Quiet: true},
			},
		},
		{
			name: "nolisting",
			args: []string{"prog", "-nolisting", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags:      options.Flags{NoListing: true},
			},
		},
		{
			name: "batch without file argument",
			args: []string{"prog", "-batch", "*.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Batch: "*.ch8"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"no arguments", []string{"prog"}, true},
		{"argument after file", []string{"prog", "game.ch8", "-q"}, true},
		{"output combined with batch", []string{"prog", "-batch", "*.ch8", "-o", "out.ch8"}, true},
		{"invalid mode", []string{"prog", "-m", "transpile", "game.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}
