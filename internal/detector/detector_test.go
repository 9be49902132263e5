package detector

import (
	"testing"

	"github.com/retroenv/chip8asm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name      string
		modeOpt   string
		inputFile string
		wantMode  options.Mode
	}{
		{
			name:      "explicit assemble mode option",
			modeOpt:   "assemble",
			inputFile: "game.bin",
			wantMode:  options.ModeAssemble,
		},
		{
			name:      "explicit disassemble mode option",
			modeOpt:   "disassemble",
			inputFile: "source.chasm",
			wantMode:  options.ModeDisassemble,
		},
		{
			name:      "detect from .chasm extension",
			modeOpt:   "",
			inputFile: "source.chasm",
			wantMode:  options.ModeAssemble,
		},
		{
			name:      "detect from .ch8 extension",
			modeOpt:   "",
			inputFile: "game.ch8",
			wantMode:  options.ModeDisassemble,
		},
		{
			name:      "detect from .rom extension",
			modeOpt:   "",
			inputFile: "game.rom",
			wantMode:  options.ModeDisassemble,
		},
		{
			name:      "unknown extension defaults to disassemble",
			modeOpt:   "",
			inputFile: "game.bin",
			wantMode:  options.ModeDisassemble,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Parameters: options.Parameters{Input: tt.inputFile},
				Flags:      options.Flags{Mode: tt.modeOpt},
			}

			got := d.Detect(opts)
			assert.Equal(t, tt.wantMode, got)
		})
	}
}

func TestDetectFromFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name     string
		filename string
		wantMode options.Mode
	}{
		{
			name:     ".chasm extension",
			filename: "pong.chasm",
			wantMode: options.ModeAssemble,
		},
		{
			name:     ".CHASM extension (uppercase)",
			filename: "PONG.CHASM",
			wantMode: options.ModeAssemble,
		},
		{
			name:     ".ch8 extension",
			filename: "pong.ch8",
			wantMode: options.ModeDisassemble,
		},
		{
			name:     ".rom extension",
			filename: "game.rom",
			wantMode: options.ModeDisassemble,
		},
		{
			name:     "no extension",
			filename: "game",
			wantMode: options.ModeDisassemble,
		},
		{
			name:     ".bin extension",
			filename: "game.bin",
			wantMode: options.ModeDisassemble,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.detectFromFile(tt.filename)
			assert.Equal(t, tt.wantMode, got)
		})
	}
}
