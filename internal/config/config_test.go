package config

import (
	"io"
	"os"
	"testing"

	"github.com/retroenv/chip8asm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestListingWriter(t *testing.T) {
	tests := []struct {
		name     string
		opts     options.Program
		expected io.Writer
	}{
		{"default", options.Program{}, os.Stdout},
		{"quiet", options.Program{Flags: options.Flags{Quiet: true}}, io.Discard},
		{"nolisting", options.Program{Flags: options.Flags{NoListing: true}}, io.Discard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ListingWriter(tt.opts))
		})
	}
}
