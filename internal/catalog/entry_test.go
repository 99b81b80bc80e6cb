package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"Super_Mario.nes", "Super Mario"},
		{"Zelda.nes", "Zelda"},
		{"no_extension", "no extension"},
		{"Multi.Dot.Name.sfc", "Multi.Dot.Name"},
		{"already spaced.gb", "already spaced"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, displayName(tt.filename), "filename %q", tt.filename)
	}
}

func TestMatchExtension(t *testing.T) {
	tests := []struct {
		filename  string
		allowList string
		want      bool
	}{
		{"game.nes", "nes", true},
		{"game.NES", "nes", true},
		{"game.nes", "NES", true},
		{"game.sfc", "sfc smc bin", true},
		{"game.bin", "sfc smc bin", true},
		{"game.txt", "sfc smc bin", false},
		{"game", "nes", false},
		{"game.nes", "", true},
		{"game", "", true},
		{"game.nes", "   ", true},
		// Comparison caps both sides at eight characters.
		{"game.verylongext", "verylong", true},
		{"game.verylong", "verylongext", true},
	}
	for _, tt := range tests {
		got := matchExtension(tt.filename, tt.allowList)
		assert.Equal(t, tt.want, got, "file %q list %q", tt.filename, tt.allowList)
	}
}

func TestFormatEntrySize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{5242880, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatEntrySize(tt.size), "size %d", tt.size)
	}
}
