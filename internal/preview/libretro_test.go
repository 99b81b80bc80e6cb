package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemName(t *testing.T) {
	assert.Equal(t, "Nintendo_-_Nintendo_Entertainment_System", SystemName("NES"))
	assert.Equal(t, "Sony_-_PlayStation", SystemName("PSX"))
	assert.Equal(t, "MAME", SystemName("Arcade"))

	// Lookup ignores case.
	assert.Equal(t, "Nintendo_-_Game_Boy", SystemName("gb"))

	// Unmapped short names pass through.
	assert.Equal(t, "HomeBrew", SystemName("HomeBrew"))
}

func TestEncodeQueryName(t *testing.T) {
	cases := map[string]string{
		"Mario":                  "Mario",
		"Super Mario Bros.":      "Super+Mario+Bros.",
		"Kirby's Dream Land":     "Kirby%27s+Dream+Land",
		"R-Type_II~1.0":          "R-Type_II~1.0",
		"Aaahh!!! Real Monsters": "Aaahh%21%21%21+Real+Monsters",
	}
	for in, want := range cases {
		assert.Equal(t, want, encodeQueryName(in), in)
	}
}

func TestThumbURL(t *testing.T) {
	got := thumbURL("https://thumbnails.libretro.com", "Nintendo_-_Game_Boy", "Named_Boxarts", "Tetris")
	assert.Equal(t, "https://thumbnails.libretro.com/Nintendo_-_Game_Boy/Named_Boxarts/Tetris.png", got)

	// A trailing slash on the host does not double up.
	got = thumbURL("http://localhost:8080/", "MAME", "Named_Snaps", "pacman")
	assert.Equal(t, "http://localhost:8080/MAME/Named_Snaps/pacman.png", got)
}
