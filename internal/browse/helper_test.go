package browse

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xxxsen/romdex/internal/catalog"
	"github.com/xxxsen/romdex/internal/config"
)

// browseFixture builds a catalog with two stations and four entries in a
// known store order: Mario, Zelda (NES), then Alpha, Tetris (GB).
func browseFixture(t *testing.T) (*catalog.Catalog, *View) {
	t.Helper()
	base := t.TempDir()
	games := filepath.Join(base, "games")
	cat := catalog.New(games, base, config.NewFileStore(filepath.Join(base, "conf")))

	nes, err := cat.AddStation("Nintendo", "NES", "NES", "nes-launcher", "nes")
	require.NoError(t, err)
	gb, err := cat.AddStation("Game Boy", "GB", "GameBoy", "gb-launcher", "gb")
	require.NoError(t, err)
	require.Equal(t, 0, nes)
	require.Equal(t, 1, gb)

	now := time.Now().Truncate(time.Second)
	fixtureFile(t, games, "NES/Mario.nes", 3, now.Add(-2*time.Hour))
	fixtureFile(t, games, "NES/Zelda.nes", 5, now)
	fixtureFile(t, games, "GameBoy/Alpha.gb", 9, now.Add(-3*time.Hour))
	fixtureFile(t, games, "GameBoy/Tetris.gb", 2, now.Add(-1*time.Hour))

	require.Equal(t, 4, cat.ScanAll(context.Background()))
	return cat, New(cat)
}

func fixtureFile(t *testing.T, games, rel string, size int, modTime time.Time) {
	t.Helper()
	full := filepath.Join(games, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, make([]byte, size), 0o644))
	require.NoError(t, os.Chtimes(full, modTime, modTime))
}

// scrollFixture builds a single station view with n rows named r00..rNN.
func scrollFixture(t *testing.T, n int) *View {
	t.Helper()
	base := t.TempDir()
	games := filepath.Join(base, "games")
	cat := catalog.New(games, base, config.NewFileStore(filepath.Join(base, "conf")))

	_, err := cat.AddStation("Nintendo", "NES", "NES", "", "nes")
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		name := filepath.Join("NES", "r"+string(rune('a'+i))+".nes")
		fixtureFile(t, games, name, 1, time.Now())
	}
	require.Equal(t, n, cat.ScanAll(context.Background()))
	return New(cat)
}

func viewNames(v *View) []string {
	names := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		e, _ := v.EntryAt(i)
		names = append(names, e.Name)
	}
	return names
}
