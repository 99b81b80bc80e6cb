package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// memStore keeps registry blobs in memory for tests.
type memStore struct {
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}}
}

func (m *memStore) LoadBlob(name string) ([]byte, error) {
	data, ok := m.blobs[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m *memStore) SaveBlob(name string, data []byte) error {
	m.blobs[name] = data
	return nil
}

// testCatalog builds a catalog rooted in a fresh temp tree.
func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	base := t.TempDir()
	games := filepath.Join(base, "games")
	if err := os.MkdirAll(games, 0o755); err != nil {
		t.Fatalf("create games dir: %v", err)
	}
	return New(games, base, newMemStore())
}

// addTestStation registers a station and creates its rom folder.
func addTestStation(t *testing.T, c *Catalog, name, short, romPath, ext string) int {
	t.Helper()
	id, err := c.AddStation(name, short, romPath, short, ext)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(c.gamesDir, romPath), 0o755))
	return id
}

// writeTestFile writes content below the games directory.
func writeTestFile(t *testing.T, c *Catalog, rel, content string) string {
	t.Helper()
	full := filepath.Join(c.gamesDir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	return full
}
