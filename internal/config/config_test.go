package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.json", `{"base_dir": "/data"}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data", cfg.BaseDir)
	assert.Equal(t, filepath.Join("/data", "games"), cfg.GamesDir)
	assert.Equal(t, filepath.Join("/data", "games", "previews"), cfg.CacheDir)
	assert.Equal(t, filepath.Join("/data", "config"), cfg.ConfigDir)
	assert.Equal(t, "https://thumbnails.libretro.com", cfg.ThumbHost)
	assert.Equal(t, "github.com:443", cfg.ProbeHost)
	assert.Equal(t, 10, cfg.FetchTimeoutSec)
}

func TestLoadExplicitValuesWin(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.json", `{
		"base_dir": "/data",
		"games_dir": "/roms",
		"cache_dir": "/tmp/previews",
		"thumb_host": "http://mirror.local",
		"fetch_timeout_sec": 30
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/roms", cfg.GamesDir)
	assert.Equal(t, "/tmp/previews", cfg.CacheDir)
	assert.Equal(t, "http://mirror.local", cfg.ThumbHost)
	assert.Equal(t, 30, cfg.FetchTimeoutSec)
}

func TestLoadRejectsMissingBaseDir(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.json", `{"thumb_host": "http://mirror.local"}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.json", `{not json`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadFirstSkipsMissingPaths(t *testing.T) {
	dir := t.TempDir()
	good := writeConfig(t, dir, "config.json", `{"base_dir": "/data"}`)

	cfg, err := LoadFirst("", filepath.Join(dir, "missing.json"), good)
	require.NoError(t, err)
	assert.Equal(t, "/data", cfg.BaseDir)
}

func TestLoadFirstAllMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadFirst(filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json"))
	assert.Error(t, err)
}

func TestLoadFirstStopsOnDecodeError(t *testing.T) {
	dir := t.TempDir()
	bad := writeConfig(t, dir, "bad.json", `{broken`)
	good := writeConfig(t, dir, "good.json", `{"base_dir": "/data"}`)

	// A present-but-broken config is an error, not a fall-through.
	_, err := LoadFirst(bad, good)
	assert.Error(t, err)
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "conf"))

	require.NoError(t, s.SaveBlob("stations.json", []byte(`[]`)))
	data, err := s.LoadBlob("stations.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)

	// Overwrite replaces atomically, no .tmp leftovers.
	require.NoError(t, s.SaveBlob("stations.json", []byte(`[{}]`)))
	data, err = s.LoadBlob("stations.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{}]`), data)

	entries, err := os.ReadDir(s.dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStoreMissingBlob(t *testing.T) {
	s := NewFileStore(t.TempDir())
	_, err := s.LoadBlob("nothing.json")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
