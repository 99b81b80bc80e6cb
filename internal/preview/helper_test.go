package preview

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xxxsen/romdex/internal/catalog"
	"github.com/xxxsen/romdex/internal/config"
)

// previewEnv bundles a scanned single-station catalog with a resolver
// whose reachability probe always passes.
type previewEnv struct {
	cat   *catalog.Catalog
	res   *Resolver
	games string
	cache string
}

func newPreviewEnv(t *testing.T, thumbHost string, names ...string) *previewEnv {
	t.Helper()
	base := t.TempDir()
	games := filepath.Join(base, "games")
	cache := filepath.Join(base, "cache")
	cat := catalog.New(games, base, config.NewFileStore(filepath.Join(base, "conf")))

	_, err := cat.AddStation("Nintendo", "NES", "NES", "", "nes")
	require.NoError(t, err)
	for _, name := range names {
		full := filepath.Join(games, "NES", name+".nes")
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("rom"), 0o644))
	}

	_, err = cat.ScanStation(context.Background(), 0)
	require.NoError(t, err)

	res := NewResolver(cat, NewSlot(), cache, thumbHost, "127.0.0.1:1", time.Second)
	res.probe = func() bool { return true }
	return &previewEnv{cat: cat, res: res, games: games, cache: cache}
}

func (env *previewEnv) entry(t *testing.T, name string) catalog.Entry {
	t.Helper()
	for i := 0; i < env.cat.EntryCount(); i++ {
		e, _ := env.cat.EntryAt(i)
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("entry %q not in catalog", name)
	return catalog.Entry{}
}

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(w, h)))
	return buf.Bytes()
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, pngBytes(t, w, h), 0o644))
}
