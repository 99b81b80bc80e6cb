package preview

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xxxsen/romdex/internal/catalog"
	"github.com/xxxsen/romdex/internal/fsutil"
)

// CachePath returns the cache file an entry's preview would live at.
func (r *Resolver) CachePath(e catalog.Entry) (string, bool) {
	st, ok := r.cat.Station(e.StationID)
	if !ok {
		return "", false
	}
	return filepath.Join(r.cacheRoot, st.ShortName, e.Name+".png"), true
}

// CacheExists reports whether an entry's preview is already cached.
func (r *Resolver) CacheExists(e catalog.Entry) bool {
	path, ok := r.CachePath(e)
	if !ok {
		return false
	}
	return fsutil.FileExists(path)
}

// CacheClear deletes the entire preview cache tree. Entry has_preview
// flags are untouched; a re-scan refreshes that metadata.
func (r *Resolver) CacheClear() error {
	if err := os.RemoveAll(r.cacheRoot); err != nil {
		return fmt.Errorf("clear preview cache: %w", err)
	}
	return fsutil.EnsureDir(r.cacheRoot)
}

// CacheClearStation deletes only one station's cache subtree.
func (r *Resolver) CacheClearStation(id int) error {
	st, ok := r.cat.Station(id)
	if !ok {
		return catalog.ErrNotFound
	}
	dir := filepath.Join(r.cacheRoot, st.ShortName)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clear preview cache for %s: %w", st.ShortName, err)
	}
	return nil
}
