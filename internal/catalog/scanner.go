package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/romdex/internal/fsutil"
)

// maxScanDepth caps directory recursion below a station root.
const maxScanDepth = 5

// previewDirName is the shared preview folder under the games directory.
const previewDirName = "previews"

// ScanStation purges every entry of the station and re-walks its rom
// folder under the primary and secondary roots. Returns the number of
// entries found. Cancellation via ScanCancel aborts the walk early without
// error; entries appended before the abort remain valid.
func (c *Catalog) ScanStation(ctx context.Context, id int) (int, error) {
	if id < 0 || id >= MaxStations || !c.stations[id].Enabled {
		return 0, ErrNotFound
	}
	st := &c.stations[id]

	c.scanCancel.Store(false)
	c.scanning.Store(true)
	defer c.scanning.Store(false)
	c.status.Store(fmt.Sprintf("Scanning %s...", st.ShortName))

	c.store.removeWhere(func(e *Entry) bool { return e.StationID == id })
	st.EntryCount = 0

	for _, root := range []string{c.gamesDir, c.baseDir} {
		if root == "" || c.scanCancel.Load() {
			continue
		}
		dir := filepath.Join(root, st.RomPath)
		if fsutil.IsDir(dir) {
			c.scanDir(st, dir, 0)
		}
	}

	logutil.GetLogger(ctx).Debug("station scanned",
		zap.Int("station_id", id),
		zap.String("short_name", st.ShortName),
		zap.Int("entries", st.EntryCount),
		zap.Bool("cancelled", c.scanCancel.Load()),
	)
	return st.EntryCount, nil
}

func (c *Catalog) scanDir(st *Station, dir string, depth int) {
	if depth > maxScanDepth || c.scanCancel.Load() {
		return
	}

	items, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, item := range items {
		if c.scanCancel.Load() {
			return
		}
		name := item.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		full := filepath.Join(dir, name)
		if item.IsDir() {
			c.scanDir(st, full, depth+1)
			continue
		}
		info, err := item.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if matchExtension(name, st.Extensions) {
			c.addEntry(st, full, name, info.Size(), info.ModTime().Unix())
		}
	}
}

func (c *Catalog) addEntry(st *Station, path, filename string, size, modTime int64) {
	e := Entry{
		Name:      displayName(filename),
		Filename:  filename,
		Path:      path,
		StationID: st.ID,
		Size:      size,
		ModTime:   modTime,
	}

	// Existence probe only; fetching is the preview subsystem's business.
	shared := filepath.Join(c.gamesDir, previewDirName, e.Name+".png")
	if fsutil.FileExists(shared) {
		e.HasPreview = true
		e.PreviewPath = shared
	} else {
		perStation := filepath.Join(c.gamesDir, st.ShortName, previewDirName, e.Name+".png")
		if fsutil.FileExists(perStation) {
			e.HasPreview = true
			e.PreviewPath = perStation
		}
	}

	c.store.append(e)
	st.EntryCount++
}

// ScanAll scans every enabled station in slot order and returns the sum of
// the per-station counts. A failing station is skipped, not fatal. The
// progress gauge uses the live enabled-station count, so it can shift if
// stations are mutated mid-scan.
func (c *Catalog) ScanAll(ctx context.Context) int {
	logger := logutil.GetLogger(ctx)

	c.scanCancel.Store(false)
	c.scanning.Store(true)
	defer c.scanning.Store(false)

	total := 0
	completed := 0
	for id := 0; id < MaxStations; id++ {
		if !c.stations[id].Enabled {
			continue
		}
		if c.scanCancel.Load() {
			break
		}
		if n := c.stationCount; n > 0 {
			c.progress.Store(int32(completed * 100 / n))
		}
		count, err := c.ScanStation(ctx, id)
		if err != nil {
			logger.Warn("scan station failed",
				zap.Int("station_id", id),
				zap.Error(err),
			)
			continue
		}
		total += count
		completed++
	}

	c.progress.Store(100)
	c.status.Store("Scan complete")
	return total
}

// ScanCancel requests cooperative cancellation of the current scan. The
// flag is read and cleared at the start of the next scan invocation.
func (c *Catalog) ScanCancel() {
	c.scanCancel.Store(true)
}

// ScanProgress returns the last 0-100 progress percentage of ScanAll.
func (c *Catalog) ScanProgress() int {
	return int(c.progress.Load())
}

// ScanStatus returns the human readable status line of the last scan.
func (c *Catalog) ScanStatus() string {
	return c.status.Load()
}

// Scanning reports whether a scan is currently running.
func (c *Catalog) Scanning() bool {
	return c.scanning.Load()
}
