// Package catalog owns the station registry, the entry store and the
// scanner that fills it.
package catalog

import (
	"go.uber.org/atomic"

	"github.com/xxxsen/romdex/internal/config"
)

// MaxStations bounds the station registry. A station id is its slot index.
const MaxStations = 32

// Catalog is the process-scoped index over every configured station and
// every scanned entry. Catalog/browse/scan operations run to completion on
// the calling goroutine; only the cancel flag and the scan gauges are
// shared with other goroutines.
type Catalog struct {
	stations     [MaxStations]Station
	stationCount int
	store        entryStore
	conf         config.Store

	gamesDir string
	baseDir  string

	scanCancel atomic.Bool
	scanning   atomic.Bool
	progress   atomic.Int32
	status     atomic.String
}

// New creates an empty catalog. gamesDir is the primary scan root and the
// location of the shared preview folders; baseDir is the secondary scan
// root. conf persists the station registry.
func New(gamesDir, baseDir string, conf config.Store) *Catalog {
	return &Catalog{
		store:    newEntryStore(),
		conf:     conf,
		gamesDir: gamesDir,
		baseDir:  baseDir,
	}
}

var defaultCatalog *Catalog

// SetDefault assigns the global catalog used by the application commands.
func SetDefault(c *Catalog) {
	defaultCatalog = c
}

// Default returns the global catalog if one has been configured.
func Default() *Catalog {
	return defaultCatalog
}

// GamesDir returns the primary scan root.
func (c *Catalog) GamesDir() string {
	return c.gamesDir
}

// EntryCount returns the total number of scanned entries.
func (c *Catalog) EntryCount() int {
	return c.store.count()
}

// EntryAt resolves an entry by store index. The copy stays valid across
// store mutations; the index does not.
func (c *Catalog) EntryAt(index int) (Entry, bool) {
	return c.store.get(index)
}

// StationEntryCount returns the number of entries attributed to a station,
// or zero when the station does not exist.
func (c *Catalog) StationEntryCount(id int) int {
	st, ok := c.Station(id)
	if !ok {
		return 0
	}
	return st.EntryCount
}
