package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/romdex/internal/catalog"
	"github.com/xxxsen/romdex/internal/preview"
)

// FetchCommand resolves the preview of one entry, from cache or the remote
// collection.
type FetchCommand struct {
	noPostRun
	station int
	name    string
	local   bool
}

func NewFetchCommand() *FetchCommand { return &FetchCommand{} }

func (c *FetchCommand) Name() string { return "fetch" }

func (c *FetchCommand) Desc() string {
	return "Resolve the preview image for a single entry"
}

func (c *FetchCommand) Init(f *pflag.FlagSet) {
	f.IntVar(&c.station, "station", -1, "station id of the entry")
	f.StringVar(&c.name, "name", "", "entry display name")
	f.BoolVar(&c.local, "local-only", false, "only look at local files, never download")
}

func (c *FetchCommand) PreRun(ctx context.Context) error {
	if catalog.Default() == nil || preview.DefaultResolver() == nil {
		return errors.New("catalog not initialised")
	}
	if c.station < 0 || strings.TrimSpace(c.name) == "" {
		return errors.New("fetch requires --station and --name")
	}
	return nil
}

func (c *FetchCommand) Run(ctx context.Context) error {
	cat := catalog.Default()
	resolver := preview.DefaultResolver()

	if _, err := cat.ScanStation(ctx, c.station); err != nil {
		return err
	}

	entry, ok := findEntry(cat, c.station, c.name)
	if !ok {
		return fmt.Errorf("entry %q not found for station %d", c.name, c.station)
	}

	var err error
	if c.local {
		err = resolver.LoadLocal(ctx, entry)
	} else {
		err = resolver.LoadLocal(ctx, entry)
		if err != nil {
			err = resolver.FetchOnline(ctx, entry)
		}
	}

	slot := resolver.Slot()
	if _, w, h, ok := slot.Image(); ok {
		logutil.GetLogger(ctx).Info("preview ready",
			zap.String("name", entry.Name),
			zap.Int("width", w),
			zap.Int("height", h),
		)
		return nil
	}
	logutil.GetLogger(ctx).Warn("preview unavailable",
		zap.String("name", entry.Name),
		zap.String("status", slot.Status().String()),
	)
	return err
}

// findEntry locates an entry by station and display name.
func findEntry(cat *catalog.Catalog, stationID int, name string) (catalog.Entry, bool) {
	for i := 0; i < cat.EntryCount(); i++ {
		e, ok := cat.EntryAt(i)
		if !ok {
			break
		}
		if e.StationID == stationID && strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return catalog.Entry{}, false
}

func init() {
	RegisterRunner("fetch", func() IRunner { return NewFetchCommand() })
}
