package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/xxxsen/romdex/internal/browse"
	"github.com/xxxsen/romdex/internal/catalog"
)

// BrowseCommand rebuilds the entry index, derives the filtered and
// optionally sorted view over it and prints the rows.
type BrowseCommand struct {
	noPostRun
	station  int
	search   string
	sortMode string
}

func NewBrowseCommand() *BrowseCommand { return &BrowseCommand{} }

func (c *BrowseCommand) Name() string { return "browse" }

func (c *BrowseCommand) Desc() string {
	return "Print the filtered, sorted entry view"
}

func (c *BrowseCommand) Init(f *pflag.FlagSet) {
	f.IntVar(&c.station, "station", browse.AllStations, "restrict to one station id")
	f.StringVar(&c.search, "search", "", "case-insensitive substring filter on display names")
	f.StringVar(&c.sortMode, "sort", "", "sort mode: name|station|date|size, optionally -desc")
}

func (c *BrowseCommand) PreRun(ctx context.Context) error {
	if catalog.Default() == nil {
		return errors.New("catalog not initialised")
	}
	if c.sortMode != "" {
		if _, ok := browse.ParseSortMode(c.sortMode); !ok {
			return fmt.Errorf("unknown sort mode %q", c.sortMode)
		}
	}
	return nil
}

func (c *BrowseCommand) Run(ctx context.Context) error {
	cat := catalog.Default()

	// The entry index is not persisted; rebuild it for this process.
	cat.ScanAll(ctx)

	view := browse.New(cat)
	view.Init(c.station)
	if c.search != "" {
		view.SetSearch(c.search)
	}
	if c.sortMode != "" {
		mode, _ := browse.ParseSortMode(c.sortMode)
		view.Sort(mode)
	}

	for i := 0; i < view.Len(); i++ {
		e, ok := view.EntryAt(i)
		if !ok {
			break
		}
		fmt.Printf("%4d  %-44s %10s  %s\n",
			i, view.RowLabel(i), catalog.FormatEntrySize(e.Size), cat.StationName(e.StationID))
	}
	fmt.Printf("%d entries\n", view.Len())
	return nil
}

func init() {
	RegisterRunner("browse", func() IRunner { return NewBrowseCommand() })
}
