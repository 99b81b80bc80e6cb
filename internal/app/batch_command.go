package app

import (
	"context"
	"errors"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/romdex/internal/catalog"
	"github.com/xxxsen/romdex/internal/preview"
)

// BatchCommand downloads previews for every entry of one station.
type BatchCommand struct {
	noPostRun
	station int
}

func NewBatchCommand() *BatchCommand { return &BatchCommand{} }

func (c *BatchCommand) Name() string { return "batch-fetch" }

func (c *BatchCommand) Desc() string {
	return "Download missing previews for all entries of a station"
}

func (c *BatchCommand) Init(f *pflag.FlagSet) {
	f.IntVar(&c.station, "station", -1, "station id to fetch previews for")
}

func (c *BatchCommand) PreRun(ctx context.Context) error {
	if catalog.Default() == nil || preview.DefaultResolver() == nil {
		return errors.New("catalog not initialised")
	}
	if c.station < 0 {
		return errors.New("batch-fetch requires --station")
	}
	return nil
}

func (c *BatchCommand) Run(ctx context.Context) error {
	logger := logutil.GetLogger(ctx)
	cat := catalog.Default()

	if _, err := cat.ScanStation(ctx, c.station); err != nil {
		return err
	}

	fetcher := preview.NewFetcher(preview.DefaultResolver())
	downloaded := fetcher.BatchFetch(ctx, c.station, func(current, total int, name string) {
		logger.Debug("batch progress",
			zap.Int("current", current),
			zap.Int("total", total),
			zap.String("name", name),
		)
	})

	logger.Info("batch fetch completed",
		zap.Int("station_id", c.station),
		zap.String("entries", humanize.Comma(int64(cat.StationEntryCount(c.station)))),
		zap.Int("downloaded", downloaded),
	)
	return nil
}

func init() {
	RegisterRunner("batch-fetch", func() IRunner { return NewBatchCommand() })
}
