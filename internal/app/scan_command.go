package app

import (
	"context"
	"errors"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/romdex/internal/catalog"
)

// ScanCommand rebuilds the entry index for one station or for every
// enabled station.
type ScanCommand struct {
	noPostRun
	station int
}

func NewScanCommand() *ScanCommand { return &ScanCommand{} }

func (c *ScanCommand) Name() string { return "scan" }

func (c *ScanCommand) Desc() string {
	return "Scan station rom folders and rebuild the entry index"
}

func (c *ScanCommand) Init(f *pflag.FlagSet) {
	f.IntVar(&c.station, "station", -1, "station id to scan, -1 for all enabled stations")
}

func (c *ScanCommand) PreRun(ctx context.Context) error {
	if catalog.Default() == nil {
		return errors.New("catalog not initialised")
	}
	return nil
}

func (c *ScanCommand) Run(ctx context.Context) error {
	logger := logutil.GetLogger(ctx)
	cat := catalog.Default()

	var total int
	if c.station >= 0 {
		count, err := cat.ScanStation(ctx, c.station)
		if err != nil {
			return err
		}
		total = count
	} else {
		total = cat.ScanAll(ctx)
	}

	var totalBytes uint64
	for i := 0; i < cat.EntryCount(); i++ {
		if e, ok := cat.EntryAt(i); ok {
			totalBytes += uint64(e.Size)
		}
	}

	logger.Info("scan completed",
		zap.String("status", cat.ScanStatus()),
		zap.Int("stations", cat.StationCount()),
		zap.String("entries", humanize.Comma(int64(total))),
		zap.String("indexed_size", humanize.IBytes(totalBytes)),
	)
	return nil
}

func init() {
	RegisterRunner("scan", func() IRunner { return NewScanCommand() })
}
