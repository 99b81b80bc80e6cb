package app

import (
	"context"
	"errors"

	"github.com/spf13/pflag"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/romdex/internal/catalog"
	"github.com/xxxsen/romdex/internal/preview"
)

// CacheClearCommand deletes the preview cache tree, or one station's
// subtree. Entry preview flags are refreshed by the next scan, not here.
type CacheClearCommand struct {
	noPostRun
	station int
}

func NewCacheClearCommand() *CacheClearCommand { return &CacheClearCommand{} }

func (c *CacheClearCommand) Name() string { return "cache-clear" }

func (c *CacheClearCommand) Desc() string {
	return "Delete the preview cache, entirely or for one station"
}

func (c *CacheClearCommand) Init(f *pflag.FlagSet) {
	f.IntVar(&c.station, "station", -1, "station id to clear, -1 for the whole cache")
}

func (c *CacheClearCommand) PreRun(ctx context.Context) error {
	if catalog.Default() == nil || preview.DefaultResolver() == nil {
		return errors.New("catalog not initialised")
	}
	return nil
}

func (c *CacheClearCommand) Run(ctx context.Context) error {
	resolver := preview.DefaultResolver()

	if c.station >= 0 {
		if err := resolver.CacheClearStation(c.station); err != nil {
			return err
		}
		logutil.GetLogger(ctx).Info("station preview cache cleared", zap.Int("station_id", c.station))
		return nil
	}

	if err := resolver.CacheClear(); err != nil {
		return err
	}
	logutil.GetLogger(ctx).Info("preview cache cleared")
	return nil
}

func init() {
	RegisterRunner("cache-clear", func() IRunner { return NewCacheClearCommand() })
}
