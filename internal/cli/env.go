package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/romdex/internal/catalog"
	"github.com/xxxsen/romdex/internal/config"
	"github.com/xxxsen/romdex/internal/preview"
)

var defaultConfigPaths = []string{
	"./config.json",
	"/etc/romdex/config.json",
}

// setupEnv loads configuration and wires the default catalog and preview
// resolver every command relies on.
func setupEnv(ctx context.Context, explicit string) error {
	paths := append([]string{explicit}, defaultConfigPaths...)
	cfg, err := config.LoadFirst(paths...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cat := catalog.New(cfg.GamesDir, cfg.BaseDir, config.NewFileStore(cfg.ConfigDir))
	if err := cat.LoadStations(); err != nil {
		return err
	}
	catalog.SetDefault(cat)

	resolver := preview.NewResolver(cat, preview.NewSlot(),
		cfg.CacheDir, cfg.ThumbHost, cfg.ProbeHost,
		time.Duration(cfg.FetchTimeoutSec)*time.Second)
	preview.SetDefaultResolver(resolver)

	logutil.GetLogger(ctx).Debug("environment ready",
		zap.String("games_dir", cfg.GamesDir),
		zap.String("cache_dir", cfg.CacheDir),
		zap.Int("stations", cat.StationCount()),
	)
	return nil
}
