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
)

// StationListCommand prints the enabled stations in slot order.
type StationListCommand struct {
	noPostRun
}

func NewStationListCommand() *StationListCommand { return &StationListCommand{} }

func (c *StationListCommand) Name() string { return "station-list" }

func (c *StationListCommand) Desc() string { return "List configured stations" }

func (c *StationListCommand) Init(f *pflag.FlagSet) {}

func (c *StationListCommand) PreRun(ctx context.Context) error {
	if catalog.Default() == nil {
		return errors.New("catalog not initialised")
	}
	return nil
}

func (c *StationListCommand) Run(ctx context.Context) error {
	cat := catalog.Default()
	fmt.Printf("%-4s %-10s %-34s %-16s %s\n", "ID", "SHORT", "NAME", "ROM PATH", "ENTRIES")
	for i := 0; ; i++ {
		st, ok := cat.StationByOrdinal(i)
		if !ok {
			break
		}
		fmt.Printf("%-4d %-10s %-34s %-16s %d\n", st.ID, st.ShortName, st.Name, st.RomPath, st.EntryCount)
	}
	return nil
}

// StationAddCommand registers a new station, from explicit flags or a
// built-in template.
type StationAddCommand struct {
	noPostRun
	template   string
	name       string
	shortName  string
	romPath    string
	launcher   string
	extensions string
}

func NewStationAddCommand() *StationAddCommand { return &StationAddCommand{} }

func (c *StationAddCommand) Name() string { return "station-add" }

func (c *StationAddCommand) Desc() string {
	return "Register a station from flags or a built-in template"
}

func (c *StationAddCommand) Init(f *pflag.FlagSet) {
	f.StringVar(&c.template, "template", "", "built-in template short name, e.g. NES")
	f.StringVar(&c.name, "name", "", "station display name")
	f.StringVar(&c.shortName, "short", "", "station short name")
	f.StringVar(&c.romPath, "path", "", "rom folder relative to the games dir")
	f.StringVar(&c.launcher, "launcher", "", "launcher reference")
	f.StringVar(&c.extensions, "ext", "", "space separated extension allow list")
}

func (c *StationAddCommand) PreRun(ctx context.Context) error {
	if catalog.Default() == nil {
		return errors.New("catalog not initialised")
	}
	if c.template != "" {
		tpl, ok := catalog.FindTemplate(c.template)
		if !ok {
			return fmt.Errorf("unknown station template %q", c.template)
		}
		c.name = tpl.Name
		c.shortName = tpl.ShortName
		c.romPath = tpl.RomPath
		c.launcher = tpl.Launcher
		c.extensions = tpl.Extensions
		return nil
	}
	if strings.TrimSpace(c.name) == "" || strings.TrimSpace(c.shortName) == "" ||
		strings.TrimSpace(c.romPath) == "" {
		return errors.New("station-add requires --template or --name, --short and --path")
	}
	return nil
}

func (c *StationAddCommand) Run(ctx context.Context) error {
	id, err := catalog.Default().AddStation(c.name, c.shortName, c.romPath, c.launcher, c.extensions)
	if err != nil {
		return err
	}
	logutil.GetLogger(ctx).Info("station registered",
		zap.Int("station_id", id),
		zap.String("short_name", c.shortName),
		zap.String("rom_path", c.romPath),
	)
	return nil
}

// StationRemoveCommand purges a station's entries and disables its slot.
type StationRemoveCommand struct {
	noPostRun
	station int
}

func NewStationRemoveCommand() *StationRemoveCommand { return &StationRemoveCommand{} }

func (c *StationRemoveCommand) Name() string { return "station-remove" }

func (c *StationRemoveCommand) Desc() string {
	return "Remove a station and purge its entries"
}

func (c *StationRemoveCommand) Init(f *pflag.FlagSet) {
	f.IntVar(&c.station, "station", -1, "station id to remove")
}

func (c *StationRemoveCommand) PreRun(ctx context.Context) error {
	if catalog.Default() == nil {
		return errors.New("catalog not initialised")
	}
	if c.station < 0 {
		return errors.New("station-remove requires --station")
	}
	return nil
}

func (c *StationRemoveCommand) Run(ctx context.Context) error {
	if err := catalog.Default().RemoveStation(c.station); err != nil {
		return err
	}
	logutil.GetLogger(ctx).Info("station removed", zap.Int("station_id", c.station))
	return nil
}

func init() {
	RegisterRunner("station-list", func() IRunner { return NewStationListCommand() })
	RegisterRunner("station-add", func() IRunner { return NewStationAddCommand() })
	RegisterRunner("station-remove", func() IRunner { return NewStationRemoveCommand() })
}
