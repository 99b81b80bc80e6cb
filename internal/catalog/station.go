package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// stationsBlobName is the registry record name passed to the config store.
const stationsBlobName = "stations.json"

// Station is one user-configured category: a console or collection with
// its own rom folder and extension allow list. The id is the registry slot
// index and stays stable for the life of the slot.
type Station struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	RomPath   string `json:"rom_path"`
	// Launcher references whatever starts an entry of this station; the
	// catalog only carries it through to Select.
	Launcher string `json:"launcher"`
	// Extensions is the space-separated allow list, e.g. "sfc smc bin".
	// Empty matches every file.
	Extensions string `json:"extensions"`
	Enabled    bool   `json:"enabled"`
	// EntryCount is derived by scanning and not persisted.
	EntryCount int `json:"-"`
}

// AddStation registers a station in the first free slot and persists the
// registry. Returns the new station id, or ErrRegistryFull when all slots
// are taken.
func (c *Catalog) AddStation(name, shortName, romPath, launcher, extensions string) (int, error) {
	slot := -1
	for i := range c.stations {
		if !c.stations[i].Enabled {
			slot = i
			break
		}
	}
	if slot < 0 {
		return 0, ErrRegistryFull
	}

	c.stations[slot] = Station{
		ID:         slot,
		Name:       name,
		ShortName:  shortName,
		RomPath:    romPath,
		Launcher:   launcher,
		Extensions: extensions,
		Enabled:    true,
	}
	c.stationCount++

	if err := c.saveStations(); err != nil {
		return slot, err
	}
	return slot, nil
}

// RemoveStation purges every entry attributed to the station, disables the
// slot and persists the registry. The purge-first order keeps the slot id
// from being reused while entries still reference it.
func (c *Catalog) RemoveStation(id int) error {
	if id < 0 || id >= MaxStations || !c.stations[id].Enabled {
		return ErrNotFound
	}

	c.store.removeWhere(func(e *Entry) bool { return e.StationID == id })
	c.stations[id].Enabled = false
	c.stations[id].EntryCount = 0
	c.stationCount--

	return c.saveStations()
}

// UpdateStation replaces the editable fields of a station in place and
// persists the registry. The slot id and entry count are preserved.
func (c *Catalog) UpdateStation(id int, st Station) error {
	if id < 0 || id >= MaxStations || !c.stations[id].Enabled {
		return ErrNotFound
	}

	st.ID = id
	st.Enabled = true
	st.EntryCount = c.stations[id].EntryCount
	c.stations[id] = st

	return c.saveStations()
}

// Station returns the enabled station with the given id.
func (c *Catalog) Station(id int) (Station, bool) {
	if id < 0 || id >= MaxStations || !c.stations[id].Enabled {
		return Station{}, false
	}
	return c.stations[id], true
}

// StationByOrdinal returns the index-th enabled station in slot order.
func (c *Catalog) StationByOrdinal(index int) (Station, bool) {
	seen := 0
	for i := range c.stations {
		if !c.stations[i].Enabled {
			continue
		}
		if seen == index {
			return c.stations[i], true
		}
		seen++
	}
	return Station{}, false
}

// StationCount returns the number of enabled stations.
func (c *Catalog) StationCount() int {
	return c.stationCount
}

// StationName returns the display name for a station id, or "Unknown".
func (c *Catalog) StationName(id int) string {
	st, ok := c.Station(id)
	if !ok {
		return "Unknown"
	}
	return st.Name
}

// LoadStations restores the registry from the config store. A missing
// record leaves the registry empty without error.
func (c *Catalog) LoadStations() error {
	data, err := c.conf.LoadBlob(stationsBlobName)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load station registry: %w", err)
	}

	var stations []Station
	if err := json.Unmarshal(data, &stations); err != nil {
		return fmt.Errorf("decode station registry: %w", err)
	}

	c.stationCount = 0
	c.stations = [MaxStations]Station{}
	for _, st := range stations {
		if st.ID < 0 || st.ID >= MaxStations {
			continue
		}
		st.EntryCount = 0
		c.stations[st.ID] = st
		if st.Enabled {
			c.stationCount++
		}
	}
	return nil
}

func (c *Catalog) saveStations() error {
	records := make([]Station, 0, c.stationCount)
	for i := range c.stations {
		if c.stations[i].Enabled {
			records = append(records, c.stations[i])
		}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode station registry: %w", err)
	}
	if err := c.conf.SaveBlob(stationsBlobName, data); err != nil {
		return fmt.Errorf("save station registry: %w", err)
	}
	return nil
}
