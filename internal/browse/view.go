// Package browse maintains the filtered, sortable projection over the
// catalog that a display caller pages through.
package browse

import (
	"fmt"
	"strings"

	"github.com/xxxsen/romdex/internal/catalog"
)

// AllStations disables station filtering.
const AllStations = -1

// View is the derived, ordered list of store indices matching the current
// station and search filters, plus the cursor state over it. It must be
// rebuilt after every scan or filter change; the indices it holds are
// invalid once the store mutates.
type View struct {
	cat *catalog.Catalog

	stationFilter int
	search        string

	rows     []int
	first    int
	selected int
}

// New creates a view over the catalog showing all stations.
func New(cat *catalog.Catalog) *View {
	v := &View{cat: cat, stationFilter: AllStations}
	v.rebuild()
	return v
}

// Init points the view at one station (or AllStations), clears the search
// filter and resets the cursor.
func (v *View) Init(stationFilter int) {
	v.stationFilter = stationFilter
	v.search = ""
	v.first = 0
	v.selected = 0
	v.rebuild()
}

// Refresh re-derives the row list after a store mutation, preserving the
// cursor clamped into the new bounds. Any applied sort order is lost; the
// view reverts to store order.
func (v *View) Refresh() {
	v.rebuild()
	v.clampCursor()
}

// SetStationFilter changes the station filter, rebuilds and resets the
// cursor.
func (v *View) SetStationFilter(id int) {
	v.stationFilter = id
	v.rebuild()
	v.first = 0
	v.selected = 0
}

// SetSearch changes the free-text filter, rebuilds and resets the cursor.
// Matching is a case-insensitive substring test on the display name.
func (v *View) SetSearch(text string) {
	v.search = text
	v.rebuild()
	v.first = 0
	v.selected = 0
}

// ClearSearch drops the free-text filter.
func (v *View) ClearSearch() {
	v.SetSearch("")
}

// SearchActive reports whether a free-text filter is applied.
func (v *View) SearchActive() bool {
	return v.search != ""
}

func (v *View) rebuild() {
	v.rows = v.rows[:0]
	needle := strings.ToLower(v.search)
	for i := 0; i < v.cat.EntryCount(); i++ {
		e, ok := v.cat.EntryAt(i)
		if !ok {
			break
		}
		if v.stationFilter != AllStations && e.StationID != v.stationFilter {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Name), needle) {
			continue
		}
		v.rows = append(v.rows, i)
	}
}

func (v *View) clampCursor() {
	if len(v.rows) == 0 {
		v.first = 0
		v.selected = 0
		return
	}
	if v.selected >= len(v.rows) {
		v.selected = len(v.rows) - 1
	}
	if v.first > v.selected {
		v.first = v.selected
	}
	if v.first < 0 {
		v.first = 0
	}
}

// Len returns the number of rows in the view.
func (v *View) Len() int {
	return len(v.rows)
}

// EntryAt resolves the row at position i in view order.
func (v *View) EntryAt(i int) (catalog.Entry, bool) {
	if i < 0 || i >= len(v.rows) {
		return catalog.Entry{}, false
	}
	return v.cat.EntryAt(v.rows[i])
}

// RowLabel formats the row at position i for display: "[SHRT] Name" when
// browsing all stations, the plain name when filtered to one.
func (v *View) RowLabel(i int) string {
	e, ok := v.EntryAt(i)
	if !ok {
		return ""
	}
	if v.stationFilter != AllStations {
		return e.Name
	}
	st, ok := v.cat.Station(e.StationID)
	if !ok {
		return e.Name
	}
	short := st.ShortName
	if len(short) > 4 {
		short = short[:4]
	}
	return fmt.Sprintf("[%s] %s", short, e.Name)
}

// SelectedIndex returns the selected row position.
func (v *View) SelectedIndex() int {
	return v.selected
}

// FirstIndex returns the first visible row position.
func (v *View) FirstIndex() int {
	return v.first
}

// Selection is what a launcher collaborator needs to start the selected
// entry.
type Selection struct {
	Path     string
	Launcher string
	Label    string
}

// Select resolves the currently selected row. The second return is false
// when the view is empty or the cursor is out of range.
func (v *View) Select() (Selection, bool) {
	if len(v.rows) == 0 || v.selected < 0 || v.selected >= len(v.rows) {
		return Selection{}, false
	}
	e, ok := v.cat.EntryAt(v.rows[v.selected])
	if !ok {
		return Selection{}, false
	}

	sel := Selection{Path: e.Path, Label: e.Name}
	if st, ok := v.cat.Station(e.StationID); ok {
		sel.Launcher = st.Launcher
	}
	return sel, true
}
