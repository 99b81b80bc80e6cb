package browse

import (
	"sort"
	"strings"

	"github.com/xxxsen/romdex/internal/catalog"
)

// SortMode selects the comparison applied by Sort.
type SortMode int

const (
	SortNameAsc SortMode = iota
	SortNameDesc
	SortStationAsc
	SortStationDesc
	SortDateAsc
	SortDateDesc
	SortSizeAsc
	SortSizeDesc
)

// ParseSortMode maps a command line token like "name-desc" to a mode.
func ParseSortMode(s string) (SortMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "name-asc":
		return SortNameAsc, true
	case "name-desc":
		return SortNameDesc, true
	case "station", "station-asc":
		return SortStationAsc, true
	case "station-desc":
		return SortStationDesc, true
	case "date", "date-asc":
		return SortDateAsc, true
	case "date-desc":
		return SortDateDesc, true
	case "size", "size-asc":
		return SortSizeAsc, true
	case "size-desc":
		return SortSizeDesc, true
	}
	return SortNameAsc, false
}

func compareNames(a, b *catalog.Entry) int {
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

// Sort reorders the view rows. Only the view ordering changes; the store
// keeps insertion order. A later rebuild reverts to store order, so
// callers that want to keep a sort across a filter change must re-apply
// it. Station sorting flips only the station id comparison with
// direction; the name tie-break always sorts ascending.
func (v *View) Sort(mode SortMode) {
	less := func(a, b *catalog.Entry) bool {
		switch mode {
		case SortNameAsc:
			return compareNames(a, b) < 0
		case SortNameDesc:
			return compareNames(b, a) < 0
		case SortStationAsc:
			if a.StationID != b.StationID {
				return a.StationID < b.StationID
			}
			return compareNames(a, b) < 0
		case SortStationDesc:
			if a.StationID != b.StationID {
				return b.StationID < a.StationID
			}
			return compareNames(a, b) < 0
		case SortDateAsc:
			return a.ModTime < b.ModTime
		case SortDateDesc:
			return b.ModTime < a.ModTime
		case SortSizeAsc:
			return a.Size < b.Size
		case SortSizeDesc:
			return b.Size < a.Size
		}
		return false
	}

	sort.SliceStable(v.rows, func(i, j int) bool {
		a, okA := v.cat.EntryAt(v.rows[i])
		b, okB := v.cat.EntryAt(v.rows[j])
		if !okA || !okB {
			return false
		}
		return less(&a, &b)
	})
}
