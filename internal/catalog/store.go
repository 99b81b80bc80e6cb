package catalog

// initialStoreCapacity is the entry slice allocation before the first
// growth. Growth always doubles.
const initialStoreCapacity = 1024

// entryStore is the ordered, growable collection of entries. It is owned
// exclusively by the catalog; callers outside the package only ever see
// copies resolved by index, since growth may relocate the backing array.
type entryStore struct {
	entries []Entry
}

func newEntryStore() entryStore {
	return entryStore{entries: make([]Entry, 0, initialStoreCapacity)}
}

// append adds an entry, doubling capacity when full, and returns its index.
func (s *entryStore) append(e Entry) int {
	if len(s.entries) == cap(s.entries) {
		newCap := cap(s.entries) * 2
		if newCap == 0 {
			newCap = initialStoreCapacity
		}
		grown := make([]Entry, len(s.entries), newCap)
		copy(grown, s.entries)
		s.entries = grown
	}
	s.entries = append(s.entries, e)
	return len(s.entries) - 1
}

// removeWhere compacts the store in place, dropping entries the predicate
// matches. A single forward pass with a write cursor preserves the relative
// order of everything retained. Returns the new count.
func (s *entryStore) removeWhere(pred func(*Entry) bool) int {
	write := 0
	for i := range s.entries {
		if pred(&s.entries[i]) {
			continue
		}
		if write != i {
			s.entries[write] = s.entries[i]
		}
		write++
	}
	s.entries = s.entries[:write]
	return write
}

func (s *entryStore) get(index int) (Entry, bool) {
	if index < 0 || index >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[index], true
}

func (s *entryStore) count() int {
	return len(s.entries)
}
