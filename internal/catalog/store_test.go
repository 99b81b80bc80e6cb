package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreAppendAndGet(t *testing.T) {
	s := newEntryStore()
	idx := s.append(Entry{Name: "First"})
	assert.Equal(t, 0, idx)
	idx = s.append(Entry{Name: "Second"})
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, s.count())

	e, ok := s.get(0)
	assert.True(t, ok)
	assert.Equal(t, "First", e.Name)

	_, ok = s.get(2)
	assert.False(t, ok)
	_, ok = s.get(-1)
	assert.False(t, ok)
}

func TestStoreGrowthPreservesEntries(t *testing.T) {
	s := newEntryStore()
	total := initialStoreCapacity*2 + 3
	for i := 0; i < total; i++ {
		s.append(Entry{Name: fmt.Sprintf("entry-%05d", i)})
	}
	assert.Equal(t, total, s.count())

	for _, i := range []int{0, initialStoreCapacity - 1, initialStoreCapacity, total - 1} {
		e, ok := s.get(i)
		if !ok {
			t.Fatalf("entry %d missing after growth", i)
		}
		assert.Equal(t, fmt.Sprintf("entry-%05d", i), e.Name)
	}
}

func TestStoreRemoveWherePreservesOrder(t *testing.T) {
	s := newEntryStore()
	for i := 0; i < 10; i++ {
		s.append(Entry{Name: fmt.Sprintf("e%d", i), StationID: i % 2})
	}

	count := s.removeWhere(func(e *Entry) bool { return e.StationID == 0 })
	assert.Equal(t, 5, count)
	assert.Equal(t, 5, s.count())

	want := []string{"e1", "e3", "e5", "e7", "e9"}
	for i, name := range want {
		e, ok := s.get(i)
		assert.True(t, ok)
		assert.Equal(t, name, e.Name)
	}
}

func TestStoreRemoveWhereNoMatch(t *testing.T) {
	s := newEntryStore()
	s.append(Entry{Name: "keep"})
	count := s.removeWhere(func(e *Entry) bool { return false })
	assert.Equal(t, 1, count)
}
