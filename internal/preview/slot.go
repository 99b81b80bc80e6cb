// Package preview resolves per-entry preview images from the on-disk
// cache or the remote thumbnail source and owns the shared preview slot.
package preview

import (
	"image"
	"sync"
)

// Status is the preview slot state.
type Status int

const (
	StatusNone Status = iota
	StatusLoading
	StatusReady
	StatusNotFound
	StatusError
	StatusNoInternet
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusNotFound:
		return "not_found"
	case StatusError:
		return "error"
	case StatusNoInternet:
		return "no_internet"
	}
	return "unknown"
}

// Resource is a single-owner handle to a loaded image. Closing it more
// than once is an error; the slot closes the previous resource whenever it
// is replaced or cleared, so at most one open resource exists per slot.
type Resource struct {
	img     image.Image
	release func()
	closed  bool
}

// NewResource wraps an image. release, when non-nil, runs exactly once on
// Close; tests use it to count releases.
func NewResource(img image.Image, release func()) *Resource {
	return &Resource{img: img, release: release}
}

// Image returns the wrapped image, or nil after Close.
func (r *Resource) Image() image.Image {
	if r.closed {
		return nil
	}
	return r.img
}

// Close releases the resource. A second call returns ErrResourceClosed.
func (r *Resource) Close() error {
	if r.closed {
		return ErrResourceClosed
	}
	r.closed = true
	r.img = nil
	if r.release != nil {
		r.release()
	}
	return nil
}

// Slot is the single shared holder of the most recently resolved preview.
// The resolver and fetch controller are its only writers; readers poll the
// status and must tolerate observing StatusLoading.
type Slot struct {
	mu        sync.Mutex
	status    Status
	res       *Resource
	width     int
	height    int
	name      string
	stationID int
}

// NewSlot creates an empty slot.
func NewSlot() *Slot {
	return &Slot{stationID: -1}
}

// Status returns the current state.
func (s *Slot) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Image returns the held image with its dimensions; ok is false unless the
// slot is ready.
func (s *Slot) Image() (img image.Image, width, height int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusReady || s.res == nil {
		return nil, 0, 0, false
	}
	return s.res.Image(), s.width, s.height, true
}

// Owner returns the entry name and station the held preview belongs to.
func (s *Slot) Owner() (name string, stationID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name, s.stationID
}

// Clear releases any held resource and resets the slot to StatusNone.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropLocked()
	s.status = StatusNone
}

// setStatus moves the slot to a non-ready state without touching the held
// resource.
func (s *Slot) setStatus(st Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = st
}

// setReady installs a freshly loaded resource, releasing the previous one
// first.
func (s *Slot) setReady(res *Resource, width, height int, name string, stationID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropLocked()
	s.res = res
	s.width = width
	s.height = height
	s.name = name
	s.stationID = stationID
	s.status = StatusReady
}

func (s *Slot) dropLocked() {
	if s.res != nil {
		s.res.Close()
		s.res = nil
	}
	s.width = 0
	s.height = 0
	s.name = ""
	s.stationID = -1
}
