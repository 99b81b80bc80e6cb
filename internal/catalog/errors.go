package catalog

import "errors"

var (
	// ErrNotFound is returned when a station id does not name an enabled
	// registry slot.
	ErrNotFound = errors.New("station not found")
	// ErrRegistryFull is returned by AddStation when every slot is taken.
	ErrRegistryFull = errors.New("station registry full")
)
