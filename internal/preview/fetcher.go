package preview

import (
	"context"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// batchFetchDelay spaces out network attempts so the remote collection is
// not hammered.
const batchFetchDelay = 100 * time.Millisecond

// ProgressFunc is invoked after every processed entry of a batch fetch,
// cache hit or not.
type ProgressFunc func(current, total int, name string)

// Fetcher serializes background preview fetches and runs batch downloads.
// At most one background fetch is in flight: starting a new one signals
// cancellation to the previous task and joins it before spawning.
type Fetcher struct {
	resolver *Resolver

	mu     sync.Mutex
	cancel *atomic.Bool
	done   chan struct{}

	batchCancel atomic.Bool
	batchDelay  time.Duration
}

// NewFetcher wires a fetch controller over the resolver.
func NewFetcher(r *Resolver) *Fetcher {
	return &Fetcher{resolver: r, batchDelay: batchFetchDelay}
}

// FetchAsync starts a background fetch for the entry at the given store
// index, superseding any fetch still in flight. The slot reads
// StatusLoading before this returns. Cancellation is cooperative: the flag
// is checked once at task entry, so a fetch already past that point runs
// to completion.
func (f *Fetcher) FetchAsync(ctx context.Context, entryIndex int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done != nil {
		f.cancel.Store(true)
		<-f.done
	}

	cancel := atomic.NewBool(false)
	done := make(chan struct{})
	f.cancel = cancel
	f.done = done

	f.resolver.slot.setStatus(StatusLoading)

	go func() {
		defer close(done)
		if cancel.Load() {
			return
		}
		e, ok := f.resolver.cat.EntryAt(entryIndex)
		if !ok {
			f.resolver.slot.setStatus(StatusError)
			return
		}
		// Outcome lands in the slot; the error adds nothing for pollers.
		f.resolver.FetchOnline(ctx, e)
	}()
}

// Poll reports whether the most recent background fetch has finished,
// regardless of outcome. True when none was ever started.
func (f *Fetcher) Poll() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done == nil {
		return true
	}
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Join blocks until the active background fetch has finished.
func (f *Fetcher) Join() {
	f.mu.Lock()
	done := f.done
	f.mu.Unlock()
	if done != nil {
		<-done
	}
}

// BatchFetch walks the whole entry store, downloading previews for the
// entries of one station. Already-cached entries are skipped without a
// network call but still reported. Returns the number of successful
// downloads; a cooperative cancel stops the loop early.
func (f *Fetcher) BatchFetch(ctx context.Context, stationID int, onProgress ProgressFunc) int {
	f.batchCancel.Store(false)

	cat := f.resolver.cat
	if _, ok := cat.Station(stationID); !ok {
		return 0
	}

	total := cat.StationEntryCount(stationID)
	current := 0
	downloaded := 0

	for i := 0; i < cat.EntryCount(); i++ {
		if f.batchCancel.Load() {
			break
		}
		e, ok := cat.EntryAt(i)
		if !ok || e.StationID != stationID {
			continue
		}
		current++

		if f.resolver.CacheExists(e) {
			if onProgress != nil {
				onProgress(current, total, e.Name)
			}
			continue
		}

		if err := f.resolver.FetchOnline(ctx, e); err == nil {
			downloaded++
		}
		if onProgress != nil {
			onProgress(current, total, e.Name)
		}

		time.Sleep(f.batchDelay)
	}

	return downloaded
}

// BatchCancel requests cooperative cancellation of the running batch. The
// flag is cleared at the start of the next batch call.
func (f *Fetcher) BatchCancel() {
	f.batchCancel.Store(true)
}
