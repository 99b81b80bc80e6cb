package preview

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/romdex/internal/catalog"
	"github.com/xxxsen/romdex/internal/fsutil"
)

const probeTimeout = 3 * time.Second

// Resolver loads preview images into the slot, from the local cache first
// and the remote thumbnail collection on miss.
type Resolver struct {
	cat       *catalog.Catalog
	slot      *Slot
	cacheRoot string
	thumbHost string
	client    *http.Client

	// probe reports internet reachability; swapped out in tests.
	probe func() bool
}

// NewResolver wires a resolver over the catalog and slot. cacheRoot is the
// preview cache tree, thumbHost the remote collection base url, probeHost a
// host:port dialed to decide reachability, and timeout bounds a single
// download.
func NewResolver(cat *catalog.Catalog, slot *Slot, cacheRoot, thumbHost, probeHost string, timeout time.Duration) *Resolver {
	return &Resolver{
		cat:       cat,
		slot:      slot,
		cacheRoot: cacheRoot,
		thumbHost: thumbHost,
		client:    &http.Client{Timeout: timeout},
		probe: func() bool {
			conn, err := net.DialTimeout("tcp", probeHost, probeTimeout)
			if err != nil {
				return false
			}
			conn.Close()
			return true
		},
	}
}

// Slot returns the preview slot this resolver writes.
func (r *Resolver) Slot() *Slot {
	return r.slot
}

// CheckInternet runs the reachability probe.
func (r *Resolver) CheckInternet() bool {
	return r.probe()
}

// LoadLocal clears the slot and loads the first preview image that parses,
// trying the entry's recorded path and then the conventional cache
// locations. On success the slot is StatusReady; otherwise StatusNotFound
// and the returned error tells ErrDecodeFailed (a file existed but would
// not parse) apart from ErrNotFound.
func (r *Resolver) LoadLocal(ctx context.Context, e catalog.Entry) error {
	r.slot.Clear()

	short := "unknown"
	if st, ok := r.cat.Station(e.StationID); ok {
		short = st.ShortName
	}

	var candidates []string
	if e.HasPreview && e.PreviewPath != "" {
		candidates = append(candidates, e.PreviewPath)
	}
	candidates = append(candidates,
		filepath.Join(r.cacheRoot, short, e.Name+".png"),
		filepath.Join(r.cacheRoot, short, e.Name+".jpg"),
		filepath.Join(r.cacheRoot, e.Name+".png"),
	)

	sawCorrupt := false
	for _, path := range candidates {
		if !fsutil.FileExists(path) {
			continue
		}
		img, err := imaging.Open(path)
		if err != nil {
			sawCorrupt = true
			logutil.GetLogger(ctx).Debug("preview decode failed",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		bounds := img.Bounds()
		r.slot.setReady(NewResource(img, nil), bounds.Dx(), bounds.Dy(), e.Name, e.StationID)
		return nil
	}

	r.slot.setStatus(StatusNotFound)
	if sawCorrupt {
		return fmt.Errorf("load preview for %s: %w", e.Name, ErrDecodeFailed)
	}
	return fmt.Errorf("load preview for %s: %w", e.Name, ErrNotFound)
}

// FetchOnline downloads a preview into the per-station cache directory and
// finalises the slot via LoadLocal. The remote categories are tried in
// priority order; a failed probe reports StatusNoInternet without any
// download attempt. All-category failure removes the partial file and
// reports StatusNotFound.
func (r *Resolver) FetchOnline(ctx context.Context, e catalog.Entry) error {
	st, ok := r.cat.Station(e.StationID)
	if !ok {
		r.slot.setStatus(StatusError)
		return catalog.ErrNotFound
	}

	if !r.probe() {
		r.slot.setStatus(StatusNoInternet)
		return ErrNoInternet
	}

	r.slot.setStatus(StatusLoading)

	saveDir := filepath.Join(r.cacheRoot, st.ShortName)
	if err := fsutil.EnsureDir(saveDir); err != nil {
		r.slot.setStatus(StatusError)
		return fmt.Errorf("create cache dir %s: %w", saveDir, err)
	}
	savePath := filepath.Join(saveDir, e.Name+".png")

	system := SystemName(st.ShortName)
	encoded := encodeQueryName(e.Name)
	logger := logutil.GetLogger(ctx)

	for _, category := range thumbCategories {
		url := thumbURL(r.thumbHost, system, category, encoded)
		if err := r.downloadFile(ctx, url, savePath); err != nil {
			logger.Debug("thumbnail candidate failed",
				zap.String("category", category),
				zap.String("name", e.Name),
				zap.Error(err),
			)
			continue
		}
		return r.LoadLocal(ctx, e)
	}

	os.Remove(savePath)
	r.slot.setStatus(StatusNotFound)
	return fmt.Errorf("fetch preview for %s: %w", e.Name, ErrDownloadFailed)
}

// downloadFile performs a bounded GET to savePath, deleting the file on
// any failure or on an empty body.
func (r *Resolver) downloadFile(ctx context.Context, url, savePath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	f, err := os.Create(savePath)
	if err != nil {
		return err
	}
	n, err := io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(savePath)
		return fmt.Errorf("write %s: %w", savePath, err)
	}
	if n == 0 {
		os.Remove(savePath)
		return fmt.Errorf("empty download from %s", url)
	}
	return nil
}
