package preview

import "errors"

var (
	// ErrNotFound means no candidate preview file could be loaded.
	ErrNotFound = errors.New("preview not found")
	// ErrNoInternet means the reachability probe failed; no download was
	// attempted.
	ErrNoInternet = errors.New("internet unavailable")
	// ErrDownloadFailed means every remote thumbnail category was tried
	// without success.
	ErrDownloadFailed = errors.New("preview download failed")
	// ErrDecodeFailed means a preview file existed but did not parse as
	// an image.
	ErrDecodeFailed = errors.New("preview decode failed")
	// ErrResourceClosed reports a double release of a slot resource.
	ErrResourceClosed = errors.New("preview resource already closed")
)
