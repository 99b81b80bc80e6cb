package catalog

import (
	"fmt"
	"strings"
)

// Entry is one catalog item discovered by a scan. Entries are created only
// while scanning their station and are never mutated afterwards; a re-scan
// or station removal replaces them wholesale.
type Entry struct {
	// Name is the display name: the filename without its extension and
	// with underscores rendered as spaces.
	Name     string
	Filename string
	Path     string
	// StationID references the station that was enabled when the entry
	// was scanned.
	StationID int
	Size      int64
	// ModTime is the file modification time as a unix timestamp.
	ModTime     int64
	HasPreview  bool
	PreviewPath string
}

// maxExtLen caps extension comparison; anything longer than 8 characters
// is truncated on both sides before matching.
const maxExtLen = 8

// displayName strips the extension from filename and replaces underscores
// with spaces.
func displayName(filename string) string {
	name := filename
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		name = name[:idx]
	}
	return strings.ReplaceAll(name, "_", " ")
}

// matchExtension reports whether filename's extension appears in the
// space-separated allow list. Matching is case-insensitive and an empty
// list matches everything. A file without a dot never matches a non-empty
// list.
func matchExtension(filename, allowList string) bool {
	if strings.TrimSpace(allowList) == "" {
		return true
	}

	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	if len(ext) > maxExtLen {
		ext = ext[:maxExtLen]
	}

	for _, token := range strings.Fields(allowList) {
		token = strings.ToLower(token)
		if len(token) > maxExtLen {
			token = token[:maxExtLen]
		}
		if token == ext {
			return true
		}
	}
	return false
}

// FormatEntrySize renders a byte count the way the browse rows expect:
// bare bytes below 1 KB, one decimal place above.
func FormatEntrySize(size int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case size < kb:
		return fmt.Sprintf("%d B", size)
	case size < mb:
		return fmt.Sprintf("%.1f KB", float64(size)/kb)
	case size < gb:
		return fmt.Sprintf("%.1f MB", float64(size)/mb)
	default:
		return fmt.Sprintf("%.1f GB", float64(size)/gb)
	}
}
