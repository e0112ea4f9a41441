package ports

import (
	"context"
	"time"
)

// LineRepository persists the pet database as ordered text lines.
type LineRepository interface {
	// ReadLines returns every line of the backing file in order.
	// Returns nil lines and nil error if the file does not exist, and an
	// empty non-nil slice if it exists but is empty.
	ReadLines(ctx context.Context) ([]string, error)

	// WriteLines replaces the backing file with lines, one per line.
	// Implementations write atomically so a failed save never leaves a
	// truncated file behind.
	WriteLines(ctx context.Context, lines []string) error

	// Stat fingerprints the backing file. Exists is false when there is no file.
	Stat(ctx context.Context) (FileInfo, error)

	// Path returns the backing file location.
	Path() string
}

// FileInfo identifies one version of the backing file.
type FileInfo struct {
	Exists  bool
	Size    int64
	ModTime time.Time
}
