package fs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bft-labs/petdb/internal/ports"
)

// TextFile implements ports.LineRepository on a plain text file.
type TextFile struct {
	path string
}

// NewTextFile creates a TextFile backed by path.
func NewTextFile(path string) *TextFile {
	return &TextFile{path: path}
}

// ReadLines returns every line of the file in order, without line endings.
// Lines may be of any length. Returns nil and nil error if the file does not
// exist, and an empty non-nil slice if it exists but is empty.
func (f *TextFile) ReadLines(ctx context.Context) ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	lines := []string{}
	r := bufio.NewReader(file)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.path, err)
		}
	}
}

// WriteLines replaces the file with lines, each terminated by a newline.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (f *TextFile) WriteLines(ctx context.Context, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			tmp.Close()
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return err
	}

	// Atomic rename
	if err := os.Rename(tmpPath, f.path); err != nil {
		return err
	}
	renamed = true
	return nil
}

// Stat fingerprints the file by size and modification time.
func (f *TextFile) Stat(ctx context.Context) (ports.FileInfo, error) {
	st, err := os.Stat(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ports.FileInfo{}, nil
		}
		return ports.FileInfo{}, err
	}
	return ports.FileInfo{Exists: true, Size: st.Size(), ModTime: st.ModTime()}, nil
}

// Path returns the full path to the file.
func (f *TextFile) Path() string {
	return f.path
}
