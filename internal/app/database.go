package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bft-labs/petdb/internal/codec"
	"github.com/bft-labs/petdb/internal/domain"
	"github.com/bft-labs/petdb/internal/ports"
)

// Database ties the in-memory Store to its backing text file.
// Store operations are not safe for concurrent use; only Stale may be called
// from another goroutine.
type Database struct {
	store  *domain.Store
	repo   ports.LineRepository
	logger ports.Logger

	mu     sync.Mutex
	synced ports.FileInfo
}

// NewDatabase creates a Database with an empty store.
func NewDatabase(repo ports.LineRepository, logger ports.Logger) *Database {
	return &Database{
		store:  domain.NewStore(),
		repo:   repo,
		logger: logger,
	}
}

// Load reads the backing file and adds each line to the store in file order.
// Lines that fail to decode or validate are collected in the report and do
// not stop the load. Blank lines are skipped. The returned error is reserved
// for I/O failures.
func (d *Database) Load(ctx context.Context) (LoadReport, error) {
	var report LoadReport

	lines, err := d.repo.ReadLines(ctx)
	if err != nil {
		return report, fmt.Errorf("load %s: %w", d.repo.Path(), err)
	}
	if lines == nil {
		d.logger.Info("no data file, starting empty", ports.String("path", d.repo.Path()))
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := d.Add(line); err != nil {
			lineErr := &LineError{Line: i + 1, Text: line, Err: err}
			report.Errors = append(report.Errors, lineErr)
			d.logger.Warn("skipping line",
				ports.Int("line", lineErr.Line),
				ports.String("text", line),
				ports.Err(err),
			)
			continue
		}
		report.Loaded++
	}

	d.markSynced(ctx)
	d.logger.Debug("database loaded",
		ports.String("path", d.repo.Path()),
		ports.Int("loaded", report.Loaded),
		ports.Int("rejected", len(report.Errors)),
	)
	return report, nil
}

// Save overwrites the backing file with one line per pet in store order.
func (d *Database) Save(ctx context.Context) error {
	entries := d.store.List()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = codec.EncodeLine(e.Name, e.Age)
	}

	if err := d.repo.WriteLines(ctx, lines); err != nil {
		return fmt.Errorf("save %s: %w", d.repo.Path(), err)
	}
	d.markSynced(ctx)
	d.logger.Debug("database saved", ports.String("path", d.repo.Path()), ports.Int("pets", len(lines)))
	return nil
}

// Add decodes a "<name> <age>" line and adds it to the store.
func (d *Database) Add(line string) (int, error) {
	name, age, err := codec.DecodeLine(line)
	if err != nil {
		return 0, err
	}
	return d.store.Add(name, age)
}

// AddPet adds a pet to the store.
func (d *Database) AddPet(name string, age int) (int, error) {
	return d.store.Add(name, age)
}

// Remove removes the pet at position.
func (d *Database) Remove(position int) error {
	return d.store.RemoveAt(position)
}

// List returns the stored pets in position order.
func (d *Database) List() []domain.Entry {
	return d.store.List()
}

// Size returns the number of stored pets.
func (d *Database) Size() int {
	return d.store.Size()
}

// Empty reports whether the store holds no pets.
func (d *Database) Empty() bool {
	return d.store.Empty()
}

// Path returns the backing file location.
func (d *Database) Path() string {
	return d.repo.Path()
}

// Stale reports whether the backing file changed since the last Load or Save.
func (d *Database) Stale(ctx context.Context) (bool, error) {
	info, err := d.repo.Stat(ctx)
	if err != nil {
		return false, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return info.Exists != d.synced.Exists ||
		info.Size != d.synced.Size ||
		!info.ModTime.Equal(d.synced.ModTime), nil
}

func (d *Database) markSynced(ctx context.Context) {
	info, err := d.repo.Stat(ctx)
	if err != nil {
		d.logger.Debug("stat data file", ports.Err(err))
		return
	}
	d.mu.Lock()
	d.synced = info
	d.mu.Unlock()
}
