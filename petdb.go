// Package petdb provides an embeddable pet database backed by a flat text file.
//
// Example usage:
//
//	db, report, err := petdb.Open(ctx, "pets.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, lineErr := range report.Errors {
//	    log.Printf("skipped %v", lineErr)
//	}
//	if _, err := db.AddPet("Rex", 4); err != nil {
//	    log.Fatal(err)
//	}
//	if err := db.Save(ctx); err != nil {
//	    log.Fatal(err)
//	}
package petdb

import (
	"context"

	"github.com/bft-labs/petdb/internal/adapters/fs"
	logAdapter "github.com/bft-labs/petdb/internal/adapters/log"
	"github.com/bft-labs/petdb/internal/app"
	"github.com/bft-labs/petdb/internal/domain"
	"github.com/bft-labs/petdb/internal/ports"
)

// Database is an in-memory pet store bound to its backing file.
type Database = app.Database

// Entry is one stored pet and its position.
type Entry = domain.Entry

// LoadReport lists the lines skipped while loading.
type LoadReport = app.LoadReport

// LineError describes one skipped line.
type LineError = app.LineError

// Logger is the interface for structured logging.
type Logger = ports.Logger

// Limits.
const (
	Capacity = domain.Capacity
	MinAge   = domain.MinAge
	MaxAge   = domain.MaxAge
)

// Errors returned by Database operations; check with errors.Is.
var (
	ErrInvalidAge      = domain.ErrInvalidAge
	ErrDatabaseFull    = domain.ErrDatabaseFull
	ErrInvalidPosition = domain.ErrInvalidPosition
	ErrMalformedLine   = domain.ErrMalformedLine
	ErrNonNumericAge   = domain.ErrNonNumericAge
)

// Option configures Open.
type Option func(*options)

type options struct {
	logger ports.Logger
}

// WithLogger sets a custom logger. If not provided, nothing is logged.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Open loads the database stored at path. A missing file yields an empty
// database. Lines that cannot be loaded are listed in the report; err is
// only set for I/O failures.
func Open(ctx context.Context, path string, opts ...Option) (*Database, LoadReport, error) {
	o := options{logger: logAdapter.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	db := app.NewDatabase(fs.NewTextFile(path), o.logger)
	report, err := db.Load(ctx)
	if err != nil {
		return nil, report, err
	}
	return db, report, nil
}
