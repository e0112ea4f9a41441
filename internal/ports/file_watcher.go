package ports

import "context"

// FileWatcher reports changes made to the backing file by other processes.
type FileWatcher interface {
	// Run blocks until ctx is cancelled, calling onChange after each burst
	// of changes to the watched file.
	Run(ctx context.Context, onChange func()) error
}
