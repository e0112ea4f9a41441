package app

import "fmt"

// LineError records one line of the backing file that could not be loaded.
type LineError struct {
	// Line is the 1-based line number in the file
	Line int

	// Text is the raw line
	Text string

	// Err is the decode or validation failure
	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// LoadReport summarizes a best-effort load.
type LoadReport struct {
	// Loaded is the number of pets added to the store
	Loaded int

	// Errors holds one entry per rejected line, in file order
	Errors []*LineError
}

// OK returns true if every non-blank line was loaded.
func (r LoadReport) OK() bool {
	return len(r.Errors) == 0
}
