package domain

import "errors"

// Domain errors returned by Pet, Store and the line codec.
// Callers check them with errors.Is; returned errors usually wrap one of
// these with extra context.
var (
	// ErrInvalidAge is returned when an age falls outside [MinAge, MaxAge].
	ErrInvalidAge = errors.New("petdb: invalid age")

	// ErrDatabaseFull is returned when adding to a store at capacity.
	ErrDatabaseFull = errors.New("petdb: database is full")

	// ErrInvalidPosition is returned for a position outside [0, Size()).
	ErrInvalidPosition = errors.New("petdb: invalid position")

	// ErrMalformedLine is returned when a line does not hold exactly two fields.
	ErrMalformedLine = errors.New("petdb: malformed line")

	// ErrNonNumericAge is returned when the age field is not an integer.
	ErrNonNumericAge = errors.New("petdb: age is not a number")
)
