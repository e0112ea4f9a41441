// Package codec converts between a persisted text line and a pet's fields.
//
// A line is a name followed by one or more whitespace characters and a
// base-10 age:
//
//	Rex 4
//
// Names are not escaped, so a name containing whitespace cannot round-trip.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bft-labs/petdb/internal/domain"
)

// MaxLineLength is the longest line, in bytes, that DecodeLine accepts.
const MaxLineLength = 64 * 1024

// DecodeLine splits line on runs of whitespace and returns the name and age.
// It fails with domain.ErrMalformedLine unless there are exactly two fields
// and with domain.ErrNonNumericAge if the second is not an integer. The age
// range is not checked here; that is the Store's job.
func DecodeLine(line string) (string, int, error) {
	if len(line) > MaxLineLength {
		return "", 0, fmt.Errorf("%w: line is %d bytes, max %d", domain.ErrMalformedLine, len(line), MaxLineLength)
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("%w: %q has %d fields, want 2", domain.ErrMalformedLine, line, len(fields))
	}
	age, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", domain.ErrNonNumericAge, fields[1])
	}
	return fields[0], age, nil
}

// EncodeLine formats a pet as "<name> <age>".
func EncodeLine(name string, age int) string {
	return name + " " + strconv.Itoa(age)
}
