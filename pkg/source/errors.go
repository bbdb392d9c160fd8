package source

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSource is returned when a DSN matches no source kind.
	ErrUnknownSource = errors.New("unknown data source")

	// ErrNotSeedable is returned when seeding a read-only source.
	ErrNotSeedable = errors.New("source cannot be seeded")

	// ErrNoConnection is returned when a database source has been closed.
	ErrNoConnection = errors.New("no database connection")
)

// LoadError reports a failure to read one table of a source.
type LoadError struct {
	Source string
	Table  string
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("load error (%s): %v", e.Source, e.Err)
	}
	return fmt.Sprintf("load error (%s, table %s): %v", e.Source, e.Table, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
