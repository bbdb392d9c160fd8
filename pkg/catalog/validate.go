package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSex is returned when a user's sex is neither "m" nor "f".
	ErrInvalidSex = errors.New("invalid sex")

	// ErrDuplicateID is returned when two rows of one table share an id.
	ErrDuplicateID = errors.New("duplicate id")
)

// ValidationError describes a malformed row in a dataset.
type ValidationError struct {
	Table string
	ID    int
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s (id %d): %v", e.Table, e.ID, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the row-level invariants of ds: every user has a known sex
// and ids are unique within each table. Dangling references are not reported.
func Validate(ds Dataset) error {
	for _, u := range ds.Users {
		if !u.Sex.Valid() {
			return &ValidationError{Table: "users", ID: u.ID, Err: fmt.Errorf("%w: %q", ErrInvalidSex, u.Sex)}
		}
	}

	if id, ok := firstDuplicate(ds.Users, func(u User) int { return u.ID }); ok {
		return &ValidationError{Table: "users", ID: id, Err: ErrDuplicateID}
	}
	if id, ok := firstDuplicate(ds.Categories, func(c Category) int { return c.ID }); ok {
		return &ValidationError{Table: "categories", ID: id, Err: ErrDuplicateID}
	}
	if id, ok := firstDuplicate(ds.Products, func(p Product) int { return p.ID }); ok {
		return &ValidationError{Table: "products", ID: id, Err: ErrDuplicateID}
	}

	return nil
}

func firstDuplicate[T any](rows []T, id func(T) int) (int, bool) {
	seen := make(map[int]struct{}, len(rows))
	for _, r := range rows {
		k := id(r)
		if _, ok := seen[k]; ok {
			return k, true
		}
		seen[k] = struct{}{}
	}
	return 0, false
}
