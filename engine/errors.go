package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColumn is returned when a query names a column the view lacks.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrEmptyView is returned when a query has no rows to work on.
	ErrEmptyView = errors.New("no records")
	// ErrInvalidQuery is returned for a QuerySpec the engine cannot execute.
	ErrInvalidQuery = errors.New("invalid query")
)

func unknownColumn(key string) error {
	return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
}
