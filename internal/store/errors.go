package store

import "errors"

var (
	// ErrNotFound signals that no record with the requested id exists in the
	// local table.
	ErrNotFound = errors.New("record not found")

	// ErrUnknownIndex signals a query against a field the table does not
	// index.
	ErrUnknownIndex = errors.New("unknown index field")
)
