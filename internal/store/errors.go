package store

import "errors"

// Common aggregate operation errors
var (
	// ErrGroupNotFound indicates that no group exists with the given id
	ErrGroupNotFound = errors.New("group not found")

	// ErrPresetNotFound indicates that no preset exists with the given id
	ErrPresetNotFound = errors.New("preset not found")

	// ErrHistoryItemNotFound indicates that no history entry exists with the given id
	ErrHistoryItemNotFound = errors.New("history entry not found")

	// ErrInvalidImport indicates that import payload lacks one of the aggregates
	ErrInvalidImport = errors.New("invalid import payload")
)
