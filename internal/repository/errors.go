package repository

import "errors"

var (
	// ErrNotFound means no row matched the lookup.
	ErrNotFound = errors.New("no matching row found")

	// ErrMultipleFound means a lookup expected to match exactly one row
	// matched several.
	ErrMultipleFound = errors.New("multiple matching rows found")

	// ErrStaleVersion means an optimistic update lost to a concurrent writer.
	ErrStaleVersion = errors.New("row version is stale")

	// ErrProviderNotFound means a provider identifier matched no active row.
	ErrProviderNotFound = errors.New("provider not found")
)
