package domain

import "errors"

var (
	// ErrNotFound marks a missing data store or a lookup that matched no loan.
	ErrNotFound = errors.New("not found")

	// ErrFormat marks persisted data that is malformed or has unparseable dates.
	ErrFormat = errors.New("malformed data")

	// ErrValidation marks a business-rule violation on a mutation.
	ErrValidation = errors.New("validation failed")

	// ErrPermission marks a write denied by file permissions.
	ErrPermission = errors.New("permission denied")

	// ErrIO marks any other persistence I/O failure.
	ErrIO = errors.New("io failure")
)
