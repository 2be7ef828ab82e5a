package project

import "errors"

var (
	// ErrDestinationExists occurs when a copy's destination already exists;
	// the phase skips the pair rather than overwriting it.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrSourceMissing occurs when a copy's source does not exist, or is
	// none of the known kinds (file, directory, symbolic link).
	ErrSourceMissing = errors.New("source does not exist")

	// ErrCopyFailed occurs when the underlying filesystem reports failure
	// for a copy operation whose pre-conditions otherwise held.
	ErrCopyFailed = errors.New("copy failed")
)
