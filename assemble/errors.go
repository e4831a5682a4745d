package assemble

import "errors"

var (
	// ErrUnknownMedia indicates a parameter collection references a media
	// name that is not present in the canonical index.
	ErrUnknownMedia = errors.New("assemble: media name not present in canonical index")
	// ErrSizeMismatch indicates an assembled matrix and an index disagree on
	// the number of media rows.
	ErrSizeMismatch = errors.New("assemble: matrix row count does not match index size")
)
