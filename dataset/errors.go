package dataset

import "errors"

var (
	// ErrUnsupportedInput indicates a number of datasets other than one was
	// supplied to BuildIndex.
	ErrUnsupportedInput = errors.New("dataset: exactly one dataset is supported")
	// ErrDuplicateMediaName indicates two media records share a name.
	ErrDuplicateMediaName = errors.New("dataset: duplicate media name")
)
