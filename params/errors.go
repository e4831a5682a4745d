package params

import "errors"

var (
	// ErrParameterNotFound indicates a requested parameter name is absent
	// from every collection.
	ErrParameterNotFound = errors.New("params: parameter not found in any collection")
	// ErrShapeMismatch indicates a collection's data table does not match
	// its parameter or media name lists.
	ErrShapeMismatch = errors.New("params: data shape does not match name lists")
)
