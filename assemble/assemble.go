package assemble

import (
	"fmt"

	"github.com/jnawrocki/trainmat/dataset"
	"github.com/jnawrocki/trainmat/params"
)

// Assembled is a labeled feature matrix over the full dataset: X holds one
// row per media item in canonical order and one column per requested
// parameter in request order; Y, Names and Files are aligned to the same
// rows.
type Assembled struct {
	X *Matrix

	// Y is the MOS label per row.
	Y []float64

	// Names and Files are the media metadata per row.
	Names []string
	Files []string

	// ParNames records the column names, in output order.
	ParNames []string
}

// Assemble resolves and aligns every requested parameter and concatenates
// the results into a labeled matrix. An empty parNames means "all parameters
// from all collections" in declaration order, duplicates preserved. Any
// resolution or alignment failure aborts the whole assembly; no partial
// matrix is ever returned.
func Assemble(idx *dataset.Index, resolver *params.Resolver, parNames []string) (*Assembled, error) {
	if len(parNames) == 0 {
		parNames = resolver.AllNames()
	}

	columns := make([][]float64, len(parNames))
	for i, name := range parNames {
		c, row, err := resolver.Resolve(name)
		if err != nil {
			return nil, err
		}
		col, err := AlignRow(c, row, idx)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		columns[i] = col
	}

	x, err := matrixFromColumns(columns, idx.Size())
	if err != nil {
		return nil, err
	}

	a := &Assembled{
		X:        x,
		Y:        append([]float64(nil), idx.Labels...),
		Names:    append([]string(nil), idx.Names...),
		Files:    append([]string(nil), idx.Files...),
		ParNames: append([]string(nil), parNames...),
	}
	return a, nil
}
