package assemble

import (
	"fmt"

	"github.com/jnawrocki/trainmat/dataset"
	"github.com/jnawrocki/trainmat/params"
)

// AlignRow reorders one parameter row from the collection's local media
// order into the canonical order of idx. The returned slice always has
// idx.Size() entries and out[p] holds the value of the media whose canonical
// position is p, whatever order the collection stored it in.
//
// A collection media name absent from the index fails with ErrUnknownMedia.
func AlignRow(c *params.Collection, row int, idx *dataset.Index) ([]float64, error) {
	raw := c.Data[row]
	out := make([]float64, idx.Size())

	for local, mediaName := range c.MediaNames {
		pos, ok := idx.Position(mediaName)
		if !ok {
			return nil, fmt.Errorf("%w: %q in collection %q", ErrUnknownMedia, mediaName, c.Name)
		}
		out[pos] = raw[local]
	}

	return out, nil
}
