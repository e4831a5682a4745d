package dataset

import "fmt"

// Index assigns every media name in a dataset a canonical 0-based position
// (assignment order = dataset iteration order) and carries the vectors that
// are already aligned to that order: labels, split membership and metadata.
// Every assembled feature column is permuted into this order, so all columns
// and the label vector line up row for row.
//
// An Index is built once per assembly run and never mutated afterwards.
type Index struct {
	// Names and Files hold the media metadata in canonical order.
	Names []string
	Files []string

	// Labels holds the MOS per canonical position.
	Labels []float64

	// IsTraining is true at position i iff the media item's category is
	// CategoryTrain.
	IsTraining []bool

	positions map[string]int
}

// BuildIndex builds the canonical index over the media of a single dataset.
// Exactly one dataset must be given; anything else fails with
// ErrUnsupportedInput. A repeated media name fails with
// ErrDuplicateMediaName rather than silently reassigning the position.
func BuildIndex(datasets ...Dataset) (*Index, error) {
	if len(datasets) != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedInput, len(datasets))
	}
	ds := datasets[0]

	idx := &Index{
		Names:      make([]string, 0, len(ds)),
		Files:      make([]string, 0, len(ds)),
		Labels:     make([]float64, 0, len(ds)),
		IsTraining: make([]bool, 0, len(ds)),
		positions:  make(map[string]int, len(ds)),
	}

	for i, m := range ds {
		if prev, ok := idx.positions[m.Name]; ok {
			return nil, fmt.Errorf("%w: %q at rows %d and %d", ErrDuplicateMediaName, m.Name, prev, i)
		}
		idx.positions[m.Name] = i
		idx.Names = append(idx.Names, m.Name)
		idx.Files = append(idx.Files, m.File)
		idx.Labels = append(idx.Labels, m.MOS)
		idx.IsTraining = append(idx.IsTraining, m.Category == CategoryTrain)
	}

	return idx, nil
}

// Position returns the canonical position of a media name.
func (x *Index) Position(name string) (int, bool) {
	p, ok := x.positions[name]
	return p, ok
}

// Size returns the number of indexed media items.
func (x *Index) Size() int {
	return len(x.Names)
}

// TrainCount returns how many items belong to the training split.
func (x *Index) TrainCount() int {
	n := 0
	for _, t := range x.IsTraining {
		if t {
			n++
		}
	}
	return n
}

// VerifyCount returns how many items belong to the verification split.
func (x *Index) VerifyCount() int {
	return x.Size() - x.TrainCount()
}
