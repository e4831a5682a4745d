package assemble

import (
	"fmt"

	"github.com/jnawrocki/trainmat/dataset"
)

// Split is an Assembled matrix partitioned into training and verification
// halves. The two halves are disjoint, their union covers every row exactly
// once, and canonical order is preserved inside each half.
type Split struct {
	XTrain  *Matrix
	XVerify *Matrix

	YTrain  []float64
	YVerify []float64

	NamesTrain  []string
	NamesVerify []string
	FilesTrain  []string
	FilesVerify []string

	// ParNames is the shared column naming of XTrain and XVerify.
	ParNames []string
}

// Partition splits an assembled matrix by the index's training flag. Row i
// goes to the training half iff idx.IsTraining[i].
func Partition(a *Assembled, idx *dataset.Index) (*Split, error) {
	if a.X.Rows != idx.Size() {
		return nil, fmt.Errorf("%w: %d rows, %d media", ErrSizeMismatch, a.X.Rows, idx.Size())
	}

	s := &Split{
		XTrain:   a.X.selectRows(idx.IsTraining, true),
		XVerify:  a.X.selectRows(idx.IsTraining, false),
		ParNames: append([]string(nil), a.ParNames...),
	}
	for i, training := range idx.IsTraining {
		if training {
			s.YTrain = append(s.YTrain, a.Y[i])
			s.NamesTrain = append(s.NamesTrain, a.Names[i])
			s.FilesTrain = append(s.FilesTrain, a.Files[i])
		} else {
			s.YVerify = append(s.YVerify, a.Y[i])
			s.NamesVerify = append(s.NamesVerify, a.Names[i])
			s.FilesVerify = append(s.FilesVerify, a.Files[i])
		}
	}
	return s, nil
}
