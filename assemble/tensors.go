package assemble

import "github.com/gomlx/gomlx/pkg/core/tensors"

// Tensor conversion for feeding the assembled matrices into gomlx training
// loops. The matrices convert to 2D float64 tensors, labels to 1D.

// Tensors converts the full matrix and label vector to gomlx tensors.
func (a *Assembled) Tensors() (x, y *tensors.Tensor, err error) {
	return toTensors(a.X, a.Y)
}

// TrainTensors converts the training half of a split.
func (s *Split) TrainTensors() (x, y *tensors.Tensor, err error) {
	return toTensors(s.XTrain, s.YTrain)
}

// VerifyTensors converts the verification half of a split.
func (s *Split) VerifyTensors() (x, y *tensors.Tensor, err error) {
	return toTensors(s.XVerify, s.YVerify)
}

func toTensors(m *Matrix, labels []float64) (x, y *tensors.Tensor, err error) {
	// handle empty halves gracefully
	if m.Rows == 0 || m.Cols == 0 {
		emptyX := make([][]float64, 0)
		emptyY := make([]float64, 0)
		return tensors.FromAnyValue(emptyX), tensors.FromAnyValue(emptyY), nil
	}
	x = tensors.FromAnyValue(m.Rows2D())
	y = tensors.FromAnyValue(labels)
	return x, y, nil
}
