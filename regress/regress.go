// Package regress provides a small, self-contained baseline regressor that
// predicts MOS from an assembled feature matrix. It exists so a freshly
// assembled train/verify split can be sanity-checked end to end without
// bringing a deep-learning framework into the loop: train on the training
// half, score the verification half, look at RMSE and Pearson correlation.
package regress

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/jnawrocki/trainmat/assemble"
)

// Config holds the hyperparameters of the baseline MLP regressor.
type Config struct {
	// HiddenSizes is the list of hidden layer sizes. If empty, a single
	// hidden layer of size 32 is used.
	HiddenSizes []int

	// LearningRate for mini-batch SGD (default 0.001).
	LearningRate float64

	// Epochs to train for (default 10).
	Epochs int

	// BatchSize for mini-batch updates (default 8).
	BatchSize int

	// Seed controls RNG for weight init and shuffling. If zero, a
	// time-based seed is used.
	Seed int64
}

// Model is an MLP with ReLU hidden layers and a single linear output, the
// predicted MOS.
type Model struct {
	Config Config

	// layerSizes includes input size, hidden sizes, then the scalar output.
	layerSizes []int

	// weights[l] has shape [out][in] for layer l -> l+1.
	weights [][][]float64
	biases  [][]float64

	rng *rand.Rand
}

// NewModel creates a model for feature vectors of width inputDim.
func NewModel(inputDim int, cfg Config) (*Model, error) {
	if inputDim < 1 {
		return nil, fmt.Errorf("input dimension must be >= 1, got %d", inputDim)
	}
	if len(cfg.HiddenSizes) == 0 {
		cfg.HiddenSizes = []int{32}
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = 0.001
	}
	if cfg.Epochs == 0 {
		cfg.Epochs = 10
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 8
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := &Model{
		Config: cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}

	sizes := make([]int, 0, 2+len(cfg.HiddenSizes))
	sizes = append(sizes, inputDim)
	sizes = append(sizes, cfg.HiddenSizes...)
	sizes = append(sizes, 1)
	m.layerSizes = sizes

	L := len(sizes) - 1
	m.weights = make([][][]float64, L)
	m.biases = make([][]float64, L)
	for l := 0; l < L; l++ {
		in := sizes[l]
		out := sizes[l+1]
		mat := make([][]float64, out)
		for j := 0; j < out; j++ {
			row := make([]float64, in)
			for i := 0; i < in; i++ {
				// Xavier/Glorot uniform initialization heuristic
				limit := math.Sqrt(6.0 / float64(in+out))
				row[i] = (m.rng.Float64()*2.0 - 1.0) * limit * 0.5
			}
			mat[j] = row
		}
		m.weights[l] = mat
		m.biases[l] = make([]float64, out)
	}

	return m, nil
}

func reluInPlace(x []float64) {
	for i := range x {
		if x[i] < 0 {
			x[i] = 0
		}
	}
}

func reluDeriv(preact []float64) []float64 {
	d := make([]float64, len(preact))
	for i := range preact {
		if preact[i] > 0 {
			d[i] = 1.0
		}
	}
	return d
}

// forwardSingle runs one feature vector through the network, returning the
// per-layer pre-activations and activations (activations[0] is the input).
func (m *Model) forwardSingle(input []float64) (preActs, acts [][]float64, err error) {
	if len(input) != m.layerSizes[0] {
		return nil, nil, errors.New("input has incorrect dimension")
	}
	L := len(m.weights)
	acts = make([][]float64, L+1)
	acts[0] = append([]float64(nil), input...)

	preActs = make([][]float64, L)
	for l := 0; l < L; l++ {
		inVec := acts[l]
		outDim := len(m.biases[l])
		pre := make([]float64, outDim)
		for j := 0; j < outDim; j++ {
			sum := m.biases[l][j]
			row := m.weights[l][j]
			for i, v := range inVec {
				sum += row[i] * v
			}
			pre[j] = sum
		}
		preActs[l] = pre

		// ReLU for hidden layers, linear output
		act := append([]float64(nil), pre...)
		if l < L-1 {
			reluInPlace(act)
		}
		acts[l+1] = act
	}
	return preActs, acts, nil
}

// Predict returns the predicted MOS per row of x.
func (m *Model) Predict(x *assemble.Matrix) ([]float64, error) {
	out := make([]float64, x.Rows)
	for i := 0; i < x.Rows; i++ {
		_, acts, err := m.forwardSingle(x.Row(i))
		if err != nil {
			return nil, err
		}
		out[i] = acts[len(acts)-1][0]
	}
	return out, nil
}

// Fit trains the model on the matrix rows against the MOS labels using
// mini-batch SGD with an MSE loss.
func (m *Model) Fit(x *assemble.Matrix, y []float64) error {
	if x.Rows == 0 {
		return errors.New("training matrix has no rows")
	}
	if x.Rows != len(y) {
		return fmt.Errorf("matrix has %d rows but %d labels", x.Rows, len(y))
	}

	epochs := m.Config.Epochs
	batchSize := m.Config.BatchSize
	lr := m.Config.LearningRate

	indices := make([]int, x.Rows)
	for i := range indices {
		indices[i] = i
	}

	L := len(m.weights)
	for ep := 0; ep < epochs; ep++ {
		m.rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		for bstart := 0; bstart < len(indices); bstart += batchSize {
			bend := bstart + batchSize
			if bend > len(indices) {
				bend = len(indices)
			}
			batch := indices[bstart:bend]

			// gradient accumulators, same shapes as weights/biases
			gradW := make([][][]float64, L)
			gradB := make([][]float64, L)
			for l := 0; l < L; l++ {
				outDim := len(m.biases[l])
				inDim := len(m.weights[l][0])
				gradW[l] = make([][]float64, outDim)
				for j := 0; j < outDim; j++ {
					gradW[l][j] = make([]float64, inDim)
				}
				gradB[l] = make([]float64, outDim)
			}

			for _, ex := range batch {
				preacts, acts, err := m.forwardSingle(x.Row(ex))
				if err != nil {
					return err
				}

				// dLoss/dOutput = 2*(pred - label)
				out := acts[len(acts)-1]
				delta := []float64{2.0 * (out[0] - y[ex])}

				for l := L - 1; l >= 0; l-- {
					inAct := acts[l]
					for j, dj := range delta {
						gradB[l][j] += dj
						for i, v := range inAct {
							gradW[l][j][i] += dj * v
						}
					}

					if l > 0 {
						prevLen := len(m.weights[l][0])
						newDelta := make([]float64, prevLen)
						for i := 0; i < prevLen; i++ {
							sum := 0.0
							for j, dj := range delta {
								sum += m.weights[l][j][i] * dj
							}
							newDelta[i] = sum
						}
						deriv := reluDeriv(preacts[l-1])
						for i := range newDelta {
							newDelta[i] *= deriv[i]
						}
						delta = newDelta
					}
				}
			}

			// averaged SGD update over the minibatch
			bInv := 1.0 / float64(len(batch))
			for l := 0; l < L; l++ {
				for j := range m.biases[l] {
					m.biases[l][j] -= lr * gradB[l][j] * bInv
					for i := range m.weights[l][j] {
						m.weights[l][j][i] -= lr * gradW[l][j][i] * bInv
					}
				}
			}
		}
	}

	return nil
}

// FitSplit trains on the training half of a split.
func (m *Model) FitSplit(s *assemble.Split) error {
	return m.Fit(s.XTrain, s.YTrain)
}
