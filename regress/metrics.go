package regress

import (
	"errors"
	"math"
)

// Evaluation compares predicted MOS against the subjective labels with the
// two figures conventionally reported for NR quality models.
type Evaluation struct {
	// RMSE is the root-mean-square error of the predictions.
	RMSE float64

	// Pearson is the linear correlation between predictions and labels.
	// NaN when either side has zero variance.
	Pearson float64
}

// Evaluate scores predictions against labels.
func Evaluate(pred, labels []float64) (Evaluation, error) {
	if len(pred) != len(labels) {
		return Evaluation{}, errors.New("prediction and label vectors differ in length")
	}
	if len(pred) == 0 {
		return Evaluation{}, errors.New("nothing to evaluate")
	}
	return Evaluation{
		RMSE:    rmse(pred, labels),
		Pearson: pearson(pred, labels),
	}, nil
}

func rmse(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(a)))
}

func pearson(a, b []float64) float64 {
	n := float64(len(a))
	var meanA, meanB float64
	for i := range a {
		meanA += a[i]
		meanB += b[i]
	}
	meanA /= n
	meanB /= n

	var cov, varA, varB float64
	for i := range a {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varA*varB)
}
