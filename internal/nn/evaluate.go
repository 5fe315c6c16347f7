package nn

import (
	"math"

	"github.com/yourusername/fpl-expected-points/internal/dataset"
)

// Metrics holds test-partition evaluation results
type Metrics struct {
	MSE     float64 `json:"mse"`
	MAE     float64 `json:"mae"`
	Samples int     `json:"samples"`
}

// Comparison pairs a prediction with the actual points for inspection
type Comparison struct {
	Predicted float64 `json:"predicted"`
	Actual    float64 `json:"actual"`
}

// Evaluate computes mean squared error and mean absolute error of the
// network's predictions on a batch.
func Evaluate(net *Network, batch *dataset.Batch) Metrics {
	n := batch.Len()
	if n == 0 {
		return Metrics{}
	}

	pred := net.Predict(batch.X)
	sumSq := 0.0
	sumAbs := 0.0
	for i := 0; i < n; i++ {
		diff := pred.AtVec(i) - batch.Y.AtVec(i)
		sumSq += diff * diff
		sumAbs += math.Abs(diff)
	}
	return Metrics{
		MSE:     sumSq / float64(n),
		MAE:     sumAbs / float64(n),
		Samples: n,
	}
}

// Compare returns up to limit predicted-vs-actual pairs from a batch, for
// the visual comparison of predictions against observed points.
func Compare(net *Network, batch *dataset.Batch, limit int) []Comparison {
	n := batch.Len()
	if n == 0 || limit <= 0 {
		return nil
	}
	if limit > n {
		limit = n
	}

	pred := net.Predict(batch.X)
	comparisons := make([]Comparison, 0, limit)
	for i := 0; i < limit; i++ {
		comparisons = append(comparisons, Comparison{
			Predicted: pred.AtVec(i),
			Actual:    batch.Y.AtVec(i),
		})
	}
	return comparisons
}
