package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/yourusername/fpl-expected-points/internal/models"
)

// NumInputs is the model input width: the position one-hot plus the numeric
// features.
const NumInputs = models.NumPositions + models.NumNumericFeatures

// Batch is a feature/label pair consumable by the training loop: one row per
// example, NumInputs feature columns.
type Batch struct {
	X *mat.Dense
	Y *mat.VecDense
}

// Len returns the number of examples in the batch
func (b *Batch) Len() int {
	if b == nil || b.X == nil {
		return 0
	}
	r, _ := b.X.Dims()
	return r
}

// NewBatch materializes training examples into a feature matrix and label
// vector. The position one-hot occupies the first four columns, the numeric
// features the remainder, in the order defined by TrainingExample.
func NewBatch(examples []models.TrainingExample) *Batch {
	n := len(examples)
	if n == 0 {
		return &Batch{}
	}

	x := mat.NewDense(n, NumInputs, nil)
	y := mat.NewVecDense(n, nil)
	for i := range examples {
		e := &examples[i]
		oneHot := e.Position.OneHot()
		for j, v := range oneHot {
			x.Set(i, j, v)
		}
		numeric := e.NumericFeatures()
		for j, v := range numeric {
			x.Set(i, models.NumPositions+j, v)
		}
		y.SetVec(i, e.Points)
	}
	return &Batch{X: x, Y: y}
}

// Row returns the feature vector of example i as a slice copy
func (b *Batch) Row(i int) []float64 {
	row := make([]float64, NumInputs)
	mat.Row(row, i, b.X)
	return row
}
