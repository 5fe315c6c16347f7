package nn

import (
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/yourusername/fpl-expected-points/internal/dataset"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// syntheticBatch draws random features and labels them with a fixed linear
// target, giving the trainer something genuinely learnable.
func syntheticBatch(n, inputs int, seed int64) *dataset.Batch {
	rng := rand.New(rand.NewSource(seed))
	x := mat.NewDense(n, inputs, nil)
	y := mat.NewVecDense(n, nil)
	for r := 0; r < n; r++ {
		target := 0.0
		for c := 0; c < inputs; c++ {
			v := rng.Float64()
			x.Set(r, c, v)
			target += v * float64(c+1)
		}
		y.SetVec(r, target)
	}
	return &dataset.Batch{X: x, Y: y}
}

func TestNewRejectsNonPositiveWidth(t *testing.T) {
	if _, err := New(0, 1); err == nil {
		t.Fatal("expected error for zero input width")
	}
}

func TestPredictShape(t *testing.T) {
	net, err := New(8, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	batch := syntheticBatch(5, 8, 7)
	pred := net.Predict(batch.X)
	if pred.Len() != 5 {
		t.Fatalf("expected 5 predictions, got %d", pred.Len())
	}
	for i := 0; i < pred.Len(); i++ {
		if math.IsNaN(pred.AtVec(i)) || math.IsInf(pred.AtVec(i), 0) {
			t.Fatalf("prediction %d is not finite: %v", i, pred.AtVec(i))
		}
	}
}

func TestDeterministicInitialization(t *testing.T) {
	net1, _ := New(8, 42)
	net2, _ := New(8, 42)

	batch := syntheticBatch(4, 8, 3)
	pred1 := net1.Predict(batch.X)
	pred2 := net2.Predict(batch.X)
	for i := 0; i < pred1.Len(); i++ {
		if pred1.AtVec(i) != pred2.AtVec(i) {
			t.Fatalf("prediction %d differs between identically seeded networks", i)
		}
	}
}

func TestFitReducesLoss(t *testing.T) {
	net, err := New(4, 42)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	train := syntheticBatch(256, 4, 1)
	valid := syntheticBatch(64, 4, 2)
	before := net.Loss(train.X, train.Y)

	cfg := TrainerConfig{Epochs: 60, Patience: 100, BatchSize: 32, LearningRate: 0.001, Seed: 42}
	trainer, err := NewTrainer(net, cfg, quietLogger())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	result, err := trainer.Fit(train, valid)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Patience exceeds the epoch cap, so every epoch runs.
	if result.EpochsRun != 60 {
		t.Fatalf("expected 60 epochs, got %d", result.EpochsRun)
	}
	if result.EarlyStop {
		t.Fatal("early stopping must not trigger when patience exceeds the epoch cap")
	}

	after := net.Loss(train.X, train.Y)
	if after >= before {
		t.Fatalf("training did not reduce loss: before %v, after %v", before, after)
	}
}

func TestFitRejectsNonFiniteLoss(t *testing.T) {
	net, _ := New(4, 42)
	train := syntheticBatch(32, 4, 1)
	train.Y.SetVec(0, math.NaN())
	valid := syntheticBatch(8, 4, 2)

	cfg := TrainerConfig{Epochs: 10, Patience: 100, BatchSize: 8, LearningRate: 0.001, Seed: 42}
	trainer, _ := NewTrainer(net, cfg, quietLogger())

	if _, err := trainer.Fit(train, valid); err == nil {
		t.Fatal("expected error for non-finite training loss")
	}
}

func TestFitRejectsEmptyPartitions(t *testing.T) {
	net, _ := New(4, 42)
	cfg := TrainerConfig{Epochs: 10, Patience: 100, BatchSize: 8, LearningRate: 0.001, Seed: 42}
	trainer, _ := NewTrainer(net, cfg, quietLogger())

	empty := &dataset.Batch{}
	full := syntheticBatch(8, 4, 1)

	if _, err := trainer.Fit(empty, full); err == nil {
		t.Fatal("expected error for empty training partition")
	}
	if _, err := trainer.Fit(full, empty); err == nil {
		t.Fatal("expected error for empty validation partition")
	}
}

func TestTrainerConfigValidation(t *testing.T) {
	valid := TrainerConfig{Epochs: 60, Patience: 100, BatchSize: 32, LearningRate: 0.001}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	bad := valid
	bad.Epochs = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for zero epochs")
	}

	bad = valid
	bad.LearningRate = -1
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for negative learning rate")
	}
}

func TestEvaluateMetrics(t *testing.T) {
	net, _ := New(2, 1)
	// Zero the parameters so every prediction is exactly 0.
	for _, l := range net.layers {
		l.weights.Zero()
		l.biases.Zero()
	}

	x := mat.NewDense(2, 2, []float64{1, 1, 2, 2})
	y := mat.NewVecDense(2, []float64{3, -1})
	metrics := Evaluate(net, &dataset.Batch{X: x, Y: y})

	if metrics.Samples != 2 {
		t.Fatalf("expected 2 samples, got %d", metrics.Samples)
	}
	if metrics.MSE != 5 {
		t.Fatalf("expected mse 5, got %v", metrics.MSE)
	}
	if metrics.MAE != 2 {
		t.Fatalf("expected mae 2, got %v", metrics.MAE)
	}
}

func TestCompareLimits(t *testing.T) {
	net, _ := New(2, 1)
	batch := syntheticBatch(6, 2, 9)

	comparisons := Compare(net, batch, 4)
	if len(comparisons) != 4 {
		t.Fatalf("expected 4 comparisons, got %d", len(comparisons))
	}

	comparisons = Compare(net, batch, 100)
	if len(comparisons) != 6 {
		t.Fatalf("expected all 6 comparisons, got %d", len(comparisons))
	}
}
