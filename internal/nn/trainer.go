package nn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/yourusername/fpl-expected-points/internal/config"
	"github.com/yourusername/fpl-expected-points/internal/dataset"
)

// Adam moment decay constants
const (
	adamBeta1   = 0.9
	adamBeta2   = 0.999
	adamEpsilon = 1e-8
)

// TrainerConfig holds the training loop settings
type TrainerConfig struct {
	Epochs       int
	Patience     int
	BatchSize    int
	LearningRate float64
	Seed         int64
}

// FromConfig converts app config to trainer config
func FromConfig(cfg *config.TrainingConfig, seed int64) (TrainerConfig, error) {
	if cfg == nil {
		return TrainerConfig{}, fmt.Errorf("training config is required")
	}
	tc := TrainerConfig{
		Epochs:       cfg.Epochs,
		Patience:     cfg.Patience,
		BatchSize:    cfg.BatchSize,
		LearningRate: cfg.LearningRate,
		Seed:         seed,
	}
	return tc, tc.Validate()
}

// Validate validates trainer config parameters
func (c TrainerConfig) Validate() error {
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive")
	}
	if c.Patience <= 0 {
		return fmt.Errorf("patience must be positive")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be positive")
	}
	return nil
}

// Result summarizes a completed training run
type Result struct {
	EpochsRun int
	TrainLoss float64
	ValidLoss float64
	BestEpoch int
	EarlyStop bool
}

// Trainer fits a network with mini-batch Adam and mean-squared-error loss
type Trainer struct {
	net    *Network
	cfg    TrainerConfig
	logger *logrus.Logger

	// Adam first and second moment estimates per parameter tensor
	mWeights []*mat.Dense
	vWeights []*mat.Dense
	mBiases  []*mat.VecDense
	vBiases  []*mat.VecDense
	step     int
}

// NewTrainer creates a trainer for the given network
func NewTrainer(net *Network, cfg TrainerConfig, logger *logrus.Logger) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Trainer{net: net, cfg: cfg, logger: logger}
	for _, l := range net.layers {
		in, out := l.weights.Dims()
		t.mWeights = append(t.mWeights, mat.NewDense(in, out, nil))
		t.vWeights = append(t.vWeights, mat.NewDense(in, out, nil))
		t.mBiases = append(t.mBiases, mat.NewVecDense(out, nil))
		t.vBiases = append(t.vBiases, mat.NewVecDense(out, nil))
	}
	return t, nil
}

// Fit trains the network on the train batch, tracking the held-out loss on
// the validation batch for early stopping. Training stops after the epoch
// cap, or earlier if the validation loss fails to improve for Patience
// consecutive epochs. A non-finite training loss aborts immediately.
func (t *Trainer) Fit(train, valid *dataset.Batch) (*Result, error) {
	if train.Len() == 0 {
		return nil, fmt.Errorf("training partition is empty")
	}
	if valid.Len() == 0 {
		return nil, fmt.Errorf("validation partition is empty")
	}

	// The original workflow configures a patience larger than the epoch
	// cap, which makes early stopping unreachable. That behavior is kept;
	// it only gets flagged here.
	if t.cfg.Patience >= t.cfg.Epochs {
		t.logger.WithFields(logrus.Fields{
			"patience": t.cfg.Patience,
			"epochs":   t.cfg.Epochs,
		}).Warn("Early stopping patience exceeds the epoch cap and can never trigger")
	}

	rng := rand.New(rand.NewSource(t.cfg.Seed))
	n := train.Len()
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	result := &Result{BestEpoch: -1}
	bestValid := math.Inf(1)
	sinceImprovement := 0

	for epoch := 1; epoch <= t.cfg.Epochs; epoch++ {
		rng.Shuffle(n, func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })

		epochLoss := 0.0
		batches := 0
		for start := 0; start < n; start += t.cfg.BatchSize {
			end := start + t.cfg.BatchSize
			if end > n {
				end = n
			}
			x, y := gatherBatch(train, indices[start:end])
			cache := t.net.forward(x)
			loss, grads := t.net.backward(cache, y)
			if math.IsNaN(loss) || math.IsInf(loss, 0) {
				return nil, fmt.Errorf("training diverged: non-finite loss %v at epoch %d", loss, epoch)
			}
			t.apply(grads)
			epochLoss += loss
			batches++
		}
		epochLoss /= float64(batches)

		validLoss := t.net.Loss(valid.X, valid.Y)
		if math.IsNaN(validLoss) || math.IsInf(validLoss, 0) {
			return nil, fmt.Errorf("training diverged: non-finite validation loss %v at epoch %d", validLoss, epoch)
		}

		result.EpochsRun = epoch
		result.TrainLoss = epochLoss
		result.ValidLoss = validLoss

		if validLoss < bestValid {
			bestValid = validLoss
			result.BestEpoch = epoch
			sinceImprovement = 0
		} else {
			sinceImprovement++
		}

		t.logger.WithFields(logrus.Fields{
			"epoch":      epoch,
			"train_loss": epochLoss,
			"valid_loss": validLoss,
		}).Debug("Epoch complete")

		if sinceImprovement >= t.cfg.Patience {
			result.EarlyStop = true
			t.logger.WithField("epoch", epoch).Info("Early stopping triggered")
			break
		}
	}

	return result, nil
}

// gatherBatch copies the selected rows into a contiguous mini-batch
func gatherBatch(b *dataset.Batch, idx []int) (*mat.Dense, *mat.VecDense) {
	_, cols := b.X.Dims()
	x := mat.NewDense(len(idx), cols, nil)
	y := mat.NewVecDense(len(idx), nil)
	for i, src := range idx {
		for c := 0; c < cols; c++ {
			x.Set(i, c, b.X.At(src, c))
		}
		y.SetVec(i, b.Y.AtVec(src))
	}
	return x, y
}

// apply performs one Adam update with the given gradients
func (t *Trainer) apply(grads *gradients) {
	t.step++
	corr1 := 1 - math.Pow(adamBeta1, float64(t.step))
	corr2 := 1 - math.Pow(adamBeta2, float64(t.step))

	for i, l := range t.net.layers {
		in, out := l.weights.Dims()
		for r := 0; r < in; r++ {
			for c := 0; c < out; c++ {
				g := grads.weights[i].At(r, c)
				m := adamBeta1*t.mWeights[i].At(r, c) + (1-adamBeta1)*g
				v := adamBeta2*t.vWeights[i].At(r, c) + (1-adamBeta2)*g*g
				t.mWeights[i].Set(r, c, m)
				t.vWeights[i].Set(r, c, v)
				update := t.cfg.LearningRate * (m / corr1) / (math.Sqrt(v/corr2) + adamEpsilon)
				l.weights.Set(r, c, l.weights.At(r, c)-update)
			}
		}
		for c := 0; c < out; c++ {
			g := grads.biases[i].AtVec(c)
			m := adamBeta1*t.mBiases[i].AtVec(c) + (1-adamBeta1)*g
			v := adamBeta2*t.vBiases[i].AtVec(c) + (1-adamBeta2)*g*g
			t.mBiases[i].SetVec(c, m)
			t.vBiases[i].SetVec(c, v)
			update := t.cfg.LearningRate * (m / corr1) / (math.Sqrt(v/corr2) + adamEpsilon)
			l.biases.SetVec(c, l.biases.AtVec(c)-update)
		}
	}
}
