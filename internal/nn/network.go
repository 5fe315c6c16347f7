// Package nn implements the small feed-forward regression network that
// predicts a player's expected points for a fixture.
package nn

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Fixed architecture: two rectified-linear hidden layers feeding a single
// linear output unit.
const (
	hidden1Width = 4
	hidden2Width = 3
	outputWidth  = 1
)

// Activation names used in the persisted architecture
const (
	ActivationReLU   = "relu"
	ActivationLinear = "linear"
)

// layer is a dense layer with weights (inputs x outputs), biases and an
// optional rectified-linear activation.
type layer struct {
	weights    *mat.Dense
	biases     *mat.VecDense
	activation string
}

// Network is the fixed-architecture feed-forward regression model
type Network struct {
	inputs int
	layers []*layer
}

// New creates a network with the fixed architecture and seeded He-style
// weight initialization.
func New(inputs int, seed int64) (*Network, error) {
	if inputs <= 0 {
		return nil, fmt.Errorf("network input width must be positive, got %d", inputs)
	}

	rng := rand.New(rand.NewSource(seed))
	net := &Network{inputs: inputs}
	widths := []int{inputs, hidden1Width, hidden2Width, outputWidth}
	for i := 0; i < len(widths)-1; i++ {
		activation := ActivationReLU
		if i == len(widths)-2 {
			activation = ActivationLinear
		}
		net.layers = append(net.layers, newLayer(widths[i], widths[i+1], activation, rng))
	}
	return net, nil
}

func newLayer(in, out int, activation string, rng *rand.Rand) *layer {
	scale := math.Sqrt(2.0 / float64(in))
	weights := mat.NewDense(in, out, nil)
	for r := 0; r < in; r++ {
		for c := 0; c < out; c++ {
			weights.Set(r, c, rng.NormFloat64()*scale)
		}
	}
	return &layer{
		weights:    weights,
		biases:     mat.NewVecDense(out, nil),
		activation: activation,
	}
}

// Inputs returns the network's input width
func (n *Network) Inputs() int {
	return n.inputs
}

// forwardCache holds the pre- and post-activation values of every layer for
// a single forward pass, consumed by backpropagation.
type forwardCache struct {
	// activations[0] is the input batch; activations[i+1] the output of
	// layer i. preActivations[i] is layer i's affine output before ReLU.
	activations    []*mat.Dense
	preActivations []*mat.Dense
}

// forward runs a full forward pass keeping intermediate values
func (n *Network) forward(x *mat.Dense) *forwardCache {
	cache := &forwardCache{activations: []*mat.Dense{x}}
	current := x
	for _, l := range n.layers {
		rows, _ := current.Dims()
		_, out := l.weights.Dims()

		z := mat.NewDense(rows, out, nil)
		z.Mul(current, l.weights)
		for r := 0; r < rows; r++ {
			for c := 0; c < out; c++ {
				z.Set(r, c, z.At(r, c)+l.biases.AtVec(c))
			}
		}
		cache.preActivations = append(cache.preActivations, z)

		a := z
		if l.activation == ActivationReLU {
			a = mat.NewDense(rows, out, nil)
			a.Apply(func(_, _ int, v float64) float64 { return math.Max(0, v) }, z)
		}
		cache.activations = append(cache.activations, a)
		current = a
	}
	return cache
}

// Predict computes the predicted points for every row of the feature matrix
func (n *Network) Predict(x *mat.Dense) *mat.VecDense {
	cache := n.forward(x)
	out := cache.activations[len(cache.activations)-1]
	rows, _ := out.Dims()
	pred := mat.NewVecDense(rows, nil)
	for r := 0; r < rows; r++ {
		pred.SetVec(r, out.At(r, 0))
	}
	return pred
}

// gradients holds per-layer parameter gradients from one backward pass
type gradients struct {
	weights []*mat.Dense
	biases  []*mat.VecDense
}

// backward computes MSE-loss gradients for a forward pass against labels y.
// Returns the batch loss alongside the gradients.
func (n *Network) backward(cache *forwardCache, y *mat.VecDense) (float64, *gradients) {
	out := cache.activations[len(cache.activations)-1]
	rows, _ := out.Dims()

	loss := 0.0
	// dL/dZ for the output layer of mean squared error
	delta := mat.NewDense(rows, outputWidth, nil)
	for r := 0; r < rows; r++ {
		diff := out.At(r, 0) - y.AtVec(r)
		loss += diff * diff
		delta.Set(r, 0, 2*diff/float64(rows))
	}
	loss /= float64(rows)

	grads := &gradients{
		weights: make([]*mat.Dense, len(n.layers)),
		biases:  make([]*mat.VecDense, len(n.layers)),
	}

	for i := len(n.layers) - 1; i >= 0; i-- {
		l := n.layers[i]
		in, outWidth := l.weights.Dims()
		input := cache.activations[i]

		gw := mat.NewDense(in, outWidth, nil)
		gw.Mul(input.T(), delta)
		grads.weights[i] = gw

		gb := mat.NewVecDense(outWidth, nil)
		dRows, _ := delta.Dims()
		for c := 0; c < outWidth; c++ {
			sum := 0.0
			for r := 0; r < dRows; r++ {
				sum += delta.At(r, c)
			}
			gb.SetVec(c, sum)
		}
		grads.biases[i] = gb

		if i == 0 {
			break
		}

		// Propagate through the layer's weights, then the previous ReLU.
		prev := mat.NewDense(dRows, in, nil)
		prev.Mul(delta, l.weights.T())
		z := cache.preActivations[i-1]
		prev.Apply(func(r, c int, v float64) float64 {
			if z.At(r, c) <= 0 {
				return 0
			}
			return v
		}, prev)
		delta = prev
	}

	return loss, grads
}

// Loss computes the mean squared error of the network on a feature matrix
func (n *Network) Loss(x *mat.Dense, y *mat.VecDense) float64 {
	pred := n.Predict(x)
	rows := pred.Len()
	if rows == 0 {
		return 0
	}
	sum := 0.0
	for r := 0; r < rows; r++ {
		diff := pred.AtVec(r) - y.AtVec(r)
		sum += diff * diff
	}
	return sum / float64(rows)
}
