package nn

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/yourusername/fpl-expected-points/internal/models"
)

// Artifact file names within the model directory
const (
	architectureFile = "architecture.json"
	weightsFile      = "weights.json"
	metadataFile     = "metadata.json"
)

// layerSpec describes one layer in the persisted architecture
type layerSpec struct {
	Inputs     int    `json:"inputs"`
	Outputs    int    `json:"outputs"`
	Activation string `json:"activation"`
}

// architecture describes the persisted network shape
type architecture struct {
	Inputs int         `json:"inputs"`
	Layers []layerSpec `json:"layers"`
}

// layerWeights holds one layer's parameters in row-major order
type layerWeights struct {
	Weights [][]float64 `json:"weights"`
	Biases  []float64   `json:"biases"`
}

// weightsDoc is the persisted parameter set
type weightsDoc struct {
	Layers []layerWeights `json:"layers"`
}

// Save serializes the network's architecture and weights, plus the run
// metadata, into the named directory.
func Save(net *Network, artifact models.Artifact, dir string) error {
	if dir == "" {
		return fmt.Errorf("artifact directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	arch := architecture{Inputs: net.inputs}
	weights := weightsDoc{}
	for _, l := range net.layers {
		in, out := l.weights.Dims()
		arch.Layers = append(arch.Layers, layerSpec{Inputs: in, Outputs: out, Activation: l.activation})

		lw := layerWeights{Biases: make([]float64, out)}
		for r := 0; r < in; r++ {
			row := make([]float64, out)
			mat.Row(row, r, l.weights)
			lw.Weights = append(lw.Weights, row)
		}
		for c := 0; c < out; c++ {
			lw.Biases[c] = l.biases.AtVec(c)
		}
		weights.Layers = append(weights.Layers, lw)
	}

	if err := writeJSON(filepath.Join(dir, architectureFile), arch); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, weightsFile), weights); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, metadataFile), artifact)
}

// Load reads a persisted network from the named directory. A loaded network
// produces identical predictions to the saved one.
func Load(dir string) (*Network, error) {
	arch := architecture{}
	if err := readJSON(filepath.Join(dir, architectureFile), &arch); err != nil {
		return nil, err
	}
	weights := weightsDoc{}
	if err := readJSON(filepath.Join(dir, weightsFile), &weights); err != nil {
		return nil, err
	}
	if len(arch.Layers) != len(weights.Layers) {
		return nil, fmt.Errorf("artifact mismatch: %d layers in architecture, %d in weights", len(arch.Layers), len(weights.Layers))
	}

	net := &Network{inputs: arch.Inputs}
	for i, spec := range arch.Layers {
		lw := weights.Layers[i]
		if len(lw.Weights) != spec.Inputs || len(lw.Biases) != spec.Outputs {
			return nil, fmt.Errorf("artifact mismatch: layer %d dimensions do not match architecture", i)
		}

		l := &layer{
			weights:    mat.NewDense(spec.Inputs, spec.Outputs, nil),
			biases:     mat.NewVecDense(spec.Outputs, nil),
			activation: spec.Activation,
		}
		for r, row := range lw.Weights {
			if len(row) != spec.Outputs {
				return nil, fmt.Errorf("artifact mismatch: layer %d row %d width %d, want %d", i, r, len(row), spec.Outputs)
			}
			for c, v := range row {
				l.weights.Set(r, c, v)
			}
		}
		for c, v := range lw.Biases {
			l.biases.SetVec(c, v)
		}
		net.layers = append(net.layers, l)
	}
	return net, nil
}

// LoadMetadata reads the run metadata persisted alongside the weights
func LoadMetadata(dir string) (*models.Artifact, error) {
	artifact := &models.Artifact{}
	if err := readJSON(filepath.Join(dir, metadataFile), artifact); err != nil {
		return nil, err
	}
	return artifact, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
