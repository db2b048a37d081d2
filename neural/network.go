// Package neural provides the fixed-topology feedforward controllers the
// genetic algorithm evolves. A network is nothing but two weight
// matrices; bias is realized by adding an all-ones matrix before each
// activation rather than storing bias weights separately.
package neural

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/hopper/matrix"
)

// Weight initialization range: uniform in [WeightLow, WeightHigh).
const (
	WeightLow  = -1.0
	WeightHigh = 1.0
)

// Network is a three-layer feedforward network: inputs -> hidden ->
// outputs, sigmoid-activated at both transitions. The topology is fixed
// at construction.
type Network struct {
	wIn  *matrix.Matrix // inputs x hidden
	wOut *matrix.Matrix // hidden x outputs
}

// New creates a randomly initialized network.
func New(rng *rand.Rand, inputs, hidden, outputs int) *Network {
	return &Network{
		wIn:  matrix.WithRandom(rng, inputs, hidden, WeightLow, WeightHigh),
		wOut: matrix.WithRandom(rng, hidden, outputs, WeightLow, WeightHigh),
	}
}

// Feed runs a 1 x inputs row vector through the network and returns the
// 1 x outputs activation row. Each layer is: matrix product, plus an
// all-ones bias matrix of the activation's shape, then sigmoid.
func (n *Network) Feed(input *matrix.Matrix) (*matrix.Matrix, error) {
	h, err := input.MulMatrix(n.wIn)
	if err != nil {
		return nil, err
	}
	addBias(h)
	h.Apply(Sigmoid)

	out, err := h.MulMatrix(n.wOut)
	if err != nil {
		return nil, err
	}
	addBias(out)
	out.Apply(Sigmoid)

	return out, nil
}

// Crossover combines two networks of identical topology into a child.
// Each weight matrix is crossed independently, with its own random cut
// points.
func (n *Network) Crossover(rng *rand.Rand, other *Network) (*Network, error) {
	wIn, err := n.wIn.Crossover(rng, other.wIn)
	if err != nil {
		return nil, err
	}
	wOut, err := n.wOut.Crossover(rng, other.wOut)
	if err != nil {
		return nil, err
	}
	return &Network{wIn: wIn, wOut: wOut}, nil
}

// Mutate perturbs both weight matrices, each cell independently with
// probability p.
func (n *Network) Mutate(rng *rand.Rand, p float32) {
	n.wIn.Mutate(rng, p)
	n.wOut.Mutate(rng, p)
}

// Clone returns a deep copy of the network.
func (n *Network) Clone() *Network {
	return &Network{
		wIn:  n.wIn.Clone(),
		wOut: n.wOut.Clone(),
	}
}

// Weights exposes the weight matrices for inspection and tests.
func (n *Network) Weights() (wIn, wOut *matrix.Matrix) {
	return n.wIn, n.wOut
}

// Sigmoid is the logistic activation 1 / (1 + e^-x).
func Sigmoid(x float32) float32 {
	return float32(1 / (1 + math.Exp(-float64(x))))
}

func addBias(layer *matrix.Matrix) {
	bias := matrix.WithValue(layer.Rows(), layer.Cols(), 1)
	// Shapes match by construction; the error path is unreachable.
	_ = layer.AddMatrix(bias)
}
