package neural

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/hopper/matrix"
)

func TestSigmoid(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want float32
	}{
		{"zero", 0, 0.5},
		{"positive", 1.234, 0.7745179},
		{"negative", -1.234, 0.2254821},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sigmoid(tt.x)
			if diff := math.Abs(float64(got - tt.want)); diff > 1e-5 {
				t.Errorf("Sigmoid(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestSigmoidMonotoneAndBounded(t *testing.T) {
	prev := Sigmoid(-20)
	for x := float32(-19.5); x <= 20; x += 0.5 {
		v := Sigmoid(x)
		if v <= prev {
			t.Fatalf("Sigmoid not strictly increasing at x=%v: %v <= %v", x, v, prev)
		}
		if v <= 0 || v >= 1 {
			t.Fatalf("Sigmoid(%v) = %v, want in (0, 1)", x, v)
		}
		prev = v
	}
}

func TestFeedShapeAndRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := New(rng, 3, 4, 1)

	input := matrix.FromRows([][]float32{{120.5, 300, 4.2}})
	out, err := n.Feed(input)
	if err != nil {
		t.Fatalf("Feed returned error: %v", err)
	}

	if out.Rows() != 1 || out.Cols() != 1 {
		t.Fatalf("Feed output shape = %dx%d, want 1x1", out.Rows(), out.Cols())
	}
	if v := out.At(0, 0); v <= 0 || v >= 1 {
		t.Errorf("Feed output = %v, want in (0, 1)", v)
	}
}

func TestFeedDimensionMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := New(rng, 3, 4, 1)

	input := matrix.FromRows([][]float32{{1, 2}})
	if _, err := n.Feed(input); err == nil {
		t.Error("Feed with a 1x2 input into a 3-input network should fail")
	}
}

func TestFeedDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := New(rng, 3, 4, 1)

	input := matrix.FromRows([][]float32{{10, 20, 30}})
	a, err := n.Feed(input)
	if err != nil {
		t.Fatalf("Feed returned error: %v", err)
	}
	b, err := n.Feed(input)
	if err != nil {
		t.Fatalf("Feed returned error: %v", err)
	}

	if a.At(0, 0) != b.At(0, 0) {
		t.Errorf("Feed is not deterministic: %v != %v", a.At(0, 0), b.At(0, 0))
	}
}

func TestCrossoverPreservesTopology(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := New(rng, 3, 4, 1)
	b := New(rng, 3, 4, 1)

	child, err := a.Crossover(rng, b)
	if err != nil {
		t.Fatalf("Crossover returned error: %v", err)
	}

	wIn, wOut := child.Weights()
	if wIn.Rows() != 3 || wIn.Cols() != 4 {
		t.Errorf("child wIn shape = %dx%d, want 3x4", wIn.Rows(), wIn.Cols())
	}
	if wOut.Rows() != 4 || wOut.Cols() != 1 {
		t.Errorf("child wOut shape = %dx%d, want 4x1", wOut.Rows(), wOut.Cols())
	}
}

func TestCrossoverIdenticalParents(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a := New(rng, 3, 4, 1)

	child, err := a.Crossover(rng, a)
	if err != nil {
		t.Fatalf("Crossover returned error: %v", err)
	}

	aIn, aOut := a.Weights()
	cIn, cOut := child.Weights()
	if !cIn.Equal(aIn, 0) || !cOut.Equal(aOut, 0) {
		t.Error("crossover of a network with itself should reproduce it exactly")
	}
}

func TestCloneIsDeep(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	a := New(rng, 3, 4, 1)
	c := a.Clone()

	cIn, _ := c.Weights()
	cIn.Set(0, 0, 99)

	aIn, _ := a.Weights()
	if aIn.At(0, 0) == 99 {
		t.Error("mutating a clone changed the original network")
	}
}

func TestMutateZeroProbabilityIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	a := New(rng, 3, 4, 1)
	c := a.Clone()

	c.Mutate(rng, 0)

	aIn, aOut := a.Weights()
	cIn, cOut := c.Weights()
	if !cIn.Equal(aIn, 0) || !cOut.Equal(aOut, 0) {
		t.Error("Mutate(p=0) changed the network")
	}
}
