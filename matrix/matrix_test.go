package matrix

import (
	"errors"
	"math/rand"
	"testing"
)

func TestMulMatrix(t *testing.T) {
	tests := []struct {
		name string
		a, b [][]float32
		want [][]float32
	}{
		{
			name: "2x3 by 3x2",
			a:    [][]float32{{0, 5, 1.5}, {2, 2.5, -0.5}},
			b:    [][]float32{{0, 5}, {2, 2.5}, {1, -2.5}},
			want: [][]float32{{11.5, 8.75}, {4.5, 17.5}},
		},
		{
			name: "2x3 by 3x4",
			a:    [][]float32{{2.3, 1.4, 4.5}, {6.8, 3.1, 2.55}},
			b:    [][]float32{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}},
			want: [][]float32{{49.8, 58, 66.2, 74.4}, {45.25, 57.7, 70.15, 82.6}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromRows(tt.a).MulMatrix(FromRows(tt.b))
			if err != nil {
				t.Fatalf("MulMatrix returned error: %v", err)
			}
			if want := FromRows(tt.want); !got.Equal(want, 1e-4) {
				t.Errorf("MulMatrix = %+v, want %+v", got, want)
			}
		})
	}
}

func TestMulMatrixDimensionMismatch(t *testing.T) {
	a := New(2, 3)
	b := New(2, 3)

	if _, err := a.MulMatrix(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("MulMatrix error = %v, want ErrDimensionMismatch", err)
	}
}

func TestAddMatrix(t *testing.T) {
	a := FromRows([][]float32{{1.2, 4.4, 1.5}, {0.8, 8.1, 8.5}})
	b := WithValue(2, 3, 1)

	if err := a.AddMatrix(b); err != nil {
		t.Fatalf("AddMatrix returned error: %v", err)
	}

	want := FromRows([][]float32{{2.2, 5.4, 2.5}, {1.8, 9.1, 9.5}})
	if !a.Equal(want, 1e-5) {
		t.Errorf("AddMatrix = %+v, want %+v", a, want)
	}
}

func TestAddMatrixDimensionMismatch(t *testing.T) {
	a := New(2, 3)
	b := New(3, 2)

	if err := a.AddMatrix(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("AddMatrix error = %v, want ErrDimensionMismatch", err)
	}
}

func TestScale(t *testing.T) {
	a := FromRows([][]float32{{2.3, 1.4, 4.5}, {6.8, 3.1, 2.55}})
	a.Scale(2)

	want := FromRows([][]float32{{4.6, 2.8, 9}, {13.6, 6.2, 5.1}})
	if !a.Equal(want, 1e-5) {
		t.Errorf("Scale = %+v, want %+v", a, want)
	}
}

func TestWithRandomRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := WithRandom(rng, 16, 16, -1, 1)

	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			v := m.At(r, c)
			if v < -1 || v >= 1 {
				t.Fatalf("cell (%d,%d) = %v, want in [-1, 1)", r, c, v)
			}
		}
	}
}

func TestCrossoverIdentical(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := WithRandom(rng, 4, 5, -1, 1)

	// Cut points are irrelevant when both parents are the same matrix.
	for i := 0; i < 20; i++ {
		child, err := a.Crossover(rng, a)
		if err != nil {
			t.Fatalf("Crossover returned error: %v", err)
		}
		if !child.Equal(a, 0) {
			t.Fatalf("Crossover(a, a) differs from a on attempt %d", i)
		}
	}
}

func TestCrossoverRectangle(t *testing.T) {
	a := WithValue(3, 3, 0)
	b := WithValue(3, 3, 1)

	rng := rand.New(rand.NewSource(3))
	child, err := a.Crossover(rng, b)
	if err != nil {
		t.Fatalf("Crossover returned error: %v", err)
	}

	// The child must be a's values outside a bottom-right-anchored
	// rectangle and b's values inside it. Recover the cut points from
	// the child and verify the rectangle shape.
	pr, pc := child.Rows(), child.Cols()
	for r := 0; r < child.Rows(); r++ {
		for c := 0; c < child.Cols(); c++ {
			if child.At(r, c) == 1 {
				if r < pr {
					pr = r
				}
				if c < pc {
					pc = c
				}
			}
		}
	}

	for r := 0; r < child.Rows(); r++ {
		for c := 0; c < child.Cols(); c++ {
			want := float32(0)
			if r >= pr && c >= pc {
				want = 1
			}
			if child.At(r, c) != want {
				t.Errorf("cell (%d,%d) = %v, want %v (cuts %d,%d)",
					r, c, child.At(r, c), want, pr, pc)
			}
		}
	}
}

func TestCrossoverDimensionMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := New(2, 2)
	b := New(3, 3)

	if _, err := a.Crossover(rng, b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Crossover error = %v, want ErrDimensionMismatch", err)
	}
}

func TestMutateZeroProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := WithRandom(rng, 6, 6, -1, 1)
	before := a.Clone()

	a.Mutate(rng, 0)

	if !a.Equal(before, 0) {
		t.Error("Mutate(p=0) changed the matrix")
	}
}

func TestMutateClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := WithValue(8, 8, 1) // every perturbation risks leaving [-1, 1]

	a.Mutate(rng, 1)

	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			v := a.At(r, c)
			if v < -1 || v > 1 {
				t.Fatalf("cell (%d,%d) = %v, want in [-1, 1]", r, c, v)
			}
		}
	}
}

func TestApply(t *testing.T) {
	a := FromRows([][]float32{{1, 2}, {3, 4}})
	a.Apply(func(v float32) float32 { return v - 1 })

	want := FromRows([][]float32{{0, 1}, {2, 3}})
	if !a.Equal(want, 0) {
		t.Errorf("Apply = %+v, want %+v", a, want)
	}
}
