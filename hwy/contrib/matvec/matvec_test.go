package matvec

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

var kernels = []struct {
	name string
	fn   func(a, x, y []float64, m, n int)
}{
	{"scalar", MatVecScalar},
	{"dispatch", MatVec},
}

func TestMatVec(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		m    int
		n    int
		x    []float64
		want []float64
	}{
		{
			name: "2x3 matrix",
			a: []float64{
				1, 2, 3,
				4, 5, 6,
			},
			m:    2,
			n:    3,
			x:    []float64{1, 0, 1},
			want: []float64{4, 10},
		},
		{
			name: "3x4 matrix",
			a: []float64{
				1, 2, 3, 4,
				5, 6, 7, 8,
				9, 0, 1, 2,
			},
			m:    3,
			n:    4,
			x:    []float64{1, 2, 3, 4},
			want: []float64{30, 70, 20},
		},
		{
			name: "identity matrix 3x3",
			a: []float64{
				1, 0, 0,
				0, 1, 0,
				0, 0, 1,
			},
			m:    3,
			n:    3,
			x:    []float64{5, 7, 9},
			want: []float64{5, 7, 9},
		},
		{
			name: "single row",
			a:    []float64{1, 2, 3, 4, 5, 6, 7, 8, 9},
			m:    1,
			n:    9,
			x:    []float64{1, 1, 1, 1, 1, 1, 1, 1, 1},
			want: []float64{45},
		},
		{
			name: "single column",
			a:    []float64{1, 2, 3, 4},
			m:    4,
			n:    1,
			x:    []float64{2},
			want: []float64{2, 4, 6, 8},
		},
		{
			name: "zero columns",
			a:    nil,
			m:    2,
			n:    0,
			x:    nil,
			want: []float64{0, 0},
		},
	}

	for _, kern := range kernels {
		for _, tt := range tests {
			t.Run(kern.name+"/"+tt.name, func(t *testing.T) {
				y := make([]float64, tt.m)
				for i := range y {
					y[i] = -1 // must be overwritten
				}
				kern.fn(tt.a, tt.x, y, tt.m, tt.n)
				for i := range tt.want {
					if math.Abs(y[i]-tt.want[i]) > 1e-12 {
						t.Errorf("y[%d] = %v, want %v", i, y[i], tt.want[i])
					}
				}
			})
		}
	}
}

func TestMatVecAgreesWithScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, dims := range [][2]int{{1, 1}, {5, 7}, {16, 16}, {31, 129}, {256, 1000}} {
		m, n := dims[0], dims[1]
		a := make([]float64, m*n)
		x := make([]float64, n)
		for i := range a {
			a[i] = rng.Float64()*2 - 1
		}
		for i := range x {
			x[i] = rng.Float64()*2 - 1
		}

		want := make([]float64, m)
		got := make([]float64, m)
		MatVecScalar(a, x, want, m, n)
		MatVec(a, x, got, m, n)

		t.Run(fmt.Sprintf("%dx%d", m, n), func(t *testing.T) {
			tol := 1e-12 * float64(n)
			for i := range want {
				if diff := math.Abs(got[i] - want[i]); diff > tol {
					t.Errorf("row %d: got %v, want %v (diff %e)", i, got[i], want[i], diff)
				}
			}
		})
	}
}
