package dot

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"
)

var kernels = []struct {
	name string
	fn   func(x, y []float64) float64
}{
	{"scalar", DotScalar},
	{"vec", DotVec},
	{"dispatch", Dot},
}

func randVec(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}
	return v
}

// tolerance is the rounding bound eps * n * max|x[i]*y[i]|.
func tolerance(x, y []float64) float64 {
	var maxProd float64
	for i := range x {
		maxProd = math.Max(maxProd, math.Abs(x[i]*y[i]))
	}
	return 1e-12 * float64(len(x)) * maxProd
}

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
		want float64
	}{
		{
			name: "simple case",
			x:    []float64{1, 2, 3},
			y:    []float64{4, 5, 6},
			want: 32,
		},
		{
			name: "exact block (8 elements)",
			x:    []float64{1, 2, 3, 4, 5, 6, 7, 8},
			y:    []float64{8, 7, 6, 5, 4, 3, 2, 1},
			want: 120, // 8+14+18+20+20+18+14+8
		},
		{
			name: "block plus pair plus tail",
			x:    []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
			y:    []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			want: 66,
		},
		{
			name: "single element",
			x:    []float64{3},
			y:    []float64{-7},
			want: -21,
		},
		{
			name: "empty slices",
			x:    []float64{},
			y:    []float64{},
			want: 0,
		},
		{
			name: "nil slices",
			want: 0,
		},
		{
			name: "negative values",
			x:    []float64{-1, -2, -3},
			y:    []float64{4, 5, 6},
			want: -32,
		},
		{
			name: "high precision",
			x:    []float64{0.1, 0.2, 0.3},
			y:    []float64{0.3, 0.2, 0.1},
			want: 0.1*0.3 + 0.2*0.2 + 0.3*0.1,
		},
	}

	for _, k := range kernels {
		for _, tt := range tests {
			t.Run(k.name+"/"+tt.name, func(t *testing.T) {
				got := k.fn(tt.x, tt.y)
				if math.Abs(got-tt.want) > 1e-12 {
					t.Errorf("%s() = %v, want %v", k.name, got, tt.want)
				}
			})
		}
	}
}

func TestDotEmptyIsZero(t *testing.T) {
	for _, k := range kernels {
		if got := k.fn(nil, nil); got != 0 {
			t.Errorf("%s(nil, nil) = %v, want 0", k.name, got)
		}
		if got := k.fn([]float64{}, []float64{}); got != 0 {
			t.Errorf("%s([], []) = %v, want 0", k.name, got)
		}
	}
}

func TestDotAgreesWithScalar(t *testing.T) {
	sizes := []int{1, 2, 3, 7, 8, 9, 15, 16, 17, 1024, 1_000_003}
	rng := rand.New(rand.NewSource(42))

	for _, n := range sizes {
		x := randVec(rng, n)
		y := randVec(rng, n)
		want := DotScalar(x, y)
		tol := tolerance(x, y)

		for _, k := range kernels[1:] {
			t.Run(fmt.Sprintf("%s/n=%d", k.name, n), func(t *testing.T) {
				got := k.fn(x, y)
				if diff := math.Abs(got - want); diff > tol {
					t.Errorf("n=%d: got %v, scalar %v (diff %e > tol %e)", n, got, want, diff, tol)
				}
			})
		}
	}
}

func TestDotUnrollTiers(t *testing.T) {
	// n = 8k+r walks the block loop, then the pair loop, then the scalar tail.
	// The inputs sit at the front of a larger buffer poisoned with NaN so any
	// read past n shows up in the result.
	for k := 0; k <= 4; k++ {
		for _, r := range []int{0, 1, 2, 3, 5, 7} {
			n := BlockSize*k + r
			buf := make([]float64, 2*(n+BlockSize))
			for i := range buf {
				buf[i] = math.NaN()
			}
			x := buf[:n:n]
			y := buf[n+BlockSize : 2*n+BlockSize : 2*n+BlockSize]
			var want float64
			for i := 0; i < n; i++ {
				x[i] = float64(i + 1)
				y[i] = 2
				want += 2 * float64(i+1)
			}

			for _, kern := range kernels {
				if got := kern.fn(x, y); got != want {
					t.Errorf("%s n=%d: got %v, want %v", kern.name, n, got, want)
				}
			}
		}
	}
}

func TestDotCommutative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{0, 1, 5, 64, 1001} {
		x := randVec(rng, n)
		y := randVec(rng, n)
		for _, k := range kernels {
			if a, b := k.fn(x, y), k.fn(y, x); a != b {
				t.Errorf("%s n=%d: dot(x,y)=%v != dot(y,x)=%v", k.name, n, a, b)
			}
		}
	}
}

func TestDotIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	x := randVec(rng, 333)
	y := randVec(rng, 333)
	for _, k := range kernels {
		first := k.fn(x, y)
		for range 3 {
			if got := k.fn(x, y); got != first {
				t.Fatalf("%s: repeated call returned %v, first %v", k.name, got, first)
			}
		}
	}
}

func TestDotAgainstExactSum(t *testing.T) {
	// Compare both kernels with a 256-bit sum of the exact products. The
	// vectorized error should stay within the same bound as the scalar one.
	rng := rand.New(rand.NewSource(11))
	n := 4099
	x := randVec(rng, n)
	y := randVec(rng, n)

	exact := new(big.Float).SetPrec(256)
	for i := range x {
		p := new(big.Float).SetPrec(256).SetFloat64(x[i])
		p.Mul(p, new(big.Float).SetPrec(256).SetFloat64(y[i]))
		exact.Add(exact, p)
	}
	want, _ := exact.Float64()
	tol := tolerance(x, y)

	for _, k := range kernels {
		if diff := math.Abs(k.fn(x, y) - want); diff > tol {
			t.Errorf("%s: |err| = %e > %e", k.name, diff, tol)
		}
	}
}

func TestTarget(t *testing.T) {
	switch Target() {
	case "go", "avx2":
	default:
		t.Errorf("Target() = %q", Target())
	}
}
