package taylor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ReciprocalSeries computes the Maclaurin coefficients of 1/f(z) from
// those of f(z) by solving the lower-triangular Toeplitz system
//
//	T·b = e₁,  T[i][j] = a[i−j] (i >= j),
//
// which is the matrix form of the convolution identity f·(1/f) = 1.
// The input must be non-empty with a non-zero leading coefficient
// (f(0) ≠ 0); the output has the same length as the input.
func ReciprocalSeries(a []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, fmt.Errorf("ReciprocalSeries: %w: empty series", ErrInvalidOrder)
	}
	if a[0] == 0 {
		return nil, fmt.Errorf("ReciprocalSeries: %w: leading coefficient is zero", ErrSingular)
	}

	n := len(a)
	t := mat.NewTriDense(n, mat.Lower, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			t.SetTri(i, j, a[i-j])
		}
	}

	e1 := mat.NewVecDense(n, nil)
	e1.SetVec(0, 1)

	var b mat.VecDense
	if err := b.SolveVec(t, e1); err != nil {
		return nil, fmt.Errorf("ReciprocalSeries: %w: %v", ErrSingular, err)
	}

	out := make([]float64, n)
	copy(out, b.RawVector().Data)

	return out, nil
}
