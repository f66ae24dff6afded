// Package taylor: truncated power-series arithmetic. All series are
// coefficient slices indexed by term order; every helper truncates to
// the shortest operand, which is exact for Maclaurin prefixes.

package taylor

// binomialSeries returns the first n+1 Maclaurin coefficients of
// (1+z)^p, i.e. the generalized binomial coefficients C(p, k). For
// integer p >= 0 the tail past p is exactly zero.
func binomialSeries(p float64, n int) []float64 {
	c := make([]float64, n+1)
	c[0] = 1
	for k := 1; k <= n; k++ {
		c[k] = c[k-1] * (p - float64(k-1)) / float64(k)
	}

	return c
}

// mulSeries returns the Cauchy product truncated to the shorter input.
func mulSeries(a, b []float64) []float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	c := make([]float64, n)
	for k := 0; k < n; k++ {
		for j := 0; j <= k; j++ {
			c[k] += a[j] * b[k-j]
		}
	}

	return c
}

// scaleSeries returns s scaled by a constant.
func scaleSeries(c float64, s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = c * v
	}

	return out
}

// addSeries returns the elementwise sum; operands must share length.
func addSeries(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out
}

// expSeries returns the series of exp(g) for a series g with g[0] = 0,
// via the standard recurrence h_k = (1/k)·Σ_{j=1..k} j·g_j·h_{k−j}.
func expSeries(g []float64) []float64 {
	h := make([]float64, len(g))
	h[0] = 1
	for k := 1; k < len(g); k++ {
		var sum float64
		for j := 1; j <= k; j++ {
			sum += float64(j) * g[j] * h[k-j]
		}
		h[k] = sum / float64(k)
	}

	return h
}

// sqrtSeries returns the series of sqrt(s) for a series s with s[0] = 1,
// via a_k = (s_k − Σ_{j=1..k−1} a_j·a_{k−j}) / 2.
func sqrtSeries(s []float64) []float64 {
	a := make([]float64, len(s))
	a[0] = 1
	for k := 1; k < len(s); k++ {
		sum := s[k]
		for j := 1; j < k; j++ {
			sum -= a[j] * a[k-j]
		}
		a[k] = sum / 2
	}

	return a
}
