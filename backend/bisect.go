package backend

import (
	"fmt"
	"math"
)

// bisect is the shared SolveBounded kernel. It is written purely against
// the Ops bundle, so both backends (and any registered third-party one)
// reuse it unchanged.
//
// The bracket update is branchless: the Step indicator is blended into
// lo/hi with elementwise arithmetic, never per-element control flow, so
// the iteration structure is identical for every element and every call.
func bisect(o Ops, f Integrand, target Array, lo, hi float64, maxIter int, tol float64) (Array, error) {
	if maxIter < 1 {
		return nil, fmt.Errorf("SolveBounded: %w: non-positive iteration cap %d", ErrConvergence, maxIter)
	}
	if hi <= lo || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, fmt.Errorf("SolveBounded: %w: empty bracket [%g, %g]", ErrConvergence, lo, hi)
	}
	// The cap is fixed up front: maxIter halvings must shrink the bracket
	// below tol, otherwise the solve is declared non-convergent before
	// any work happens.
	if (hi-lo)*math.Pow(0.5, float64(maxIter)) > tol {
		return nil, fmt.Errorf("SolveBounded: %w: %d iterations cannot reach tolerance %g over [%g, %g]",
			ErrConvergence, maxIter, tol, lo, hi)
	}

	// f is monotone increasing over the bracket, so the target is
	// achievable iff f(lo) <= target <= f(hi) elementwise.
	fLo := f(o.Full(target, lo))
	fHi := f(o.Full(target, hi))
	if o.Min(o.Step(fLo, target)) < 1 || o.Min(o.Step(target, fHi)) < 1 {
		return nil, fmt.Errorf("SolveBounded: %w: target outside achievable range [%g, %g]",
			ErrConvergence, o.Min(fLo), o.Max(fHi))
	}

	loA := o.Full(target, lo)
	hiA := o.Full(target, hi)
	for k := 0; k < maxIter; k++ {
		mid := o.Scale(0.5, o.Add(loA, hiA))
		// below = 1 where f(mid) <= target, i.e. the root sits above mid.
		below := o.Step(f(mid), target)
		above := o.Shift(1, o.Scale(-1, below))
		loA = o.Add(o.Mul(below, mid), o.Mul(above, loA))
		hiA = o.Add(o.Mul(below, hiA), o.Mul(above, mid))
	}

	return o.Scale(0.5, o.Add(loA, hiA)), nil
}
