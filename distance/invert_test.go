package distance_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/astrokit/cosmodist/backend"
	"github.com/astrokit/cosmodist/cosmology"
	"github.com/astrokit/cosmodist/distance"
)

// TestRedshiftRoundTrip: for any z in the bracket, inverting Dl(z) (or
// Dc(z)) recovers z within the solver tolerance.
func TestRedshiftRoundTrip(t *testing.T) {
	p, err := cosmology.New(67.66, 0.30966)
	require.NoError(t, err)
	eng, err := distance.New(p)
	require.NoError(t, err)

	z := []float64{0.001, 0.1, 0.5, 1, 5, 50}

	dl := floats(t)(eng.LuminosityDistance(z))
	back := floats(t)(eng.RedshiftAtLuminosityDistance(dl))
	for i := range z {
		require.InDelta(t, z[i], back[i], 1e-8, "Dl round trip at z=%g", z[i])
	}

	dc := floats(t)(eng.ComovingDistance(z))
	back = floats(t)(eng.RedshiftAtComovingDistance(dc))
	for i := range z {
		require.InDelta(t, z[i], back[i], 1e-8, "Dc round trip at z=%g", z[i])
	}
}

// TestRedshiftRoundTrip_VecBackend repeats the round trip through the
// gonum-vector backend.
func TestRedshiftRoundTrip_VecBackend(t *testing.T) {
	p, err := cosmology.New(70, 0.3)
	require.NoError(t, err)
	eng, err := distance.New(p)
	require.NoError(t, err)

	z := []float64{0.2, 1.5}
	dl, err := eng.LuminosityDistance(mat.NewVecDense(len(z), z))
	require.NoError(t, err)

	back, err := eng.RedshiftAtLuminosityDistance(dl)
	require.NoError(t, err)
	got := backend.Vec().Floats(back)
	for i := range z {
		require.InDelta(t, z[i], got[i], 1e-8)
	}
}

// TestRedshiftInversion_OutOfRange: targets outside the achievable
// distance range of the bracket must fail with ErrConvergence.
func TestRedshiftInversion_OutOfRange(t *testing.T) {
	p, err := cosmology.New(70, 0.3)
	require.NoError(t, err)
	eng, err := distance.New(p, distance.WithBracket(0.01, 2))
	require.NoError(t, err)

	// Far beyond Dl(zmax).
	_, err = eng.RedshiftAtLuminosityDistance([]float64{1e9})
	require.ErrorIs(t, err, backend.ErrConvergence)

	// Below Dl(zmin).
	_, err = eng.RedshiftAtLuminosityDistance([]float64{1e-6})
	require.ErrorIs(t, err, backend.ErrConvergence)
}

// TestRedshiftInversion_IterationBudget: a cap too small for the
// bracket/tolerance pair is rejected up front.
func TestRedshiftInversion_IterationBudget(t *testing.T) {
	p, err := cosmology.New(70, 0.3)
	require.NoError(t, err)
	eng, err := distance.New(p, distance.WithMaxIterations(4), distance.WithTolerance(1e-12))
	require.NoError(t, err)

	_, err = eng.RedshiftAtLuminosityDistance([]float64{3000})
	require.ErrorIs(t, err, backend.ErrConvergence)
}

// TestDetectorSourceFrameRoundTrip converts source-frame masses out and
// back through the luminosity-distance inversion.
func TestDetectorSourceFrameRoundTrip(t *testing.T) {
	p, err := cosmology.New(67.66, 0.30966)
	require.NoError(t, err)
	eng, err := distance.New(p)
	require.NoError(t, err)

	m1 := []float64{30, 10}
	m2 := []float64{25, 8}
	z := []float64{0.2, 0.9}

	m1z, m2z, dl, err := eng.SourceToDetectorFrame(m1, m2, z)
	require.NoError(t, err)
	for i := range z {
		require.InDelta(t, m1[i]*(1+z[i]), m1z.([]float64)[i], 1e-12)
		require.InDelta(t, m2[i]*(1+z[i]), m2z.([]float64)[i], 1e-12)
	}

	gotM1, gotM2, gotZ, err := eng.DetectorToSourceFrame(m1z, m2z, dl)
	require.NoError(t, err)
	for i := range z {
		require.InDelta(t, z[i], gotZ.([]float64)[i], 1e-8)
		require.InDelta(t, m1[i], gotM1.([]float64)[i], 1e-6)
		require.InDelta(t, m2[i], gotM2.([]float64)[i], 1e-6)
	}
}

// TestDetectorToSourceFrame_MixedBackends rejects inputs from two
// different array libraries.
func TestDetectorToSourceFrame_MixedBackends(t *testing.T) {
	p, err := cosmology.New(70, 0.3)
	require.NoError(t, err)
	eng, err := distance.New(p)
	require.NoError(t, err)

	_, _, _, err = eng.DetectorToSourceFrame(
		[]float64{30},
		mat.NewVecDense(1, []float64{25}),
		[]float64{1000},
	)
	require.ErrorIs(t, err, backend.ErrMixedBackend)
}
