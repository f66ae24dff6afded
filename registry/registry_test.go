package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astrokit/cosmodist/cosmology"
	"github.com/astrokit/cosmodist/distance"
	"github.com/astrokit/cosmodist/registry"
	"github.com/astrokit/cosmodist/taylor"
)

// TestCosmologyFunctionNames freezes the registry surface: removing or
// renaming an identifier breaks external consumers.
func TestCosmologyFunctionNames(t *testing.T) {
	funcs := registry.CosmologyFunctions()

	for _, name := range []string{
		"efunc",
		"inv_efunc",
		"comoving_distance",
		"transverse_comoving_distance",
		"luminosity_distance",
		"distance_modulus",
		"dDLdz",
		"differential_comoving_volume",
		"comoving_volume",
		"lookback_time",
		"absorption_distance",
		"z_at_dl",
		"z_at_dc",
	} {
		require.Contains(t, funcs, name)
		require.NotNil(t, funcs[name])
	}
}

func TestUtilityAndConstantNames(t *testing.T) {
	utils := registry.UtilityFunctions()
	require.Contains(t, utils, "hubble_distance")
	require.Contains(t, utils, "hubble_time")

	consts := registry.Constants()
	require.Contains(t, consts, "speed_of_light_km_per_s")
	require.Equal(t, 299792.458, consts["speed_of_light_km_per_s"])
}

func TestToeplitzGroupNames(t *testing.T) {
	funcs := registry.ToeplitzFunctions()
	require.Contains(t, funcs, "taylor_comoving_distance")
	require.Contains(t, funcs, "taylor_luminosity_distance")
	require.Contains(t, funcs, "taylor_lookback_time")
	require.NotNil(t, registry.ReciprocalSeries)
}

// TestAdaptersMatchEngines: the adapters are thin wrappers and must
// return exactly what the engines return.
func TestAdaptersMatchEngines(t *testing.T) {
	p, err := cosmology.New(67.66, 0.30966)
	require.NoError(t, err)

	z := []float64{0.1, 0.5, 1}

	eng, err := distance.New(p)
	require.NoError(t, err)
	want, err := eng.LuminosityDistance(z)
	require.NoError(t, err)

	got, err := registry.CosmologyFunctions()["luminosity_distance"](p, z)
	require.NoError(t, err)
	require.Equal(t, want.([]float64), got)

	teng, err := taylor.New(p, 3)
	require.NoError(t, err)
	wantT, err := teng.ComovingDistance(z)
	require.NoError(t, err)

	gotT, err := registry.ToeplitzFunctions()["taylor_comoving_distance"](p, 3, z)
	require.NoError(t, err)
	require.Equal(t, wantT.([]float64), gotT)
}

// TestAdaptersPropagateErrors: engine failures surface unchanged.
func TestAdaptersPropagateErrors(t *testing.T) {
	p, err := cosmology.New(70, 0.3)
	require.NoError(t, err)

	_, err = registry.CosmologyFunctions()["distance_modulus"](p, []float64{0})
	require.ErrorIs(t, err, distance.ErrDomain)

	_, err = registry.ToeplitzFunctions()["taylor_comoving_distance"](p, 0, []float64{0.1})
	require.ErrorIs(t, err, taylor.ErrInvalidOrder)

	_, err = registry.ReciprocalSeries(nil)
	require.ErrorIs(t, err, taylor.ErrInvalidOrder)
}

func TestHubbleDistanceUtility(t *testing.T) {
	p, err := cosmology.New(70, 0.3)
	require.NoError(t, err)

	dh := registry.UtilityFunctions()["hubble_distance"](p)
	require.InDelta(t, 299792.458/70, dh, 1e-9)
}
