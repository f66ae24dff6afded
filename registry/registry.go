package registry

import (
	"github.com/astrokit/cosmodist/cosmology"
	"github.com/astrokit/cosmodist/distance"
	"github.com/astrokit/cosmodist/taylor"
	"github.com/astrokit/cosmodist/units"
)

// Func is the stable adapter signature of the cosmology group: one
// cosmology, one redshift (or distance) array in, one array out.
type Func func(p cosmology.Parameters, z []float64) ([]float64, error)

// ScalarFunc is the stable adapter signature of the utility group.
type ScalarFunc func(p cosmology.Parameters) float64

// TaylorFunc is the stable adapter signature of the Taylor entry
// points: expansion order is explicit per call.
type TaylorFunc func(p cosmology.Parameters, order int, z []float64) ([]float64, error)

// exact wraps a distance.Engine method as a Func.
func exact(call func(*distance.Engine, []float64) ([]float64, error)) Func {
	return func(p cosmology.Parameters, z []float64) ([]float64, error) {
		eng, err := distance.New(p)
		if err != nil {
			return nil, err
		}

		return call(eng, z)
	}
}

// CosmologyFunctions returns the general cosmology group: the exact
// engine's operations under their registry identifiers.
func CosmologyFunctions() map[string]Func {
	return map[string]Func{
		"efunc": exact(func(e *distance.Engine, z []float64) ([]float64, error) {
			out, err := e.Efunc(z)
			return asFloats(out), err
		}),
		"inv_efunc": exact(func(e *distance.Engine, z []float64) ([]float64, error) {
			out, err := e.InvEfunc(z)
			return asFloats(out), err
		}),
		"comoving_distance": exact(func(e *distance.Engine, z []float64) ([]float64, error) {
			out, err := e.ComovingDistance(z)
			return asFloats(out), err
		}),
		"transverse_comoving_distance": exact(func(e *distance.Engine, z []float64) ([]float64, error) {
			out, err := e.TransverseComovingDistance(z)
			return asFloats(out), err
		}),
		"luminosity_distance": exact(func(e *distance.Engine, z []float64) ([]float64, error) {
			out, err := e.LuminosityDistance(z)
			return asFloats(out), err
		}),
		"distance_modulus": exact(func(e *distance.Engine, z []float64) ([]float64, error) {
			out, err := e.DistanceModulus(z)
			return asFloats(out), err
		}),
		"dDLdz": exact(func(e *distance.Engine, z []float64) ([]float64, error) {
			out, err := e.DLuminosityDz(z)
			return asFloats(out), err
		}),
		"differential_comoving_volume": exact(func(e *distance.Engine, z []float64) ([]float64, error) {
			out, err := e.DifferentialComovingVolume(z)
			return asFloats(out), err
		}),
		"comoving_volume": exact(func(e *distance.Engine, z []float64) ([]float64, error) {
			out, err := e.ComovingVolume(z)
			return asFloats(out), err
		}),
		"lookback_time": exact(func(e *distance.Engine, z []float64) ([]float64, error) {
			out, err := e.LookbackTime(z)
			return asFloats(out), err
		}),
		"absorption_distance": exact(func(e *distance.Engine, z []float64) ([]float64, error) {
			out, err := e.AbsorptionDistance(z)
			return asFloats(out), err
		}),
		"z_at_dl": exact(func(e *distance.Engine, dl []float64) ([]float64, error) {
			out, err := e.RedshiftAtLuminosityDistance(dl)
			return asFloats(out), err
		}),
		"z_at_dc": exact(func(e *distance.Engine, dc []float64) ([]float64, error) {
			out, err := e.RedshiftAtComovingDistance(dc)
			return asFloats(out), err
		}),
	}
}

// UtilityFunctions returns the utility group: scalar per-cosmology
// helpers.
func UtilityFunctions() map[string]ScalarFunc {
	return map[string]ScalarFunc{
		"hubble_distance": func(p cosmology.Parameters) float64 {
			return units.SpeedOfLightKmPerS / p.H0()
		},
		"hubble_time": func(p cosmology.Parameters) float64 {
			return units.GyrPerKmPerSMpc / p.H0()
		},
	}
}

// Constants returns the utility group's unit-conversion constants.
func Constants() map[string]float64 {
	return map[string]float64{
		"speed_of_light_km_per_s": units.SpeedOfLightKmPerS,
		"gyr_per_km_per_s_mpc":    units.GyrPerKmPerSMpc,
		"km_per_mpc":              units.KmPerMpc,
		"pc_per_mpc":              units.PcPerMpc,
		"full_sky_steradian":      units.FullSkySteradian,
	}
}

// ToeplitzFunctions returns the Taylor/Toeplitz group: the polynomial
// distance approximations keyed by their registry identifiers.
func ToeplitzFunctions() map[string]TaylorFunc {
	return map[string]TaylorFunc{
		"taylor_comoving_distance": func(p cosmology.Parameters, order int, z []float64) ([]float64, error) {
			eng, err := taylor.New(p, order)
			if err != nil {
				return nil, err
			}
			out, err := eng.ComovingDistance(z)

			return asFloats(out), err
		},
		"taylor_luminosity_distance": func(p cosmology.Parameters, order int, z []float64) ([]float64, error) {
			eng, err := taylor.New(p, order)
			if err != nil {
				return nil, err
			}
			out, err := eng.LuminosityDistance(z)

			return asFloats(out), err
		},
		"taylor_lookback_time": func(p cosmology.Parameters, order int, z []float64) ([]float64, error) {
			eng, err := taylor.New(p, order)
			if err != nil {
				return nil, err
			}
			out, err := eng.LookbackTime(z)

			return asFloats(out), err
		},
	}
}

// ReciprocalSeries re-exports the Toeplitz-based series inversion under
// its frozen registry identifier "reciprocal_series".
var ReciprocalSeries = taylor.ReciprocalSeries

// asFloats narrows a slice-backend result back to []float64; adapters
// only ever feed the slice backend, so the assertion cannot fail on a
// non-nil result.
func asFloats(a any) []float64 {
	if a == nil {
		return nil
	}

	return a.([]float64)
}
