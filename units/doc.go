// Package units collects the physical constants and unit-conversion
// factors shared by the distance and taylor engines.
//
// All distances are expressed in megaparsecs (Mpc), times in gigayears
// (Gyr) and the Hubble constant in km/s/Mpc, matching the conventions of
// the standard cosmology literature. The constants here are the CODATA /
// IAU exact values; none of them are tunable.
package units
