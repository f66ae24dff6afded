package units

import "math"

// Physical constants. SpeedOfLightKmPerS is exact by definition of the
// metre; KmPerMpc follows from the IAU 2015 definition of the parsec.
const (
	// SpeedOfLightKmPerS is the speed of light in km/s.
	SpeedOfLightKmPerS = 299792.458

	// KmPerMpc is the number of kilometres in one megaparsec.
	KmPerMpc = 3.0856775814913673e19

	// SecondsPerGyr is the number of seconds in one gigayear
	// (Julian year, 365.25 days).
	SecondsPerGyr = 3.15576e16

	// GyrPerKmPerSMpc converts an inverse Hubble constant (in s·Mpc/km)
	// to Gyr: t_H = GyrPerKmPerSMpc / H0.
	GyrPerKmPerSMpc = KmPerMpc / SecondsPerGyr

	// PcPerMpc is the number of parsecs in one megaparsec.
	PcPerMpc = 1e6

	// MpcPerGpc is the number of megaparsecs in one gigaparsec.
	MpcPerGpc = 1e3
)

// FullSkySteradian is the solid angle of the full sky, 4π sr.
var FullSkySteradian = 4 * math.Pi

// MpcToPc converts a distance from Mpc to parsecs.
func MpcToPc(d float64) float64 { return d * PcPerMpc }

// Gpc3FromMpc3 converts a volume from Mpc³ to Gpc³.
func Gpc3FromMpc3(v float64) float64 { return v / (MpcPerGpc * MpcPerGpc * MpcPerGpc) }
