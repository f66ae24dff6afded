package cosmology

// Named flat ΛCDM cosmologies from the Planck and WMAP parameter
// releases. Each is a plain Parameters value; copy freely.
var (
	Planck13 = mustFlat(67.77, 0.30712, "Planck13")
	Planck15 = mustFlat(67.74, 0.3075, "Planck15")
	Planck18 = mustFlat(67.66, 0.30966, "Planck18")
	WMAP1    = mustFlat(72.0, 0.257, "WMAP1")
	WMAP3    = mustFlat(70.1, 0.276, "WMAP3")
	WMAP5    = mustFlat(70.2, 0.277, "WMAP5")
	WMAP7    = mustFlat(70.4, 0.272, "WMAP7")
	WMAP9    = mustFlat(69.32, 0.2865, "WMAP9")
)

// Available returns the named presets keyed by their release name.
func Available() map[string]Parameters {
	return map[string]Parameters{
		"Planck13": Planck13,
		"Planck15": Planck15,
		"Planck18": Planck18,
		"WMAP1":    WMAP1,
		"WMAP3":    WMAP3,
		"WMAP5":    WMAP5,
		"WMAP7":    WMAP7,
		"WMAP9":    WMAP9,
	}
}

// mustFlat backs the preset table; the inputs are compile-time constants
// that always validate.
func mustFlat(h0, om0 float64, name string) Parameters {
	p, err := New(h0, om0, WithName(name))
	if err != nil {
		panic(err)
	}

	return p
}
