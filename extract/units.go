package extract

const (
	// Bohr is the bohr radius in angstrom, from
	// https://physics.nist.gov/cgi-bin/cuu/Value?bohrrada0
	Bohr = 0.5291_772_109_03
	// Angstrom is one angstrom in bohr, the internal length unit
	Angstrom = 1 / Bohr
	// from http://www.ilpi.com/msds/ref/energyunits.html
	HartreeToWavenumber = 219_474.5459784
)

// FromAngstrom converts a length in angstrom to bohr
func FromAngstrom(x float64) float64 { return x * Angstrom }
