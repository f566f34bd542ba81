package extract

import (
	"regexp"
	"sort"

	"github.com/cockroachdb/errors"
)

// Gaussian links holding the quantities below
const (
	LinkGeometry SectionID = "202"
	LinkSCF      SectionID = "502"
	LinkThermo   SectionID = "716"
)

var (
	scfDone      = regexp.MustCompile(`SCF Done:\s+E\S+\s+=\s+(?P<energy>\S+)\s+A\.U\.`)
	coordRow     = regexp.MustCompile(`\d+\s+\d+\s+\d+\s+(?P<x>\S+)\s+(?P<y>\S+)\s+(?P<z>\S+)`)
	inputOrient  = regexp.MustCompile(`Input orientation:`)
	stdOrient    = regexp.MustCompile(`Standard orientation:`)
	// large molecules get no distance matrix, so the input
	// orientation also ends where the standard one starts
	endInput     = regexp.MustCompile(`Distance matrix \(angstroms\):|Standard orientation:|Rotational constants`)
	rotConsts    = regexp.MustCompile(`Rotational constants`)
	fcCartesian  = regexp.MustCompile(`Force constants in Cartesian coordinates:`)
	fcInternal   = regexp.MustCompile(`Force constants in internal coordinates:`)
	thermoHeader = regexp.MustCompile(`Temperature\s+\S+\s+Kelvin\.\s+Pressure\s+\S+\s+Atm\.`)
	molMass      = regexp.MustCompile(`Molecular mass:\s+\S+\s+amu\.`)
	atomMass     = regexp.MustCompile(`Atom\s+\d+\s+has atomic number\s+\d+\s+and mass\s+(?P<mass>\S+)`)
)

// Energies extracts every SCF energy in hartree, in file order
func Energies(opts ...Option) *Extractor {
	return New("energies", LinkSCF, NewScalars(scfDone, "energy"), opts...)
}

// Coordinates extracts the input orientation geometry of every step,
// in bohr
func Coordinates(opts ...Option) *Extractor {
	opts = append([]Option{WithWindow(inputOrient, endInput)}, opts...)
	return New("coordinates", LinkGeometry,
		NewGeometries(coordRow, Angstrom), opts...)
}

// StandardCoordinates is Coordinates for the standard orientation,
// which Gaussian prints unless symmetry is turned off
func StandardCoordinates(opts ...Option) *Extractor {
	opts = append([]Option{WithWindow(stdOrient, rotConsts)}, opts...)
	return New("standard_coordinates", LinkGeometry,
		NewGeometries(coordRow, Angstrom), opts...)
}

// Hessian extracts the last Cartesian force constant matrix, in
// hartree/bohr²
func Hessian(opts ...Option) *Extractor {
	opts = append([]Option{WithWindow(fcCartesian, fcInternal)}, opts...)
	return New("hessian", LinkThermo, NewSymmetric(), opts...)
}

// Frequencies extracts the harmonic frequencies in cm⁻¹
func Frequencies(opts ...Option) *Extractor {
	return New("frequencies", LinkThermo,
		NewVectors(" Frequencies --"), opts...)
}

// LowFrequencies extracts the low frequencies Gaussian prints before
// projecting out translations and rotations, in cm⁻¹
func LowFrequencies(opts ...Option) *Extractor {
	return New("low_frequencies", LinkThermo,
		NewVectors(" Low frequencies ---"), opts...)
}

// Masses extracts the atomic masses, in amu, from the last
// thermochemistry block
func Masses(opts ...Option) *Extractor {
	c := NewScalars(atomMass, "mass")
	c.Restart = true
	opts = append([]Option{WithWindow(thermoHeader, molMass)}, opts...)
	return New("masses", LinkThermo, c, opts...)
}

var presets = map[string]func(...Option) *Extractor{
	"energies":             Energies,
	"coordinates":          Coordinates,
	"standard_coordinates": StandardCoordinates,
	"hessian":              Hessian,
	"frequencies":          Frequencies,
	"low_frequencies":      LowFrequencies,
	"masses":               Masses,
}

// Preset returns a fresh extractor for the named quantity
func Preset(name string, opts ...Option) (*Extractor, error) {
	fn, ok := presets[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPreset, "%q", name)
	}
	return fn(opts...), nil
}

// Presets lists the quantity names Preset accepts, sorted
func Presets() []string {
	ret := make([]string, 0, len(presets))
	for name := range presets {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}
