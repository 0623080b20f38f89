package analysis

import "fmt"

// Unit selects the linear unit used to report derived quantities. STL files
// carry no unit; the native unit is assumed to be millimeters, the 3D
// printing convention.
type Unit string

const (
	Centimeter Unit = "cm"
	Inch       Unit = "inch"
)

const (
	cm3PerInch3 = 0.0610237441 // cubic centimeters to cubic inches
	cm2PerInch2 = 0.1550031    // square centimeters to square inches
	cmPerInch   = 0.3937007874 // centimeters to inches
)

// ParseUnit validates a unit name from user input.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case Centimeter, Inch:
		return Unit(s), nil
	}
	return "", fmt.Errorf("unknown unit %q: valid units are cm, inch", s)
}

// VolumeFromMM3 converts a volume in cubic millimeters to u. The conversion
// is a pure scalar applied after accumulation, never inside it.
func (u Unit) VolumeFromMM3(v float64) float64 {
	cm3 := v / 1000.0
	if u == Inch {
		return cm3 * cm3PerInch3
	}
	return cm3
}

// AreaFromMM2 converts an area in square millimeters to u.
func (u Unit) AreaFromMM2(a float64) float64 {
	cm2 := a / 100.0
	if u == Inch {
		return cm2 * cm2PerInch2
	}
	return cm2
}

// LengthFromMM converts a length in millimeters to u.
func (u Unit) LengthFromMM(l float64) float64 {
	cm := l / 10.0
	if u == Inch {
		return cm * cmPerInch
	}
	return cm
}
