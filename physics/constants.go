// Package physics holds the physical and geometric constants of the electron
// diffraction tube and the formulas that depend only on them.
package physics

import (
	"fmt"
	"math"

	"github.com/arloliu/wehnelt/errs"
)

// CODATA 2018 values.
const (
	Planck           = 6.62607015e-34   // J·s
	ElectronMass     = 9.1093837015e-31 // kg
	ElementaryCharge = 1.602176634e-19  // C
	TubeRadius       = 65e-3            // m, radius of the glass bulb (screen distance)
)

// Constants is the immutable set of constants used by the analysis.
//
// It is a value type; copies are cheap and every method has a value receiver,
// so a Constants can be shared freely without synchronization.
type Constants struct {
	// R is the distance from the graphite target to the screen in meters.
	R float64
	// H is the Planck constant in J·s.
	H float64
	// Me is the electron rest mass in kg.
	Me float64
	// Ec is the elementary charge in C.
	Ec float64
}

// Default returns the constants of the standard tube.
func Default() Constants {
	return Constants{
		R:  TubeRadius,
		H:  Planck,
		Me: ElectronMass,
		Ec: ElementaryCharge,
	}
}

// Coeff returns 2·R·h / sqrt(2·m_e·e_c).
//
// Every d-spacing result is linear in Coeff, so an error in any constant
// propagates multiplicatively into every output.
func (c Constants) Coeff() float64 {
	return 2 * c.R * c.H / math.Sqrt(2*c.Me*c.Ec)
}

// Wavelength returns the de Broglie wavelength h / sqrt(2·m_e·e_c·u) in meters
// of an electron accelerated through u volts (non-relativistic).
func (c Constants) Wavelength(u float64) (float64, error) {
	if !(u > 0) || math.IsInf(u, 1) {
		return 0, fmt.Errorf("%w: %g V", errs.ErrInvalidVoltage, u)
	}

	return c.H / math.Sqrt(2*c.Me*c.Ec*u), nil
}

// String implements fmt.Stringer.
func (c Constants) String() string {
	return fmt.Sprintf("Constants{R: %g m, h: %g J·s, m_e: %g kg, e: %g C, coeff: %.6e}",
		c.R, c.H, c.Me, c.Ec, c.Coeff())
}
