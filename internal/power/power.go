// Package power estimates the electrical power drawn from the battery in
// cruise and in vertical flight.
package power

import (
	"github.com/eugenenazirov/evtol-sizing/internal/formula"
)

// Gravity is the standard acceleration due to gravity in m/s².
const Gravity = 9.81

// Operation names reported in errors.
const (
	OpCruise   = "cruise power"
	OpVertical = "vertical flight power"
)

// Cruise returns the battery power in watts needed to hold cruise:
// (mtow * g * velocity) / (efficiency * liftToDrag).
func Cruise(mtow, liftToDrag, efficiency, velocity float64) (float64, error) {
	p, err := formula.Divide(mtow*Gravity*velocity, efficiency*liftToDrag)
	if err != nil {
		return 0, formula.Wrap(OpCruise, err, CruiseParams(mtow, liftToDrag, efficiency, velocity)...)
	}
	return p, nil
}

// CruiseParams lists the cruise inputs in the order they are reported with errors.
func CruiseParams(mtow, liftToDrag, efficiency, velocity float64) []formula.Param {
	return []formula.Param{
		formula.P("mtow", mtow),
		formula.P("l_d_max", liftToDrag),
		formula.P("eta_total", efficiency),
		formula.P("v_inf", velocity),
	}
}

// Vertical returns the battery power in watts for a vertical climb.
//
// The induced hover term follows momentum theory corrected by the Figure of
// Merit and a fuselage interference factor. Open rotors take half of that
// term, correction factor included. The climb term is climbRate*weight/2 in
// both configurations, and the sum is divided by the powertrain efficiency.
func Vertical(v VerticalFlight) (float64, error) {
	p, err := vertical(v)
	if err != nil {
		return 0, formula.Wrap(OpVertical, err, v.Params()...)
	}
	return p, nil
}

func vertical(v VerticalFlight) (float64, error) {
	diskLoading, err := formula.Divide(v.AircraftWeight, v.DiskArea)
	if err != nil {
		return 0, err
	}

	ratio, err := formula.Divide(diskLoading, 2*v.AirDensity*(v.FigureOfMerit*v.FigureOfMerit))
	if err != nil {
		return 0, err
	}
	induced, err := formula.Sqrt(ratio)
	if err != nil {
		return 0, err
	}

	// Conversions force rounding of each term before the sum (no FMA).
	var hover float64
	if v.Ducted {
		hover = float64(v.AircraftWeight * v.FuselageCorrection * induced)
	} else {
		hover = float64(v.AircraftWeight * 0.5 * v.FuselageCorrection * induced)
	}
	climb := float64(v.ClimbRate * v.AircraftWeight * 0.5)

	return formula.Divide(hover+climb, v.Efficiency)
}
