package power

import "github.com/eugenenazirov/evtol-sizing/internal/formula"

// VerticalFlight holds the inputs of the vertical-flight power model.
type VerticalFlight struct {
	AircraftWeight     float64 `json:"aircraftWeight"`           // N
	DiskArea           float64 `json:"diskArea"`                 // m²
	AirDensity         float64 `json:"airDensity"`               // kg/m³
	ClimbRate          float64 `json:"climbRate"`                // m/s
	FigureOfMerit      float64 `json:"fom"`                      // (0, 1]
	Efficiency         float64 `json:"etaVertical"`              // (0, 1]
	Ducted             bool    `json:"isDucted"`                 // ducted fans vs open rotors
	FuselageCorrection float64 `json:"fuselageCorrectionFactor"` // dimensionless
}

// Params lists the inputs in the order they are reported with errors.
func (v VerticalFlight) Params() []formula.Param {
	ducted := 0.0
	if v.Ducted {
		ducted = 1
	}
	return []formula.Param{
		formula.P("aircraft_weight", v.AircraftWeight),
		formula.P("disk_area", v.DiskArea),
		formula.P("air_density", v.AirDensity),
		formula.P("climb_rate", v.ClimbRate),
		formula.P("fom", v.FigureOfMerit),
		formula.P("eta_vertical", v.Efficiency),
		formula.P("is_ducted", ducted),
		formula.P("fuselage_correction_factor", v.FuselageCorrection),
	}
}
