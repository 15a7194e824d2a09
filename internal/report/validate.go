package report

import (
	"errors"
	"fmt"

	"github.com/eugenenazirov/evtol-sizing/internal/formula"
)

// Validate applies physical preconditions the calculators themselves do not
// enforce. It is opt-in: without it, bad inputs surface as division or domain
// errors from the formulas, or as nonsense results.
func (in Inputs) Validate() error {
	var errs []error
	check := func(ok bool, field, rule string, value float64) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s must be %s, got %g", formula.ErrInvalidInput, field, rule, value))
		}
	}

	p := in.Pack
	check(p.CellNominalVoltage > 0, "cell_nominal_voltage", "> 0", p.CellNominalVoltage)
	check(p.CellCapacity > 0, "cell_capacity", "> 0", p.CellCapacity)
	check(p.RequiredVoltage >= p.CellNominalVoltage, "required_voltage", fmt.Sprintf(">= cell_nominal_voltage (%g)", p.CellNominalVoltage), p.RequiredVoltage)
	check(p.RequiredCapacity >= 0, "required_capacity", ">= 0", p.RequiredCapacity)
	check(p.CellWeight >= 0, "cell_weight", ">= 0", p.CellWeight)

	c := in.Cruise
	check(c.MTOW > 0, "mtow", "> 0", c.MTOW)
	check(c.LiftToDrag > 0, "l_d_max", "> 0", c.LiftToDrag)
	check(unitInterval(c.Efficiency), "eta_total", "in (0, 1]", c.Efficiency)
	check(c.Velocity >= 0, "v_inf", ">= 0", c.Velocity)

	v := in.Vertical
	check(v.AircraftWeight > 0, "aircraft_weight", "> 0", v.AircraftWeight)
	check(v.DiskArea > 0, "disk_area", "> 0", v.DiskArea)
	check(v.AirDensity > 0, "air_density", "> 0", v.AirDensity)
	check(v.ClimbRate >= 0, "climb_rate", ">= 0", v.ClimbRate)
	check(unitInterval(v.FigureOfMerit), "fom", "in (0, 1]", v.FigureOfMerit)
	check(unitInterval(v.Efficiency), "eta_vertical", "in (0, 1]", v.Efficiency)
	check(v.FuselageCorrection > 0, "fuselage_correction_factor", "> 0", v.FuselageCorrection)

	return errors.Join(errs...)
}

func unitInterval(x float64) bool {
	return x > 0 && x <= 1
}
