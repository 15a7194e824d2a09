// Package report runs both sizing calculators once over a set of inputs and
// renders the combined summary. It only sequences the calculators; neither
// consumes the other's output.
package report

import (
	"fmt"

	"github.com/eugenenazirov/evtol-sizing/internal/formula"
	"github.com/eugenenazirov/evtol-sizing/internal/pack"
	"github.com/eugenenazirov/evtol-sizing/internal/power"
)

// DefaultInputs returns the reference aircraft used for demonstration runs.
func DefaultInputs() Inputs {
	const mtow = 14770.24

	return Inputs{
		Pack: PackInputs{
			CellNominalVoltage:  3.7,
			CellCapacity:        3.0,
			RequiredVoltage:     800,
			RequiredCapacity:    441.0494,
			CellWeight:          121,
			CoolingSystemWeight: 40,
		},
		Cruise: CruiseInputs{
			MTOW:       mtow,
			LiftToDrag: 15.0,
			Efficiency: 0.75,
			Velocity:   51.44,
		},
		Vertical: power.VerticalFlight{
			AircraftWeight:     mtow,
			DiskArea:           19.189,
			AirDensity:         1.225,
			ClimbRate:          23.33,
			FigureOfMerit:      0.8,
			Efficiency:         0.9,
			Ducted:             true,
			FuselageCorrection: 1.03,
		},
	}
}

// Run evaluates pack configuration, pack weight, cruise power and vertical
// power in that order. The first failure aborts the run.
func Run(in Inputs) (Summary, error) {
	cfg, err := pack.Configure(in.Pack.CellNominalVoltage, in.Pack.CellCapacity, in.Pack.RequiredVoltage, in.Pack.RequiredCapacity)
	if err != nil {
		return Summary{}, fmt.Errorf("size pack: %w", err)
	}
	weight := pack.Weight(cfg, in.Pack.CellWeight, in.Pack.CoolingSystemWeight)

	cruise, err := power.Cruise(in.Cruise.MTOW, in.Cruise.LiftToDrag, in.Cruise.Efficiency, in.Cruise.Velocity)
	if err != nil {
		return Summary{}, fmt.Errorf("estimate cruise: %w", err)
	}

	vertical, err := power.Vertical(in.Vertical)
	if err != nil {
		return Summary{}, fmt.Errorf("estimate vertical flight: %w", err)
	}

	cruiseKW := cruise * 0.001
	verticalKW := vertical * 0.001

	return Summary{
		Configuration:   cfg,
		WeightGrams:     weight,
		WeightKg:        weight / 1000,
		CruisePowerW:    cruise,
		CruisePowerKW:   cruiseKW,
		VerticalPowerW:  vertical,
		VerticalPowerKW: verticalKW,
		TotalPowerKW:    cruiseKW + verticalKW,
	}, nil
}

// CheckFinite returns a formula.ErrDomain error naming the first quantity of s
// that overflowed to an infinity or is NaN. Finite-input runs can still
// overflow, for example a very large MTOW times the cruise velocity.
func (s Summary) CheckFinite() error {
	quantities := []struct {
		name  string
		value float64
	}{
		{"weight_grams", s.WeightGrams},
		{"weight_kg", s.WeightKg},
		{"cruise_power_w", s.CruisePowerW},
		{"cruise_power_kw", s.CruisePowerKW},
		{"vertical_power_w", s.VerticalPowerW},
		{"vertical_power_kw", s.VerticalPowerKW},
		{"total_power_kw", s.TotalPowerKW},
	}
	for _, q := range quantities {
		if err := formula.Finite(q.value); err != nil {
			return fmt.Errorf("%s: %w", q.name, err)
		}
	}
	return nil
}
