// Package pack sizes a battery pack: cell series/parallel topology from the
// voltage and energy requirements, and total pack weight.
package pack

import (
	"github.com/eugenenazirov/evtol-sizing/internal/formula"
)

const (
	opConfigure = "pack configuration"

	// OpWeight names the weight computation when its result is reported as an error.
	OpWeight = "pack weight"

	// overheadFraction is the flat share of cell weight added for cooling and
	// structure.
	overheadFraction = 0.4
)

// Configure derives the series and parallel cell counts.
//
// The required energy (kWh) is divided by the cell nominal voltage and scaled
// by 1000, which yields a capacity-like figure rather than a rigorous Ah value.
// Both counts are truncated toward zero.
func Configure(cellNominalVoltage, cellCapacity, requiredVoltage, requiredCapacity float64) (Configuration, error) {
	fail := func(err error) (Configuration, error) {
		return Configuration{}, formula.Wrap(opConfigure, err,
			formula.P("cell_nominal_voltage", cellNominalVoltage),
			formula.P("cell_capacity", cellCapacity),
			formula.P("required_voltage", requiredVoltage),
			formula.P("required_capacity", requiredCapacity),
		)
	}

	scaled, err := formula.Divide(requiredCapacity, cellNominalVoltage)
	if err != nil {
		return fail(err)
	}
	scaled *= 1000

	seriesRatio, err := formula.Divide(requiredVoltage, cellNominalVoltage)
	if err != nil {
		return fail(err)
	}
	series, err := formula.Trunc(seriesRatio)
	if err != nil {
		return fail(err)
	}

	parallelRatio, err := formula.Divide(scaled, float64(series)*cellCapacity)
	if err != nil {
		return fail(err)
	}
	parallel, err := formula.Trunc(parallelRatio)
	if err != nil {
		return fail(err)
	}

	return Configuration{Parallel: parallel, Series: series}, nil
}

// Weight returns the total pack weight in grams for the given topology.
//
// The cell total sums the parallel and series counts instead of multiplying
// them, so it undercounts the cells of any real pack. The behaviour is kept so
// results stay comparable with earlier sizing runs; the suspected defect is
// tracked in DESIGN.md.
//
// coolingSystemWeight is accepted but unused: the overhead is a flat 40%.
func Weight(cfg Configuration, cellWeight, coolingSystemWeight float64) float64 {
	totalCellWeight := float64(cfg.Parallel+cfg.Series) * cellWeight
	// The explicit conversion keeps the product rounded before the sum (no FMA).
	return float64(totalCellWeight*overheadFraction) + totalCellWeight
}

// WeightParams lists the weight inputs in the order they are reported with errors.
func WeightParams(cfg Configuration, cellWeight, coolingSystemWeight float64) []formula.Param {
	return []formula.Param{
		formula.P("num_cells_parallel", float64(cfg.Parallel)),
		formula.P("num_cells_series", float64(cfg.Series)),
		formula.P("cell_weight", cellWeight),
		formula.P("cooling_system_weight", coolingSystemWeight),
	}
}
