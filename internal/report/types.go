package report

import (
	"github.com/eugenenazirov/evtol-sizing/internal/pack"
	"github.com/eugenenazirov/evtol-sizing/internal/power"
)

// PackInputs are the pack configuration and weight inputs.
type PackInputs struct {
	CellNominalVoltage  float64 `json:"cellNominalVoltage"`  // V
	CellCapacity        float64 `json:"cellCapacity"`        // Ah
	RequiredVoltage     float64 `json:"requiredVoltage"`     // V
	RequiredCapacity    float64 `json:"requiredCapacity"`    // kWh
	CellWeight          float64 `json:"cellWeight"`          // g
	CoolingSystemWeight float64 `json:"coolingSystemWeight"` // %, unused by the weight formula
}

// CruiseInputs are the cruise power inputs.
type CruiseInputs struct {
	MTOW       float64 `json:"mtow"`     // N
	LiftToDrag float64 `json:"lDMax"`    // max lift-to-drag ratio
	Efficiency float64 `json:"etaTotal"` // total system efficiency
	Velocity   float64 `json:"vInf"`     // m/s
}

// Inputs gathers every input of one sizing run. The two calculators read
// disjoint sections.
type Inputs struct {
	Pack     PackInputs           `json:"pack"`
	Cruise   CruiseInputs         `json:"cruise"`
	Vertical power.VerticalFlight `json:"vertical"`
}

// Summary is the outcome of one sizing run.
type Summary struct {
	Configuration   pack.Configuration `json:"configuration"`
	WeightGrams     float64            `json:"weightGrams"`
	WeightKg        float64            `json:"weightKg"`
	CruisePowerW    float64            `json:"cruisePowerW"`
	CruisePowerKW   float64            `json:"cruisePowerKw"`
	VerticalPowerW  float64            `json:"verticalPowerW"`
	VerticalPowerKW float64            `json:"verticalPowerKw"`
	TotalPowerKW    float64            `json:"totalPowerKw"`
}
