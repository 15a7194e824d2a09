package config

// CLIOverrides holds command-line flag overrides. A nil field means the flag
// was not given.
type CLIOverrides struct {
	ConfigFile string

	CellNominalVoltage  *float64
	CellCapacity        *float64
	RequiredVoltage     *float64
	RequiredCapacity    *float64
	CellWeight          *float64
	CoolingSystemWeight *float64

	MTOW     *float64
	LDMax    *float64
	EtaTotal *float64
	VInf     *float64

	AircraftWeight           *float64
	DiskArea                 *float64
	AirDensity               *float64
	ClimbRate                *float64
	FOM                      *float64
	EtaVertical              *float64
	IsDucted                 *bool
	FuselageCorrectionFactor *float64

	Format   *string
	Strict   *bool
	LogLevel *string

	Port           *string
	RateLimitRPS   *float64
	RateLimitBurst *int
}

func (o *CLIOverrides) apply(cfg *Config) {
	in := &cfg.Inputs

	setFloat(&in.Pack.CellNominalVoltage, o.CellNominalVoltage)
	setFloat(&in.Pack.CellCapacity, o.CellCapacity)
	setFloat(&in.Pack.RequiredVoltage, o.RequiredVoltage)
	setFloat(&in.Pack.RequiredCapacity, o.RequiredCapacity)
	setFloat(&in.Pack.CellWeight, o.CellWeight)
	setFloat(&in.Pack.CoolingSystemWeight, o.CoolingSystemWeight)

	setFloat(&in.Cruise.MTOW, o.MTOW)
	setFloat(&in.Cruise.LiftToDrag, o.LDMax)
	setFloat(&in.Cruise.Efficiency, o.EtaTotal)
	setFloat(&in.Cruise.Velocity, o.VInf)

	setFloat(&in.Vertical.AircraftWeight, o.AircraftWeight)
	setFloat(&in.Vertical.DiskArea, o.DiskArea)
	setFloat(&in.Vertical.AirDensity, o.AirDensity)
	setFloat(&in.Vertical.ClimbRate, o.ClimbRate)
	setFloat(&in.Vertical.FigureOfMerit, o.FOM)
	setFloat(&in.Vertical.Efficiency, o.EtaVertical)
	setFloat(&in.Vertical.FuselageCorrection, o.FuselageCorrectionFactor)
	if o.IsDucted != nil {
		in.Vertical.Ducted = *o.IsDucted
	}

	if o.Format != nil && *o.Format != "" {
		cfg.Format = *o.Format
	}
	if o.Strict != nil {
		cfg.Strict = *o.Strict
	}
	if o.LogLevel != nil && *o.LogLevel != "" {
		cfg.LogLevel = *o.LogLevel
	}

	if o.Port != nil && *o.Port != "" {
		cfg.Port = *o.Port
	}
	if o.RateLimitRPS != nil && *o.RateLimitRPS >= 0 {
		cfg.RateLimitRPS = *o.RateLimitRPS
	}
	if o.RateLimitBurst != nil && *o.RateLimitBurst >= 0 {
		cfg.RateLimitBurst = *o.RateLimitBurst
	}
}
