package config

import (
	"fmt"
	"time"
)

// yamlConfig represents the YAML configuration file structure. Sizing inputs
// are pointers so that an explicit zero in the file is applied.
type yamlConfig struct {
	Pack     yamlPack     `yaml:"pack"`
	Cruise   yamlCruise   `yaml:"cruise"`
	Vertical yamlVertical `yaml:"vertical"`
	Output   yamlOutput   `yaml:"output"`
	Server   yamlServer   `yaml:"server"`
	LogLevel string       `yaml:"log_level"`
}

type yamlPack struct {
	CellNominalVoltage  *float64 `yaml:"cell_nominal_voltage"`
	CellCapacity        *float64 `yaml:"cell_capacity"`
	RequiredVoltage     *float64 `yaml:"required_voltage"`
	RequiredCapacity    *float64 `yaml:"required_capacity"`
	CellWeight          *float64 `yaml:"cell_weight"`
	CoolingSystemWeight *float64 `yaml:"cooling_system_weight"`
}

type yamlCruise struct {
	MTOW     *float64 `yaml:"mtow"`
	LDMax    *float64 `yaml:"l_d_max"`
	EtaTotal *float64 `yaml:"eta_total"`
	VInf     *float64 `yaml:"v_inf"`
}

type yamlVertical struct {
	AircraftWeight           *float64 `yaml:"aircraft_weight"`
	DiskArea                 *float64 `yaml:"disk_area"`
	AirDensity               *float64 `yaml:"air_density"`
	ClimbRate                *float64 `yaml:"climb_rate"`
	FOM                      *float64 `yaml:"fom"`
	EtaVertical              *float64 `yaml:"eta_vertical"`
	IsDucted                 *bool    `yaml:"is_ducted"`
	FuselageCorrectionFactor *float64 `yaml:"fuselage_correction_factor"`
}

type yamlOutput struct {
	Format string `yaml:"format"`
	Strict *bool  `yaml:"strict"`
}

type yamlServer struct {
	Port                 string        `yaml:"port"`
	ShutdownGracePeriod  string        `yaml:"shutdown_grace_period"`
	ReadHeaderTimeout    string        `yaml:"read_header_timeout"`
	WriteTimeout         string        `yaml:"write_timeout"`
	IdleTimeout          string        `yaml:"idle_timeout"`
	EnableRequestLogging *bool         `yaml:"enable_request_logging"`
	RateLimit            yamlRateLimit `yaml:"rate_limit"`
}

type yamlRateLimit struct {
	RPS   *float64 `yaml:"rps"`
	Burst *int     `yaml:"burst"`
}

func applyYAMLConfig(cfg *Config, y *yamlConfig) error {
	in := &cfg.Inputs

	setFloat(&in.Pack.CellNominalVoltage, y.Pack.CellNominalVoltage)
	setFloat(&in.Pack.CellCapacity, y.Pack.CellCapacity)
	setFloat(&in.Pack.RequiredVoltage, y.Pack.RequiredVoltage)
	setFloat(&in.Pack.RequiredCapacity, y.Pack.RequiredCapacity)
	setFloat(&in.Pack.CellWeight, y.Pack.CellWeight)
	setFloat(&in.Pack.CoolingSystemWeight, y.Pack.CoolingSystemWeight)

	setFloat(&in.Cruise.MTOW, y.Cruise.MTOW)
	setFloat(&in.Cruise.LiftToDrag, y.Cruise.LDMax)
	setFloat(&in.Cruise.Efficiency, y.Cruise.EtaTotal)
	setFloat(&in.Cruise.Velocity, y.Cruise.VInf)

	setFloat(&in.Vertical.AircraftWeight, y.Vertical.AircraftWeight)
	setFloat(&in.Vertical.DiskArea, y.Vertical.DiskArea)
	setFloat(&in.Vertical.AirDensity, y.Vertical.AirDensity)
	setFloat(&in.Vertical.ClimbRate, y.Vertical.ClimbRate)
	setFloat(&in.Vertical.FigureOfMerit, y.Vertical.FOM)
	setFloat(&in.Vertical.Efficiency, y.Vertical.EtaVertical)
	setFloat(&in.Vertical.FuselageCorrection, y.Vertical.FuselageCorrectionFactor)
	if y.Vertical.IsDucted != nil {
		in.Vertical.Ducted = *y.Vertical.IsDucted
	}

	if y.Output.Format != "" {
		cfg.Format = y.Output.Format
	}
	if y.Output.Strict != nil {
		cfg.Strict = *y.Output.Strict
	}
	if y.LogLevel != "" {
		cfg.LogLevel = y.LogLevel
	}

	return applyYAMLServer(cfg, y.Server)
}

func applyYAMLServer(cfg *Config, s yamlServer) error {
	if s.Port != "" {
		cfg.Port = s.Port
	}

	durations := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"shutdown_grace_period", s.ShutdownGracePeriod, &cfg.ShutdownGracePeriod},
		{"read_header_timeout", s.ReadHeaderTimeout, &cfg.ReadHeaderTimeout},
		{"write_timeout", s.WriteTimeout, &cfg.WriteTimeout},
		{"idle_timeout", s.IdleTimeout, &cfg.IdleTimeout},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("server.%s: %w", d.name, err)
		}
		*d.dst = parsed
	}

	if s.EnableRequestLogging != nil {
		cfg.EnableRequestLogging = *s.EnableRequestLogging
	}
	if s.RateLimit.RPS != nil && *s.RateLimit.RPS >= 0 {
		cfg.RateLimitRPS = *s.RateLimit.RPS
	}
	if s.RateLimit.Burst != nil && *s.RateLimit.Burst >= 0 {
		cfg.RateLimitBurst = *s.RateLimit.Burst
	}

	return nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
