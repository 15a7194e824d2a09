package main

import (
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/eugenenazirov/evtol-sizing/internal/config"
	"github.com/eugenenazirov/evtol-sizing/internal/report"
)

const (
	reportCommand = "report"
	serveCommand  = "serve"
)

// optional tracks whether a flag was given so that unset flags leave lower
// precedence sources alone.
type optional[T any] struct {
	value *T
	set   bool
}

func (o *optional[T]) get() *T {
	if !o.set {
		return nil
	}
	return o.value
}

func floatFlag(cmd *kingpin.CmdClause, name, help string) *optional[float64] {
	o := &optional[float64]{}
	o.value = cmd.Flag(name, help).IsSetByUser(&o.set).Float64()
	return o
}

type cliFlags struct {
	configFile *string
	logLevel   *optional[string]

	cellNominalVoltage  *optional[float64]
	cellCapacity        *optional[float64]
	requiredVoltage     *optional[float64]
	requiredCapacity    *optional[float64]
	cellWeight          *optional[float64]
	coolingSystemWeight *optional[float64]

	mtow     *optional[float64]
	lDMax    *optional[float64]
	etaTotal *optional[float64]
	vInf     *optional[float64]

	aircraftWeight           *optional[float64]
	diskArea                 *optional[float64]
	airDensity               *optional[float64]
	climbRate                *optional[float64]
	fom                      *optional[float64]
	etaVertical              *optional[float64]
	ducted                   *optional[bool]
	fuselageCorrectionFactor *optional[float64]

	format *optional[string]
	strict *optional[bool]

	port           *optional[string]
	rateLimitRPS   *optional[float64]
	rateLimitBurst *optional[int]
}

func newApp() (*kingpin.Application, *cliFlags) {
	app := kingpin.New("evtol-sizing", "eVTOL battery sizing - pack topology, pack weight, cruise and vertical-flight power")
	f := &cliFlags{
		logLevel: &optional[string]{},
		ducted:   &optional[bool]{},
		format:   &optional[string]{},
		strict:   &optional[bool]{},
		port:     &optional[string]{},

		rateLimitBurst: &optional[int]{},
	}

	f.configFile = app.Flag("config", "Path to YAML configuration file").String()
	f.logLevel.value = app.Flag("log-level", "Log level (debug, info, warn, error)").IsSetByUser(&f.logLevel.set).String()

	rep := app.Command(reportCommand, "Compute the sizing summary once and print it").Default()
	f.cellNominalVoltage = floatFlag(rep, "cell-nominal-voltage", "Single-cell nominal voltage (V)")
	f.cellCapacity = floatFlag(rep, "cell-capacity", "Single-cell capacity (Ah)")
	f.requiredVoltage = floatFlag(rep, "required-voltage", "Required pack voltage (V)")
	f.requiredCapacity = floatFlag(rep, "required-capacity", "Required pack energy (kWh)")
	f.cellWeight = floatFlag(rep, "cell-weight", "Single-cell weight (g)")
	f.coolingSystemWeight = floatFlag(rep, "cooling-system-weight", "Cooling system weight (% of cell weight, not used by the weight formula)")
	f.mtow = floatFlag(rep, "mtow", "Maximum take-off weight (N)")
	f.lDMax = floatFlag(rep, "l-d-max", "Maximum lift-to-drag ratio")
	f.etaTotal = floatFlag(rep, "eta-total", "Total system efficiency in cruise")
	f.vInf = floatFlag(rep, "v-inf", "Free-stream velocity (m/s)")
	f.aircraftWeight = floatFlag(rep, "aircraft-weight", "Aircraft weight for vertical flight (N)")
	f.diskArea = floatFlag(rep, "disk-area", "Rotor disk area (m^2)")
	f.airDensity = floatFlag(rep, "air-density", "Air density (kg/m^3)")
	f.climbRate = floatFlag(rep, "climb-rate", "Vertical climb rate (m/s)")
	f.fom = floatFlag(rep, "fom", "Rotor Figure of Merit")
	f.etaVertical = floatFlag(rep, "eta-vertical", "Powertrain efficiency in vertical flight")
	f.ducted.value = rep.Flag("ducted", "Ducted fans (--no-ducted for open rotors)").IsSetByUser(&f.ducted.set).Bool()
	f.fuselageCorrectionFactor = floatFlag(rep, "fuselage-correction-factor", "Fuselage interference correction factor")
	f.format.value = rep.Flag("format", "Output format: "+strings.Join(report.Formats(), ", ")).IsSetByUser(&f.format.set).Enum(report.Formats()...)
	f.strict.value = rep.Flag("strict", "Reject physically invalid inputs before computing").IsSetByUser(&f.strict.set).Bool()

	serve := app.Command(serveCommand, "Serve the calculators over HTTP")
	f.port.value = serve.Flag("port", "HTTP port exposed by the service").IsSetByUser(&f.port.set).String()
	f.rateLimitRPS = floatFlag(serve, "rate-limit-rps", "Requests per second allowed (set 0 to disable)")
	f.rateLimitBurst.value = serve.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").IsSetByUser(&f.rateLimitBurst.set).Int()

	return app, f
}

func (f *cliFlags) overrides() *config.CLIOverrides {
	return &config.CLIOverrides{
		ConfigFile: *f.configFile,
		LogLevel:   f.logLevel.get(),

		CellNominalVoltage:  f.cellNominalVoltage.get(),
		CellCapacity:        f.cellCapacity.get(),
		RequiredVoltage:     f.requiredVoltage.get(),
		RequiredCapacity:    f.requiredCapacity.get(),
		CellWeight:          f.cellWeight.get(),
		CoolingSystemWeight: f.coolingSystemWeight.get(),

		MTOW:     f.mtow.get(),
		LDMax:    f.lDMax.get(),
		EtaTotal: f.etaTotal.get(),
		VInf:     f.vInf.get(),

		AircraftWeight:           f.aircraftWeight.get(),
		DiskArea:                 f.diskArea.get(),
		AirDensity:               f.airDensity.get(),
		ClimbRate:                f.climbRate.get(),
		FOM:                      f.fom.get(),
		EtaVertical:              f.etaVertical.get(),
		IsDucted:                 f.ducted.get(),
		FuselageCorrectionFactor: f.fuselageCorrectionFactor.get(),

		Format: f.format.get(),
		Strict: f.strict.get(),

		Port:           f.port.get(),
		RateLimitRPS:   f.rateLimitRPS.get(),
		RateLimitBurst: f.rateLimitBurst.get(),
	}
}

// parseArgs parses the command line and returns the selected command with the
// flag overrides it carries.
func parseArgs(args []string) (string, *config.CLIOverrides, error) {
	app, f := newApp()
	command, err := app.Parse(args)
	if err != nil {
		return "", nil, err
	}
	return command, f.overrides(), nil
}
