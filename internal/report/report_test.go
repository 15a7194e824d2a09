package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/eugenenazirov/evtol-sizing/internal/formula"
)

func TestRunDefaultInputs(t *testing.T) {
	t.Parallel()

	got, err := Run(DefaultInputs())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if got.Configuration.Parallel != 183 || got.Configuration.Series != 216 {
		t.Fatalf("unexpected configuration: %+v", got.Configuration)
	}
	if got.WeightGrams != 67590.6 {
		t.Fatalf("expected 67590.6 g, got %v", got.WeightGrams)
	}
	if math.Abs(got.CruisePowerKW-662.5291589632) > 1e-9 {
		t.Fatalf("unexpected cruise power %v kW", got.CruisePowerKW)
	}
	if math.Abs(got.VerticalPowerKW-565.960298363965) > 1e-9 {
		t.Fatalf("unexpected vertical power %v kW", got.VerticalPowerKW)
	}
	if got.TotalPowerKW != got.CruisePowerKW+got.VerticalPowerKW {
		t.Fatalf("expected total to be the sum of cruise and vertical, got %v", got.TotalPowerKW)
	}
}

func TestRunReportsFailingStage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Inputs)
		stage   string
		wantErr error
	}{
		{
			name:    "PackVoltageBelowCell",
			mutate:  func(in *Inputs) { in.Pack.RequiredVoltage = 1 },
			stage:   "size pack",
			wantErr: formula.ErrDivisionByZero,
		},
		{
			name:    "CruiseZeroEfficiency",
			mutate:  func(in *Inputs) { in.Cruise.Efficiency = 0 },
			stage:   "estimate cruise",
			wantErr: formula.ErrDivisionByZero,
		},
		{
			name:    "VerticalNegativeDensity",
			mutate:  func(in *Inputs) { in.Vertical.AirDensity = -1 },
			stage:   "estimate vertical flight",
			wantErr: formula.ErrDomain,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			in := DefaultInputs()
			tc.mutate(&in)

			_, err := Run(in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if !strings.HasPrefix(err.Error(), tc.stage) {
				t.Fatalf("expected error to start with %q, got %q", tc.stage, err.Error())
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := DefaultInputs().Validate(); err != nil {
		t.Fatalf("expected default inputs to be valid, got %v", err)
	}

	in := DefaultInputs()
	in.Pack.RequiredVoltage = 3
	in.Cruise.Efficiency = 1.5
	in.Vertical.FigureOfMerit = 0

	err := in.Validate()
	if !errors.Is(err, formula.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	for _, field := range []string{"required_voltage", "eta_total", "fom"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %s to be reported in %q", field, err.Error())
		}
	}
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	s, err := Run(DefaultInputs())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, s, FormatText); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	want := "Number of cells in parallel: 183\n" +
		"Number of cells in series: 216\n" +
		"Total pack weight: 67.59060000000001 kg\n" +
		"Power absorbed from the battery during cruise: 662.53 kW\n" +
		"Power absorbed from the battery during vertical takeoff: 565.96 kW\n" +
		"Total power absorbed from the battery: 1228.49 kW\n"
	if buf.String() != want {
		t.Fatalf("unexpected text output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	s, err := Run(DefaultInputs())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, s, FormatJSON); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	var decoded Summary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if decoded != s {
		t.Fatalf("expected %+v, got %+v", s, decoded)
	}
}

func TestWriteSI(t *testing.T) {
	t.Parallel()

	s, err := Run(DefaultInputs())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, s, FormatSI); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"183 parallel x 216 series", "67.59 kg", "kW", "MW"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in SI output:\n%s", want, out)
		}
	}
}

func TestWriteRejectsNonFiniteSummary(t *testing.T) {
	t.Parallel()

	in := DefaultInputs()
	in.Cruise.MTOW = 1e308
	in.Cruise.Velocity = 1e308

	s, err := Run(in)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if err := s.CheckFinite(); !errors.Is(err, formula.ErrDomain) || !strings.Contains(err.Error(), "cruise_power_w") {
		t.Fatalf("expected domain error naming cruise_power_w, got %v", err)
	}

	for _, format := range []string{FormatJSON, FormatSI} {
		var buf bytes.Buffer
		err := Write(&buf, s, format)
		if !errors.Is(err, formula.ErrDomain) {
			t.Fatalf("%s: expected ErrDomain, got %v", format, err)
		}
		if buf.Len() != 0 {
			t.Fatalf("%s: expected no partial output, got %q", format, buf.String())
		}
	}

	var buf bytes.Buffer
	if err := Write(&buf, s, FormatText); err != nil {
		t.Fatalf("text output returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "during cruise: +Inf kW") {
		t.Fatalf("expected +Inf cruise power in text output:\n%s", buf.String())
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	t.Parallel()

	if err := Write(&bytes.Buffer{}, Summary{}, "xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if ValidFormat("xml") {
		t.Fatalf("expected xml to be rejected")
	}
	for _, f := range Formats() {
		if !ValidFormat(f) {
			t.Fatalf("expected %s to be accepted", f)
		}
	}
}
