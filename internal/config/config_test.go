package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eugenenazirov/evtol-sizing/internal/report"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "OUTPUT_FORMAT", "LOG_LEVEL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sizing.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Inputs != report.DefaultInputs() {
		t.Fatalf("expected reference inputs, got %+v", cfg.Inputs)
	}
	if cfg.Format != report.FormatText {
		t.Fatalf("expected text format, got %s", cfg.Format)
	}
	if cfg.Strict {
		t.Fatalf("expected strict validation to be off by default")
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("OUTPUT_FORMAT", "json")
	t.Setenv("RATE_LIMIT_RPS", "3.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg, err := Load(&CLIOverrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.Format != report.FormatJSON {
		t.Fatalf("expected json format, got %s", cfg.Format)
	}
	if cfg.RateLimitRPS != 3.5 {
		t.Fatalf("expected rate limit 3.5, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Fatalf("expected invalid burst to be ignored, got %d", cfg.RateLimitBurst)
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	path := writeConfig(t, `
pack:
  cell_nominal_voltage: 3.6
  required_capacity: 0
cruise:
  l_d_max: 12
vertical:
  is_ducted: false
  climb_rate: 0
output:
  format: si
  strict: true
server:
  port: "7070"
  write_timeout: 2s
  enable_request_logging: false
  rate_limit:
    rps: 0
log_level: debug
`)

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := report.DefaultInputs()
	want.Pack.CellNominalVoltage = 3.6
	want.Pack.RequiredCapacity = 0
	want.Cruise.LiftToDrag = 12
	want.Vertical.Ducted = false
	want.Vertical.ClimbRate = 0
	if cfg.Inputs != want {
		t.Fatalf("unexpected inputs:\n got %+v\nwant %+v", cfg.Inputs, want)
	}

	if cfg.Port != "7070" {
		t.Fatalf("expected YAML port to win over env, got %s", cfg.Port)
	}
	if cfg.Format != report.FormatSI || !cfg.Strict {
		t.Fatalf("unexpected output settings: format=%s strict=%v", cfg.Format, cfg.Strict)
	}
	if cfg.WriteTimeout != 2*time.Second {
		t.Fatalf("expected write timeout 2s, got %s", cfg.WriteTimeout)
	}
	if cfg.EnableRequestLogging {
		t.Fatalf("expected request logging to be disabled")
	}
	if cfg.RateLimitRPS != 0 {
		t.Fatalf("expected rate limiting disabled, got %v", cfg.RateLimitRPS)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug log level, got %s", cfg.LogLevel)
	}
}

func TestLoadCLIOverridesWin(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
cruise:
  mtow: 10000
vertical:
  is_ducted: false
output:
  format: json
`)

	mtow := 12000.0
	ducted := true
	format := report.FormatText
	port := "6060"

	cfg, err := Load(&CLIOverrides{
		ConfigFile: path,
		MTOW:       &mtow,
		IsDucted:   &ducted,
		Format:     &format,
		Port:       &port,
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Inputs.Cruise.MTOW != mtow {
		t.Fatalf("expected CLI mtow %v, got %v", mtow, cfg.Inputs.Cruise.MTOW)
	}
	if !cfg.Inputs.Vertical.Ducted {
		t.Fatalf("expected CLI ducted flag to win")
	}
	if cfg.Format != report.FormatText {
		t.Fatalf("expected CLI format to win, got %s", cfg.Format)
	}
	if cfg.Port != port {
		t.Fatalf("expected CLI port, got %s", cfg.Port)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "pack: [unterminated")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for malformed YAML")
		}
	})

	t.Run("bad duration", func(t *testing.T) {
		path := writeConfig(t, "server:\n  idle_timeout: soon\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for invalid duration")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		format := "xml"
		if _, err := Load(&CLIOverrides{Format: &format}); err == nil {
			t.Fatalf("expected error for unknown format")
		}
	})

	t.Run("unknown log level", func(t *testing.T) {
		level := "chatty"
		if _, err := Load(&CLIOverrides{LogLevel: &level}); err == nil {
			t.Fatalf("expected error for unknown log level")
		}
	})
}
