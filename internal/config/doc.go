// Package config resolves the sizing inputs and the delivery settings (output
// format, logging, HTTP server) from YAML files, environment variables and CLI
// flags with precedence: CLI flags > YAML config > Environment variables >
// Defaults. Environment variables are applied first, so a value set in the
// YAML file wins over the same setting in the environment. Defaults are the
// reference aircraft from report.DefaultInputs.
package config
