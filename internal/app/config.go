package app

import (
	"errors"
	"fmt"
)

// Output formats understood by Run.
const (
	FormatMIDI = "midi"
	FormatYAML = "yaml"
)

// Config holds everything an App needs to compile a program.
type Config struct {
	OptionsPath   string // optional HCL options file
	VariablesPath string // optional HCL variables file
	OutputPath    string
	Format        string // FormatMIDI or FormatYAML; empty means MIDI
	EnvPrefix     string // environment variable prefix; empty means envvars.DefaultPrefix

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	var errs []error
	if cfg.OutputPath == "" {
		errs = append(errs, errors.New("OutputPath is a required configuration field and cannot be empty"))
	}
	switch cfg.Format {
	case "":
		cfg.Format = FormatMIDI
	case FormatMIDI, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("unknown output format %q, expected %q or %q", cfg.Format, FormatMIDI, FormatYAML))
	}
	if cfg.LogLevel != "" {
		if _, err := parseLevel(cfg.LogLevel); err != nil {
			errs = append(errs, err)
		}
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q, expected \"text\" or \"json\"", cfg.LogFormat))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &cfg, nil
}
