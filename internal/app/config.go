package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	FigurePath   string // yaml or json figure
	TemplatePath string // optional template applied beneath the figure

	// MakeTemplate switches the output from the resolved figure to the
	// template extracted from it.
	MakeTemplate bool

	// Restyle edits apply to Traces, or to every trace when Traces is nil.
	Restyle  map[string]any
	Traces   []int
	Relayout map[string]any

	Output    string
	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.FigurePath == "" {
		return nil, errors.New("FigurePath is a required configuration field and cannot be empty")
	}
	if cfg.Output == "" {
		cfg.Output = "json"
	}
	if cfg.Output != "json" && cfg.Output != "yaml" {
		return nil, fmt.Errorf("unsupported output format %q", cfg.Output)
	}
	for _, i := range cfg.Traces {
		if i < 0 {
			return nil, fmt.Errorf("trace index %d must not be negative", i)
		}
	}
	return &cfg, nil
}

// HasEdits reports whether the run mutates the figure after resolving it.
func (c *Config) HasEdits() bool {
	return len(c.Restyle) > 0 || len(c.Relayout) > 0
}
