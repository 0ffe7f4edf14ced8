package app

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/specialistvlad/memgridgo/internal/render"
	"github.com/specialistvlad/memgridgo/internal/vlnv"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LibraryPaths []string // .hcl files or directories

	// Design and Configuration are VLNVs. Either may be empty; a build
	// needs at least one of them.
	Design        string
	Configuration string

	Format   render.Format
	Params   map[string]string
	MaxDepth int
	Port     int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults. Every problem is reported,
// not just the first.
func NewConfig(cfg Config) (*Config, error) {
	var result *multierror.Error

	if len(cfg.LibraryPaths) == 0 {
		result = multierror.Append(result, errors.New("at least one library path is required"))
	}
	for _, ref := range []struct{ name, raw string }{
		{"design", cfg.Design},
		{"configuration", cfg.Configuration},
	} {
		if ref.raw == "" {
			continue
		}
		if _, err := vlnv.Parse(ref.raw); err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid %s reference: %w", ref.name, err))
		}
	}

	if cfg.Format == "" {
		cfg.Format = render.FormatTree
	}
	if f, err := render.ParseFormat(string(cfg.Format)); err != nil {
		result = multierror.Append(result, err)
	} else {
		cfg.Format = f
	}
	if cfg.MaxDepth < 0 {
		result = multierror.Append(result, fmt.Errorf("max depth must not be negative, got %d", cfg.MaxDepth))
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("port %d is out of range", cfg.Port))
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		result = multierror.Append(result, errors.New("invalid log-format: must be 'text' or 'json'"))
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
