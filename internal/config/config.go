// Package config holds runtime configuration: defaults, environment
// bindings, and validation. Precedence is defaults, then environment
// (optionally from an env file), then CLI flags.
package config

import (
	"errors"
	"strings"
)

// --- Enum types for validated string fields ---

// PaletteMode selects whether and how accent palettes are extracted.
type PaletteMode string

const (
	PaletteOff      PaletteMode = "off"      // No palette extraction (default).
	PaletteDominant PaletteMode = "dominant" // Deterministic dominant-color quantization.
	PaletteKMeans   PaletteMode = "kmeans"   // Cluster a pixel subsample; random init.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultInputDir is scanned when no paths are given on the command line.
const DefaultInputDir = "Screenshots"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// merged with the environment by [LoadEnv], and finally mutated by the CLI
// layer before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths (set from positional args). Empty means scan DefaultInputDir.
	Paths []string

	// Output.
	OutputDir string `env:"SKYSAMPLER_OUTPUT_DIR"` // Default: ".".

	// Sampling.
	GradientSamples int `env:"SKYSAMPLER_SAMPLES"` // Default: 10. Minimum: 1.

	// Palette extraction.
	PaletteMode PaletteMode `env:"SKYSAMPLER_PALETTE"`      // Default: "off".
	PaletteSize int         `env:"SKYSAMPLER_PALETTE_SIZE"` // Default: 5. Range: 1-64.

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose   bool      `env:"SKYSAMPLER_VERBOSE"`
	ColorMode ColorMode `env:"SKYSAMPLER_COLOR"` // Default: "auto".
	LogFile   string    `env:"SKYSAMPLER_LOG_FILE"`
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// environment and CLI overrides apply.
func DefaultConfig() Config {
	return Config{
		OutputDir:       ".",
		GradientSamples: 10,
		PaletteMode:     PaletteOff,
		PaletteSize:     5,
		DryRun:          false,
		Verbose:         false,
		ColorMode:       ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and numeric ranges.
func (c *Config) Validate() error {
	switch c.PaletteMode {
	case PaletteOff, PaletteDominant, PaletteKMeans:
		// valid
	default:
		return errors.New("invalid palette mode (use 'off', 'dominant', or 'kmeans')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always', or 'never')")
	}

	if c.GradientSamples < 1 {
		return errors.New("gradient samples must be at least 1")
	}
	if c.PaletteSize < 1 || c.PaletteSize > 64 {
		return errors.New("palette size must be between 1 and 64")
	}
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}
