// Package config holds runtime configuration: defaults, validation, and the
// fixed pipeline constants (output directory name, suffix, container).
package config

import "errors"

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Fixed pipeline values. These are not user-configurable: the output layout
// and naming scheme are part of the tool's contract.
const (
	// OutputDirName is created next to a file target or inside a
	// directory target and receives every converted file.
	OutputDirName = "converted_videos"

	// OutputSuffix is appended to every derived name.
	OutputSuffix = "_ProResHQ"

	// OutputExt is the container extension for all outputs.
	OutputExt = ".mov"
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by flag parsing before being passed (by pointer) to packages
// that need it.
type Config struct {
	// TargetPath is the single positional argument: a video file or a
	// directory tree to convert.
	TargetPath string

	// Behavior flags.
	DryRun    bool // Log the encode command instead of running it.
	CheckOnly bool // Run system diagnostics and exit.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before CLI flags are bound.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
	}
}

// Validate checks enum fields and, outside CheckOnly mode, requires a target.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.TargetPath == "" {
		return errors.New("need a file or directory to convert")
	}
	return nil
}
