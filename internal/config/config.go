// Package config holds runtime configuration: defaults, the optional YAML
// defaults file, CLI flag parsing, and validation.
package config

import "errors"

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// StdinInput is the sentinel input value meaning "read newline-separated
// paths from stdin until end of stream".
const StdinInput = "-"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadConfigFile], and then mutated by [ParseFlags]
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Input is a source file path, or [StdinInput] for a stdin path list.
	Input string

	// OutputTemplate is the {SLUG} output template. Empty means the
	// built-in default ("<stem>.renc.mp4") applies per input.
	OutputTemplate string

	// Stream selection.
	StripAudio bool
	StripVideo bool

	// Overwrite allows replacing existing output files. Default: false.
	Overwrite bool

	// ExtraArgs are engine arguments captured after the "--" separator and
	// passed through verbatim.
	ExtraArgs []string

	// FFmpegBin is the engine binary name or path. Default: "ffmpeg".
	FFmpegBin string

	// Display and logging.
	JSONProgress bool      // Emit progress as JSON records instead of a live line.
	Verbose      bool      // Per-job IDs and argv echo.
	ColorMode    ColorMode // Default: "auto".
	LogFile      string    // Optional log file path.

	// CheckOnly runs engine diagnostics and exits.
	CheckOnly bool

	// ConfigFile is the explicit --config path (pre-scanned before flag
	// parsing so file values load first and flags override them).
	ConfigFile string
}

// DefaultConfig returns a Config with built-in defaults, used as the base
// before the config file and CLI flags apply their overrides.
func DefaultConfig() Config {
	return Config{
		FFmpegBin: "ffmpeg",
		ColorMode: ColorAuto,
	}
}

// Validate checks the assembled configuration. In CheckOnly mode only the
// engine binary matters; otherwise an input source is required.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.FFmpegBin == "" {
		return errors.New("engine binary must not be empty")
	}
	if c.CheckOnly {
		return nil
	}
	if c.Input == "" {
		return errors.New("no input given (use -i <path>, or -i - for a stdin path list)")
	}
	return nil
}
