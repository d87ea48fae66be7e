package config

// This file implements CLI flag parsing and help text. Everything after a
// literal "--" is split off before parsing and passed to the engine
// verbatim. Negated flags (e.g. --no-color) are applied after Parse so
// Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// version is shown in --version and help; override at build time with
// -ldflags "-X .../internal/config.version=...".
var version = "0.3.0-dev"

// Version returns the build version string.
func Version() string { return version }

// SplitArgs separates the tool's own arguments from engine passthrough
// arguments at the first literal "--" separator.
func SplitArgs(args []string) (own, engine []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// ConfigFilePath pre-scans args for an explicit --config value so the file
// can be loaded before flags are parsed (flags override file values). Only
// arguments before the "--" separator are considered.
func ConfigFilePath(args []string) string {
	own, _ := SplitArgs(args)
	for i, a := range own {
		switch {
		case a == "--config" || a == "-config":
			if i+1 < len(own) {
				return own[i+1]
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		}
	}
	return ""
}

// ParseFlags parses args (os.Args[1:]) into cfg. On --help or --version it
// prints and exits. On error it returns non-nil (e.g. unknown flag, stray
// positional argument).
func ParseFlags(cfg *Config, args []string) error {
	own, engine := SplitArgs(args)
	cfg.ExtraArgs = engine

	fs := flag.NewFlagSet("ffrenc", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var negated negatedFlags

	defineInputFlags(fs, cfg)
	defineStreamFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, cfg, &negated)

	if err := fs.Parse(own); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "ffrenc v"+version)
		os.Exit(0)
	}

	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument %q (engine arguments go after a literal '--')", rest[0])
	}
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse. These
// either invert a default (noColor) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineInputFlags registers -i/--input and -o/--output.
func defineInputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Input, "input", cfg.Input, "Input file, or - for a stdin path list")
	fs.StringVar(&cfg.Input, "i", cfg.Input, "Same as --input")
	fs.StringVar(&cfg.OutputTemplate, "output", cfg.OutputTemplate, "Output template with {SLUG} substitution")
	fs.StringVar(&cfg.OutputTemplate, "o", cfg.OutputTemplate, "Same as --output")
}

// defineStreamFlags registers --no-audio and --no-video.
func defineStreamFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.StripAudio, "no-audio", cfg.StripAudio, "Drop audio streams")
	fs.BoolVar(&cfg.StripVideo, "no-video", cfg.StripVideo, "Drop video streams")
}

// defineBehaviorFlags registers -y/--overwrite, --ffmpeg and --config.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.Overwrite, "overwrite", cfg.Overwrite, "Overwrite existing output files")
	fs.BoolVar(&cfg.Overwrite, "y", cfg.Overwrite, "Same as --overwrite")
	fs.StringVar(&cfg.FFmpegBin, "ffmpeg", cfg.FFmpegBin, "Engine binary name or path")
	// --config is consumed by ConfigFilePath before parsing; registered
	// here so Parse accepts it.
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML defaults file")
}

// defineDisplayFlags registers --json, --color/--no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&cfg.JSONProgress, "json", cfg.JSONProgress, "Emit progress as JSON records")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --check, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&cfg.CheckOnly, "check", cfg.CheckOnly, "Run engine diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", cfg.CheckOnly, "Same as --check")
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "ffrenc v" + version + " — batch ffmpeg transcoder with live progress"},
		{"", ""},
		{"  ffrenc [OPTIONS] [-- ENGINE_ARGS...]", ""},
		{"", ""},
		{"Input & output", ""},
		{"  -i, --input <path|->", "Input file, or - for a stdin path list"},
		{"  -o, --output <template>", "Output template; {SLUG} becomes the input file name"},
		{"", "(default: \"<stem>.renc.mp4\" next to the working directory)"},
		{"", ""},
		{"Streams", ""},
		{"  --no-audio", "Drop audio streams (default: copy audio)"},
		{"  --no-video", "Drop video streams (default: encode h264, crf 18, ultrafast)"},
		{"", ""},
		{"Behavior", ""},
		{"  -y, --overwrite", "Overwrite existing output files"},
		{"  --ffmpeg <bin>", "Engine binary name or path (default: ffmpeg)"},
		{"  --config <path>", "YAML defaults file (also searched in ./ffrenc.yaml)"},
		{"", ""},
		{"Display", ""},
		{"  --json", "Emit progress as JSON records"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output (job IDs, engine argv)"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Engine diagnostics (ffmpeg, libx264)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Everything after a literal -- is passed to the engine verbatim,", ""},
		{"after ffrenc's own flags and before the output path.", ""},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintf(os.Stderr, "%*s%s\n", col1, "", l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
