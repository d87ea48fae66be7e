package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileDefaults is the YAML shape of the optional defaults file. Every field
// is optional; zero values leave the corresponding Config field untouched,
// and CLI flags still override anything set here.
type fileDefaults struct {
	Output  string `yaml:"output"`  // output template
	FFmpeg  string `yaml:"ffmpeg"`  // engine binary
	Color   string `yaml:"color"`   // auto | always | never
	Log     string `yaml:"log"`     // log file path
	JSON    bool   `yaml:"json"`    // JSON progress records
	Verbose bool   `yaml:"verbose"` //
}

// LoadConfigFile overlays cfg with defaults from the YAML file at path.
func LoadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fd fileDefaults
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fd.Output != "" {
		cfg.OutputTemplate = fd.Output
	}
	if fd.FFmpeg != "" {
		cfg.FFmpegBin = fd.FFmpeg
	}
	if fd.Color != "" {
		switch ColorMode(fd.Color) {
		case ColorAuto, ColorAlways, ColorNever:
			cfg.ColorMode = ColorMode(fd.Color)
		default:
			return fmt.Errorf("invalid color mode %q in %s (use 'auto', 'always' or 'never')", fd.Color, path)
		}
	}
	if fd.Log != "" {
		cfg.LogFile = fd.Log
	}
	if fd.JSON {
		cfg.JSONProgress = true
	}
	if fd.Verbose {
		cfg.Verbose = true
	}
	cfg.ConfigFile = path
	return nil
}

// FindConfigFile searches the standard locations for a defaults file.
// Returns empty string when none exists (non-fatal).
func FindConfigFile() string {
	locations := []string{
		"./ffrenc.yaml",
		"./ffrenc.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(home, ".config", "ffrenc", "config.yaml"),
			filepath.Join(home, ".config", "ffrenc", "config.yml"),
		)
	}

	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
