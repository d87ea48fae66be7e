// Package check provides engine diagnostics (--check mode) and pre-run
// dependency validation for the ffmpeg binary and the h264 encoder.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/thmsn/ffrenc/internal/config"
)

// Sentinel errors returned by CheckDeps when the engine is unusable.
var (
	ErrEngineNotFound   = errors.New("ffmpeg not found on PATH")
	ErrH264EncodeFailed = errors.New("libx264 test encode failed")
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints engine availability,
// version, h264 encoder listing, and a test encode. Informational only;
// it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== Engine Check ===")

	checkEngine(cfg.FFmpegBin, log)
	checkH264Encoders(cfg.FFmpegBin, log)
	checkTestEncode(cfg.FFmpegBin, log)
}

// checkEngine verifies the binary is runnable and logs its version string.
func checkEngine(bin string, log Logger) {
	if _, err := exec.LookPath(bin); err != nil {
		log.Error("%s not found", bin)
		return
	}
	out, err := exec.Command(bin, "-version").Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", bin, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("engine: %s", firstLine)
}

// checkH264Encoders lists the h264 encoders reported by the engine.
func checkH264Encoders(bin string, log Logger) {
	log.Info("h264 encoders:")
	out, err := exec.Command(bin, "-hide_banner", "-encoders").Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "h264") || strings.Contains(lower, "x264") {
			log.Info("  %s", strings.TrimSpace(line))
		}
	}
}

// checkTestEncode runs a minimal libx264 encode to verify encoding works.
func checkTestEncode(bin string, log Logger) {
	log.Info("Testing libx264...")
	if runSilent(bin, h264TestArgs()...) {
		log.Success("libx264 works")
	} else {
		log.Error("libx264 test encode failed")
	}
}

// CheckDeps is the pre-batch validation: the engine binary must be
// runnable and a quick libx264 encode must succeed. Returns a sentinel
// error on failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.FFmpegBin); err != nil {
		return ErrEngineNotFound
	}
	if !runSilent(cfg.FFmpegBin, h264TestArgs()...) {
		return ErrH264EncodeFailed
	}
	return nil
}

// h264TestArgs encodes a tenth of a second of synthetic video to the null
// muxer, exercising the same codec path the batch uses.
func h264TestArgs() []string {
	return []string{
		"-hide_banner", "-nostdin",
		"-f", "lavfi", "-i", "testsrc=duration=0.1:size=128x96:rate=24",
		"-c:v", "libx264", "-preset", "ultrafast",
		"-f", "null", "-",
	}
}

// runSilent runs a command discarding all output, reporting only success.
func runSilent(bin string, args ...string) bool {
	return exec.Command(bin, args...).Run() == nil
}
