package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thmsn/ffrenc/internal/config"
	"github.com/thmsn/ffrenc/internal/display"
	"github.com/thmsn/ffrenc/internal/ffmpeg"
	"github.com/thmsn/ffrenc/internal/job"
	"github.com/thmsn/ffrenc/internal/logging"
	"github.com/thmsn/ffrenc/internal/naming"
)

// Run is the top-level batch entry point. It draws inputs lazily from the
// configured source, processes each one to completion before the next
// begins, and returns the ordered outcomes plus aggregate stats. A job
// failure never stops the batch; cancelling ctx kills the current engine
// process and stops before the next input.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, stdin io.Reader) (job.BatchResult, RunStats) {
	var results job.BatchResult
	var stats RunStats

	src := NewInputSource(cfg.Input, stdin)
	claims := naming.NewClaimTracker()
	printer := display.NewProgressPrinter(os.Stdout, cfg.JSONProgress)

	for {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			stats.Interrupted = true
			break
		}
		path, ok := src.Next()
		if !ok {
			break
		}
		stats.Total++

		outcome := processJob(ctx, cfg, log, claims, printer, path, &stats)
		if outcome.Success {
			stats.Succeeded++
		} else {
			stats.Failed++
		}
		results = append(results, outcome)
		fmt.Println()
	}

	if err := src.Err(); err != nil {
		log.Error("Reading input list: %v", err)
	}

	logSummary(log, &stats)
	return results, stats
}

// processJob handles one input: validate → resolve output → claim →
// existence check → build → execute with live progress → classify.
func processJob(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	claims *naming.ClaimTracker,
	printer *display.ProgressPrinter,
	path string,
	stats *RunStats,
) job.Outcome {
	spec := job.NewSpec(path, cfg.OutputTemplate, cfg.StripAudio, cfg.StripVideo, cfg.Overwrite, cfg.ExtraArgs)
	basename := filepath.Base(path)

	log.Info("[%d] %s", stats.Total, basename)
	log.Debug(cfg.Verbose, "  job id: %s", spec.ID)

	// --- Validate input ---
	fi, err := os.Stat(path)
	if err != nil {
		return fail(log, spec, job.KindInputNotFound,
			fmt.Sprintf("input not found: %s", path), nil)
	}

	// --- Resolve output exactly once, before any check and before spawn ---
	outputPath := naming.Resolve(spec.Input, spec.OutputTemplate)

	if owner, ok := claims.Claim(path, outputPath); !ok {
		return fail(log, spec, job.KindOutputConflict,
			fmt.Sprintf("output %s is already targeted by %s", outputPath, owner), nil)
	}

	if !spec.Overwrite {
		if _, err := os.Stat(outputPath); err == nil {
			return fail(log, spec, job.KindOutputExists,
				fmt.Sprintf("output %s already exists (-y to overwrite)", outputPath), nil)
		}
	}

	log.Info("  -> %s", outputPath)

	// --- Build and run ---
	argv := ffmpeg.Build(cfg.FFmpegBin, spec, outputPath)
	log.Debug(cfg.Verbose, "  exec: %s", strings.Join(argv, " "))

	start := time.Now()
	mon := ffmpeg.NewMonitor(func(ev ffmpeg.Event) {
		printer.Update(spec.ID, basename, ev)
	})
	res := ffmpeg.Execute(ctx, argv, mon)
	printer.JobDone()

	if res.SpawnErr != nil {
		return fail(log, spec, job.KindEngineSpawn,
			fmt.Sprintf("cannot start engine: %v", res.SpawnErr), nil)
	}
	if res.ExitErr != nil {
		msg := fmt.Sprintf("engine failed: %v", res.ExitErr)
		if res.NoDuration && mon.Events() == 0 {
			msg = "no duration detected; " + msg
		}
		if res.Hint != "" {
			msg += " (" + res.Hint + ")"
		}
		return fail(log, spec, job.KindEngineExit, msg, res.Tail)
	}

	// --- Update stats ---
	elapsed := time.Since(start)
	var outSize int64
	if outInfo, err := os.Stat(outputPath); err == nil {
		outSize = outInfo.Size()
	}
	stats.TotalInputBytes += fi.Size()
	stats.TotalOutputBytes += outSize

	ratio := int64(100)
	if fi.Size() > 0 {
		ratio = outSize * 100 / fi.Size()
	}
	log.Success("Encoded in %s (%d%% of original)", display.FormatDuration(elapsed), ratio)
	return job.Succeeded(path, outputPath)
}

// fail reports one job failure immediately and returns its outcome; the
// batch carries on with the next input.
func fail(log *logging.Logger, spec job.Spec, kind job.ErrorKind, msg string, tail []string) job.Outcome {
	log.Error("%s: %s", filepath.Base(spec.Input), msg)
	logTail(log, tail)
	return job.Failed(spec.Input, kind, msg)
}

// logTail dumps the bounded engine output tail for diagnostics.
func logTail(log *logging.Logger, tail []string) {
	if len(tail) == 0 {
		return
	}
	log.Error("Last engine output:")
	for _, l := range tail {
		log.Error("  %s", l)
	}
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d succeeded, %d failed (%d total)", stats.Succeeded, stats.Failed, stats.Total)

	if stats.TotalOutputBytes == 0 {
		return
	}
	saved := stats.SpaceSaved()
	if saved >= 0 {
		log.Success("Space saved: %s (input %s -> output %s)",
			display.FormatBytes(saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	} else {
		log.Warn("Output grew by %s (input %s -> output %s)",
			display.FormatBytes(-saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	}
}
