package ffmpeg

import (
	"context"
	"io"
	"os/exec"
	"strings"
)

// ExecResult holds the outcome of a single engine invocation.
type ExecResult struct {
	SpawnErr   error    // the engine could not be started
	ExitErr    error    // the engine ran and exited nonzero
	NoDuration bool     // it failed before announcing a source duration
	Tail       []string // bounded tail of its output
	Hint       string   // optional classification of the failure
}

// Failed reports whether the invocation ended in any failure.
func (r ExecResult) Failed() bool { return r.SpawnErr != nil || r.ExitErr != nil }

// Execute runs the engine argv for one job, draining stderr through mon
// while the child executes so its output buffer never fills and stalls it.
// The read loop runs for the lifetime of the child; cancelling ctx kills
// the process, which ends the loop at EOF.
//
// The engine's progress protocol lives on stderr; stdout is discarded.
// The exit code is the sole ground truth for success or failure.
func Execute(ctx context.Context, argv []string, mon *Monitor) ExecResult {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = io.Discard

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return ExecResult{SpawnErr: err}
	}
	if err := cmd.Start(); err != nil {
		return ExecResult{SpawnErr: err}
	}

	// Drain until the child closes its end of the pipe. Read errors are
	// not fatal on their own; the exit code decides.
	_ = mon.Consume(stderr)

	res := ExecResult{Tail: mon.TailLines()}
	if err := cmd.Wait(); err != nil {
		res.ExitErr = err
		res.NoDuration = !mon.DurationSeen()
		res.Hint = Classify(strings.Join(res.Tail, "\n"))
	}
	return res
}
