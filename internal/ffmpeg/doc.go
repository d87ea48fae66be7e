// Package ffmpeg builds and executes engine commands and turns the engine's
// live stderr stream into a bounded, monotonic progress signal.
//
// Build produces the full argument vector for one job. Execute spawns the
// engine and drains its stderr through a Monitor while the child runs, so
// the pipe never fills and stalls the process. The Monitor is a per-job
// state machine: it waits for the source duration announcement, then parses
// running time markers into clamped percent events, and finally classifies
// the terminal state from the process exit code with a bounded tail of
// recent output as diagnostic context.
package ffmpeg
