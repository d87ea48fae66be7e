package ffmpeg

import (
	"bufio"
	"bytes"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/thmsn/ffrenc/internal/timeutil"
)

// Pre-compiled patterns for the engine's stderr protocol: the one-off
// source duration announcement and the running time marker on progress
// lines. Both carry HH:MM:SS.frac timestamps.
var (
	reDuration = regexp.MustCompile(`Duration:\s*(\d+:\d{2}:\d{2}(?:\.\d+)?)`)
	reTime     = regexp.MustCompile(`\btime=\s*(\d+:\d{2}:\d{2}(?:\.\d+)?)`)
)

// Event is one progress tick for a job. Percent is clamped to [0,100] and
// never decreases within a job. ETA is zero when no estimate is available.
type Event struct {
	Elapsed float64 // media seconds processed so far
	Percent float64
	ETA     time.Duration
}

// EventFunc receives progress events as they are parsed.
type EventFunc func(Event)

// Monitor state per job.
type monitorState int

const (
	stateAwaitingDuration monitorState = iota
	stateStreaming
)

// Monitor incrementally parses one engine run's stderr into progress
// events. It never fails on malformed lines: an unparseable line only
// suppresses that one tick. A Monitor is single-use, one per job.
type Monitor struct {
	state       monitorState
	total       float64 // media seconds; 0 means unknown
	lastPercent float64
	events      int
	startedAt   time.Time
	onEvent     EventFunc
	tail        *Tail
}

// NewMonitor creates a Monitor delivering events to onEvent (may be nil).
func NewMonitor(onEvent EventFunc) *Monitor {
	return &Monitor{
		onEvent:   onEvent,
		tail:      NewTail(TailLines),
		startedAt: time.Now(),
	}
}

// Consume reads the stream line by line until EOF, observing each line as
// it arrives. The engine separates progress updates with carriage returns,
// so both \r and \n are treated as line boundaries. Lines are consumed
// incrementally, not buffered until process exit.
func (m *Monitor) Consume(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(scanCRLF)
	for scanner.Scan() {
		m.Observe(scanner.Text())
	}
	return scanner.Err()
}

// Observe processes one output line through the state machine.
func (m *Monitor) Observe(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.tail.Add(line)

	switch m.state {
	case stateAwaitingDuration:
		match := reDuration.FindStringSubmatch(line)
		if match == nil {
			return
		}
		total, err := timeutil.ParseTimestamp(match[1])
		if err != nil {
			return
		}
		// A zero duration stays "unknown": percent computation is
		// suppressed but success/failure classification is unaffected.
		m.total = total
		m.state = stateStreaming

	case stateStreaming:
		match := reTime.FindStringSubmatch(line)
		if match == nil {
			return
		}
		elapsed, err := timeutil.ParseTimestamp(match[1])
		if err != nil {
			return
		}
		m.emit(elapsed)
	}
}

// emit delivers one progress event with clamped, monotonic percent.
func (m *Monitor) emit(elapsed float64) {
	if m.total <= 0 {
		return
	}
	percent := elapsed * 100 / m.total
	if percent > 100 {
		percent = 100
	}
	if percent < m.lastPercent {
		percent = m.lastPercent
	}
	m.lastPercent = percent
	m.events++

	if m.onEvent != nil {
		m.onEvent(Event{Elapsed: elapsed, Percent: percent, ETA: m.eta(elapsed)})
	}
}

// eta extrapolates wall time remaining from media time processed. The
// estimate is suppressed (zero) below 1% progress, where it is mostly
// noise, and above one hour, where it is mostly wrong.
func (m *Monitor) eta(elapsed float64) time.Duration {
	if elapsed < m.total*0.01 {
		return 0
	}
	wall := time.Since(m.startedAt).Seconds()
	remaining := wall * (m.total/elapsed - 1)
	if remaining <= 0 || remaining > 3600 {
		return 0
	}
	return time.Duration(remaining * float64(time.Second))
}

// DurationSeen reports whether a usable duration announcement was parsed.
func (m *Monitor) DurationSeen() bool { return m.state == stateStreaming }

// Events returns how many progress events were emitted.
func (m *Monitor) Events() int { return m.events }

// TailLines returns the bounded tail of recent output lines, oldest first.
func (m *Monitor) TailLines() []string { return m.tail.Lines() }

// scanCRLF is a bufio.SplitFunc treating both \r and \n as terminators.
func scanCRLF(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
