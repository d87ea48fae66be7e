package ffmpeg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const durationLine = "  Duration: 00:01:40.00, start: 0.000000, bitrate: 1452 kb/s"

func progressLine(ts string) string {
	return "frame=  240 fps= 48 q=28.0 size=    1024KiB time=" + ts + " bitrate=1364.2kbits/s speed=1.9x"
}

func collect(m *Monitor, lines ...string) {
	for _, l := range lines {
		m.Observe(l)
	}
}

func TestMonitor_PercentSequence(t *testing.T) {
	var got []float64
	m := NewMonitor(func(ev Event) { got = append(got, ev.Percent) })

	collect(m,
		durationLine,
		progressLine("00:00:10.00"),
		progressLine("00:00:50.00"),
		progressLine("00:01:40.00"),
	)

	require.Equal(t, []float64{10, 50, 100}, got)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i], got[i-1])
	}
	for _, p := range got {
		assert.LessOrEqual(t, p, 100.0)
	}
	assert.Equal(t, 3, m.Events())
	assert.True(t, m.DurationSeen())
}

func TestMonitor_PercentClampedAndMonotonic(t *testing.T) {
	var got []float64
	m := NewMonitor(func(ev Event) { got = append(got, ev.Percent) })

	collect(m,
		durationLine,
		progressLine("00:00:50.00"),
		// The engine can report time past the announced duration.
		progressLine("00:02:00.00"),
		// And occasionally step backwards; percent must not.
		progressLine("00:00:10.00"),
	)

	require.Equal(t, []float64{50, 100, 100}, got)
}

func TestMonitor_MalformedLinesSkipped(t *testing.T) {
	var got []float64
	m := NewMonitor(func(ev Event) { got = append(got, ev.Percent) })

	collect(m,
		durationLine,
		"frame=  240 fps= 48 q=28.0",           // no time marker
		progressLine("garbage"),                 // unparseable marker
		"[mp4 @ 0x5641] some muxer chatter",     // unrelated line
		progressLine("00:00:10.00"),             // valid tick still lands
	)

	assert.Equal(t, []float64{10}, got)
}

func TestMonitor_NoDuration(t *testing.T) {
	var events int
	m := NewMonitor(func(Event) { events++ })

	// Progress markers before any duration announcement emit nothing.
	collect(m, progressLine("00:00:10.00"), progressLine("00:00:20.00"))

	assert.Equal(t, 0, events)
	assert.False(t, m.DurationSeen())
}

func TestMonitor_ZeroDurationSuppressesPercent(t *testing.T) {
	var events int
	m := NewMonitor(func(Event) { events++ })

	collect(m,
		"  Duration: 00:00:00.00, start: 0.000000",
		progressLine("00:00:01.00"),
	)

	// Duration of exactly zero is treated as unknown: no division by zero,
	// no percent events.
	assert.Equal(t, 0, events)
}

func TestMonitor_ConsumeSplitsOnCarriageReturns(t *testing.T) {
	var got []float64
	m := NewMonitor(func(ev Event) { got = append(got, ev.Percent) })

	// The engine overwrites its status line with \r instead of \n.
	stream := durationLine + "\n" +
		progressLine("00:00:10.00") + "\r" +
		progressLine("00:00:50.00") + "\r" +
		progressLine("00:01:40.00") + "\n"

	require.NoError(t, m.Consume(strings.NewReader(stream)))
	assert.Equal(t, []float64{10, 50, 100}, got)
}

func TestMonitor_ETASuppression(t *testing.T) {
	var events []Event
	m := NewMonitor(func(ev Event) { events = append(events, ev) })

	collect(m,
		"  Duration: 01:00:00.00, start: 0.000000",
		progressLine("00:00:01.00"), // below 1% of a one-hour source
	)

	require.Len(t, events, 1)
	assert.Zero(t, events[0].ETA)
}

func TestTail_Bounded(t *testing.T) {
	tail := NewTail(3)
	for _, l := range []string{"a", "b", "c", "d", "e"} {
		tail.Add(l)
	}
	assert.Equal(t, []string{"c", "d", "e"}, tail.Lines())
}

func TestMonitor_TailBounded(t *testing.T) {
	m := NewMonitor(nil)
	for i := 0; i < TailLines*5; i++ {
		m.Observe("noise line")
	}
	assert.Len(t, m.TailLines(), TailLines)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   string
	}{
		{"no streams", "Output file #0 does not contain any stream", "no streams left in output (both audio and video stripped?)"},
		{"unknown encoder", "Unknown encoder 'libx266'", "encoder not available in this engine build"},
		{"bad data", "input.bin: Invalid data found when processing input", "input is not valid media data"},
		{"refused overwrite", "File 'out.mp4' already exists. Exiting.", "output exists and overwrite was refused"},
		{"unmatched", "something completely different", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.stderr))
		})
	}
}
