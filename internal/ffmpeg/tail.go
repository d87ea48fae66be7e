package ffmpeg

// TailLines is how many recent output lines are kept for diagnostics when
// the engine fails. Bounded so very verbose runs never grow memory.
const TailLines = 20

// Tail is a bounded buffer of the most recent output lines.
type Tail struct {
	lines []string
	max   int
}

// NewTail creates a tail keeping at most max lines.
func NewTail(max int) *Tail {
	return &Tail{max: max}
}

// Add appends a line, evicting the oldest once the bound is reached.
func (t *Tail) Add(line string) {
	if t.max <= 0 {
		return
	}
	if len(t.lines) == t.max {
		copy(t.lines, t.lines[1:])
		t.lines = t.lines[:t.max-1]
	}
	t.lines = append(t.lines, line)
}

// Lines returns the buffered lines, oldest first.
func (t *Tail) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}
